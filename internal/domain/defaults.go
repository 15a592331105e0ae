package domain

// Steps lists the wizard steps in display order
var Steps = []string{
	"Wage Information",
	"Working Time",
	"Annual Overheads",
	"Final Breakdown",
}

// Disclaimer is printed with every report
const Disclaimer = "This calculation is for educational purposes only and should not be relied upon as a definitive financial breakdown. Professional financial advice from a qualified advisor or accountant must be sought before making business decisions."

// GSTNote marks the sell rate as exclusive of goods and services tax
const GSTNote = "Exclusive of GST"

// CourseTitle is the unit of competency the calculator supports
const CourseTitle = "CPCPCM4012 Estimate and cost work"

// DefaultState returns the blank calculator: zeroed wage, time and markup inputs and
// the standard overhead catalogue with zero quantities.
func DefaultState() CalculatorState {
	return CalculatorState{
		Overheads: []OverheadSection{
			{
				Title: "Insurance Costs",
				Items: []OverheadItem{
					{ID: "i1", Name: "Plumbers Insurance"},
					{ID: "i2", Name: "Property Insurance"},
					{ID: "i3", Name: "Vehicle Insurance"},
					{ID: "i4", Name: "Equipment Insurance"},
				},
			},
			{
				Title: "Vehicle Costs",
				Items: []OverheadItem{
					{ID: "v1", Name: "Vehicle Repayments/Lease"},
					{ID: "v2", Name: "Vehicle Registration"},
					{ID: "v3", Name: "Fuel"},
					{ID: "v4", Name: "Vehicle Servicing"},
					{ID: "v5", Name: "Equipment Rental/Lease"},
				},
			},
			{
				Title: "Office/Workshop Costs",
				Items: []OverheadItem{
					{ID: "o1", Name: "Premises Rent"},
					{ID: "o2", Name: "Electricity"},
					{ID: "o3", Name: "Gas"},
					{ID: "o4", Name: "Mobile Telecommunications"},
					{ID: "o5", Name: "Office Supplies"},
					{ID: "o6", Name: "Administrative Staff"},
				},
			},
		},
	}
}
