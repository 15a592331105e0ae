package output

// DefaultAssumptions lists the calculation conventions printed with every report.
var DefaultAssumptions = []string{
	"52 weeks per year; leave days convert to weeks on a 5-day working week",
	"Holiday loading applies to annual leave only",
	"Travel allowance is paid at the base hourly rate for each working week",
	"Overheads are spread evenly across annual billable hours",
	"Figures are rounded for display only",
}
