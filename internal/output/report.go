package output

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// Report is everything a formatter needs to render one calculation
type Report struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Course      string                    `json:"course"`
	StudentName string                    `json:"studentName"`
	GeneratedAt time.Time                 `json:"generatedAt"`
	State       domain.CalculatorState    `json:"inputs"`
	Results     domain.CalculationResults `json:"results"`
	Breakdown   Breakdown                 `json:"breakdown"`
	Notes       []string                  `json:"notes"`
	GSTNote     string                    `json:"gstNote"`
	Disclaimer  string                    `json:"disclaimer"`
}

// NewReport assembles a report. The timestamp only labels the output.
func NewReport(state domain.CalculatorState, results domain.CalculationResults, student string, now time.Time) *Report {
	return &Report{
		ID:          uuid.New().String(),
		Title:       "Labour Costing Report",
		Course:      domain.CourseTitle,
		StudentName: student,
		GeneratedAt: now,
		State:       state.Clone(),
		Results:     results,
		Breakdown:   NewBreakdown(state, results),
		Notes:       DefaultAssumptions,
		GSTNote:     domain.GSTNote,
		Disclaimer:  domain.Disclaimer,
	}
}

// Date formats the generation date for display
func (r *Report) Date() string {
	return r.GeneratedAt.Format("2 January 2006")
}

// Student returns the student name or a placeholder
func (r *Report) Student() string {
	if r.StudentName == "" {
		return "(not entered)"
	}
	return r.StudentName
}
