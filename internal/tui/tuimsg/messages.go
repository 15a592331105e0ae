// Package tuimsg defines messages scenes send to the root model.
package tuimsg

import (
	"github.com/rgehrsitz/labourrate/internal/domain"
)

// ParameterChangedMsg signals a scalar input was edited
type ParameterChangedMsg struct {
	Key   domain.ParameterKey
	Value float64
}

// OverheadChangedMsg signals an overhead cell was edited
type OverheadChangedMsg struct {
	Section int
	Item    int
	Field   domain.OverheadField
	Value   float64
}

// ExportRequestedMsg asks the root model to write the report
type ExportRequestedMsg struct {
	Student string
}

// StatusMsg shows a transient line in the status area
type StatusMsg struct {
	Text    string
	IsError bool
}
