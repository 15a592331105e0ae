package domain

import "fmt"

// OverheadField selects which numeric column of an overhead line to update
type OverheadField string

const (
	FieldQty      OverheadField = "qty"
	FieldUnitCost OverheadField = "unit_cost"
)

// Clone returns a deep copy of the state. Updates on the copy never reach the original.
func (s CalculatorState) Clone() CalculatorState {
	out := s
	if s.Overheads != nil {
		out.Overheads = make([]OverheadSection, len(s.Overheads))
		for i, section := range s.Overheads {
			out.Overheads[i] = OverheadSection{Title: section.Title}
			if section.Items != nil {
				out.Overheads[i].Items = append([]OverheadItem(nil), section.Items...)
			}
		}
	}
	return out
}

// WithMarkup returns a copy of the state with a new markup percent
func (s CalculatorState) WithMarkup(percent float64) CalculatorState {
	out := s.Clone()
	out.MarkupPercent = percent
	return out
}

// WithOverhead returns a copy of the state with one overhead line's qty or unit cost replaced.
// Section and item are addressed by position, as the wizard displays them.
func (s CalculatorState) WithOverhead(sectionIdx, itemIdx int, field OverheadField, value float64) (CalculatorState, error) {
	if sectionIdx < 0 || sectionIdx >= len(s.Overheads) {
		return s, fmt.Errorf("overhead section %d out of range (have %d)", sectionIdx, len(s.Overheads))
	}
	items := s.Overheads[sectionIdx].Items
	if itemIdx < 0 || itemIdx >= len(items) {
		return s, fmt.Errorf("overhead item %d out of range in section %q (have %d)", itemIdx, s.Overheads[sectionIdx].Title, len(items))
	}

	out := s.Clone()
	item := &out.Overheads[sectionIdx].Items[itemIdx]
	switch field {
	case FieldQty:
		item.Qty = value
	case FieldUnitCost:
		item.UnitCost = value
	default:
		return s, fmt.Errorf("unknown overhead field: %s", field)
	}
	return out, nil
}

// FindOverhead locates an item by id, returning its section and item positions
func (s CalculatorState) FindOverhead(id string) (int, int, bool) {
	for si, section := range s.Overheads {
		for ii, item := range section.Items {
			if item.ID == id {
				return si, ii, true
			}
		}
	}
	return -1, -1, false
}

// WithWage returns a copy of the state with its wage inputs replaced
func (s CalculatorState) WithWage(w WageData) CalculatorState {
	out := s.Clone()
	out.Wage = w
	return out
}

// WithTime returns a copy of the state with its working time inputs replaced
func (s CalculatorState) WithTime(t TimeData) CalculatorState {
	out := s.Clone()
	out.Time = t
	return out
}
