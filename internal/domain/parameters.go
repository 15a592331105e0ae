package domain

import (
	"fmt"
	"sort"
)

// ParameterKey names a scalar input of the calculator
type ParameterKey string

const (
	ParamWeeklyGross         ParameterKey = "weekly_gross"
	ParamHolidayLoad         ParameterKey = "holiday_load"
	ParamTravelDays          ParameterKey = "travel_days"
	ParamTravelHours         ParameterKey = "travel_hours"
	ParamFaresAllowance      ParameterKey = "fares_allowance"
	ParamWorkCover           ParameterKey = "work_cover"
	ParamSuperannuation      ParameterKey = "superannuation"
	ParamLSL                 ParameterKey = "lsl"
	ParamAnnualLeaveDays     ParameterKey = "annual_leave_days"
	ParamSickDays            ParameterKey = "sick_days"
	ParamPublicHolidays      ParameterKey = "public_holidays"
	ParamStandardHoursPerDay ParameterKey = "standard_hours_per_day"
	ParamLostHoursPerDay     ParameterKey = "lost_hours_per_day"
	ParamMarkupPercent       ParameterKey = "markup_percent"
)

// ParameterInfo describes how a parameter is labelled and entered
type ParameterInfo struct {
	Key    ParameterKey
	Label  string
	Prefix string // e.g. "$"
	Suffix string // e.g. "/ wk", "%", "days"
	Step   float64
}

type parameterAccess struct {
	info ParameterInfo
	ptr  func(*CalculatorState) *float64
}

var parameterTable = []parameterAccess{
	{ParameterInfo{ParamWeeklyGross, "Weekly Gross Wage", "$", "/ wk", 10},
		func(s *CalculatorState) *float64 { return &s.Wage.WeeklyGross }},
	{ParameterInfo{ParamHolidayLoad, "Holiday Pay Loading", "", "%", 0.5},
		func(s *CalculatorState) *float64 { return &s.Wage.HolidayLoad }},
	{ParameterInfo{ParamTravelDays, "Travel Days Per Week", "", "days", 1},
		func(s *CalculatorState) *float64 { return &s.Wage.TravelDays }},
	{ParameterInfo{ParamTravelHours, "Travel Hours Per Day", "", "hrs", 0.25},
		func(s *CalculatorState) *float64 { return &s.Wage.TravelHours }},
	{ParameterInfo{ParamFaresAllowance, "Weekly Fares Allowance", "$", "/ wk", 5},
		func(s *CalculatorState) *float64 { return &s.Wage.FaresAllowance }},
	{ParameterInfo{ParamWorkCover, "Work Cover Premium", "", "%", 0.5},
		func(s *CalculatorState) *float64 { return &s.Wage.WorkCover }},
	{ParameterInfo{ParamSuperannuation, "Superannuation", "", "%", 0.5},
		func(s *CalculatorState) *float64 { return &s.Wage.Superannuation }},
	{ParameterInfo{ParamLSL, "Long Service Leave", "", "%", 0.1},
		func(s *CalculatorState) *float64 { return &s.Wage.LSL }},
	{ParameterInfo{ParamAnnualLeaveDays, "Annual Leave", "", "days", 1},
		func(s *CalculatorState) *float64 { return &s.Time.AnnualLeaveDays }},
	{ParameterInfo{ParamSickDays, "Sick Days Per Year", "", "days", 1},
		func(s *CalculatorState) *float64 { return &s.Time.SickDays }},
	{ParameterInfo{ParamPublicHolidays, "Public Holidays", "", "days", 1},
		func(s *CalculatorState) *float64 { return &s.Time.PublicHolidays }},
	{ParameterInfo{ParamStandardHoursPerDay, "Standard Hours Per Day", "", "hrs", 0.25},
		func(s *CalculatorState) *float64 { return &s.Time.StandardHoursPerDay }},
	{ParameterInfo{ParamLostHoursPerDay, "Lost Hours Per Day", "", "hrs", 0.25},
		func(s *CalculatorState) *float64 { return &s.Time.LostHoursPerDay }},
	{ParameterInfo{ParamMarkupPercent, "Profit Margin", "", "%", 1},
		func(s *CalculatorState) *float64 { return &s.MarkupPercent }},
}

func lookupParameter(key ParameterKey) (parameterAccess, error) {
	for _, p := range parameterTable {
		if p.info.Key == key {
			return p, nil
		}
	}
	return parameterAccess{}, fmt.Errorf("unknown parameter: %s", key)
}

// Parameters returns the catalogue of scalar parameters in wizard order
func Parameters() []ParameterInfo {
	out := make([]ParameterInfo, len(parameterTable))
	for i, p := range parameterTable {
		out[i] = p.info
	}
	return out
}

// ParameterKeys returns every known key, sorted
func ParameterKeys() []string {
	keys := make([]string, 0, len(parameterTable))
	for _, p := range parameterTable {
		keys = append(keys, string(p.info.Key))
	}
	sort.Strings(keys)
	return keys
}

// LookupParameter returns the display info for a key
func LookupParameter(key ParameterKey) (ParameterInfo, error) {
	p, err := lookupParameter(key)
	if err != nil {
		return ParameterInfo{}, err
	}
	return p.info, nil
}

// Parameter reads a scalar input from the state
func (s CalculatorState) Parameter(key ParameterKey) (float64, error) {
	p, err := lookupParameter(key)
	if err != nil {
		return 0, err
	}
	return *p.ptr(&s), nil
}

// WithParameter returns a copy of the state with one scalar input replaced
func (s CalculatorState) WithParameter(key ParameterKey, value float64) (CalculatorState, error) {
	p, err := lookupParameter(key)
	if err != nil {
		return s, err
	}
	out := s.Clone()
	*p.ptr(&out) = value
	return out, nil
}
