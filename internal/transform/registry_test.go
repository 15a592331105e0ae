package transform

import (
	"testing"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

func TestTransformRegistry_List(t *testing.T) {
	registry := NewTransformRegistry()
	names := registry.List()

	want := []string{"adjust", "scale", "scale_overheads", "set", "set_overhead"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d transforms, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, names[i])
		}
	}
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec    string
		wantErr bool
		name    string
	}{
		{"set:key=markup_percent,value=25", false, "set"},
		{"adjust:key=sick_days,delta=-2", false, "adjust"},
		{"scale:key=weekly_gross,factor=1.04", false, "scale"},
		{"set_overhead:id=v3,field=unit_cost,value=95", false, "set_overhead"},
		{"scale_overheads:factor=1.03", false, "scale_overheads"},
		{"set", true, ""},
		{"unknown:x=1", true, ""},
		{"set:key=markup_percent", true, ""},
		{"set:key=markup_percent,value=lots", true, ""},
		{"set:key=bonus,value=1", true, ""},
		{"set:key", true, ""},
		{"set_overhead:field=qty,value=1", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			tr, err := registry.ParseTransformSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tr.Name() != tt.name {
				t.Errorf("Expected %s, got %s", tt.name, tr.Name())
			}
		})
	}
}

func TestTransformRegistry_RejectsNonFiniteNumbers(t *testing.T) {
	registry := NewTransformRegistry()
	for _, spec := range []string{
		"adjust:key=weekly_gross,delta=NaN",
		"scale:key=weekly_gross,factor=Inf",
		"set_overhead:id=v3,field=unit_cost,value=-Inf",
		"scale_overheads:factor=NaN",
	} {
		if _, err := registry.ParseTransformSpec(spec); err == nil {
			t.Errorf("Expected error for %q", spec)
		}
	}
}

func TestParseAssignments(t *testing.T) {
	transforms, err := ParseAssignments("markup_percent=20, weekly_gross=1100")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(transforms) != 2 {
		t.Fatalf("Expected 2 transforms, got %d", len(transforms))
	}

	result, err := ApplyTransforms(domain.DefaultState(), transforms)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.MarkupPercent != 20 || result.Wage.WeeklyGross != 1100 {
		t.Errorf("Unexpected result: markup %v, gross %v", result.MarkupPercent, result.Wage.WeeklyGross)
	}

	empty, err := ParseAssignments("  ")
	if err != nil || empty != nil {
		t.Errorf("Expected nil, nil for blank input, got %v, %v", empty, err)
	}

	for _, bad := range []string{"markup_percent", "bonus=1", "markup_percent=high", "markup_percent=20,", "weekly_gross=NaN", "weekly_gross=+Inf"} {
		if _, err := ParseAssignments(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
