package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Category    string
	Description string
	Transforms  []StateTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common pricing what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	for _, pct := range []float64{10, 20, 30} {
		registry.Register(Template{
			Name:        fmt.Sprintf("markup_%g", pct),
			Category:    "Profit Margin",
			Description: fmt.Sprintf("Charge a %g%% profit margin", pct),
			Transforms:  []StateTransform{&SetParameter{Key: domain.ParamMarkupPercent, Value: pct}},
		})
	}

	registry.Register(Template{
		Name:        "no_lost_time",
		Category:    "Working Time",
		Description: "Every standard hour is billable",
		Transforms:  []StateTransform{&SetParameter{Key: domain.ParamLostHoursPerDay, Value: 0}},
	})
	registry.Register(Template{
		Name:        "extra_week_leave",
		Category:    "Working Time",
		Description: "Five more days of annual leave",
		Transforms:  []StateTransform{&AdjustParameter{Key: domain.ParamAnnualLeaveDays, Delta: 5}},
	})
	registry.Register(Template{
		Name:        "lost_hour_daily",
		Category:    "Working Time",
		Description: "One more unbillable hour every day",
		Transforms:  []StateTransform{&AdjustParameter{Key: domain.ParamLostHoursPerDay, Delta: 1}},
	})

	registry.Register(Template{
		Name:        "wage_rise_5pct",
		Category:    "Wages",
		Description: "Weekly gross wage up 5%",
		Transforms:  []StateTransform{&ScaleParameter{Key: domain.ParamWeeklyGross, Factor: 1.05}},
	})
	registry.Register(Template{
		Name:        "super_12pct",
		Category:    "Wages",
		Description: "Superannuation guarantee at 12%",
		Transforms:  []StateTransform{&SetParameter{Key: domain.ParamSuperannuation, Value: 12}},
	})

	registry.Register(Template{
		Name:        "overheads_up_10pct",
		Category:    "Overheads",
		Description: "Every overhead unit cost up 10%",
		Transforms:  []StateTransform{&ScaleOverheads{Factor: 1.10}},
	})

	return registry
}

// ApplyTemplate applies a template to a base state
func ApplyTemplate(base domain.CalculatorState, template Template) (domain.CalculatorState, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates, grouped by category
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	byCategory := make(map[string][]Template)
	for _, template := range registry.templates {
		byCategory[template.Category] = append(byCategory[template.Category], template)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString("Available Templates:\n")
	for _, category := range categories {
		templates := byCategory[category]
		sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })

		fmt.Fprintf(&sb, "\n%s:\n", category)
		for _, t := range templates {
			fmt.Fprintf(&sb, "  %-20s %s\n", t.Name, t.Description)
		}
	}
	return sb.String()
}
