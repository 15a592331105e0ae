package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/labourrate/internal/compare"
	"github.com/rgehrsitz/labourrate/internal/transform"
)

func (a *app) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare the sell rate of an input file against what-if variants",
		Long: `Compare the base calculation with built-in templates and ad-hoc variants.

Examples:
  labourrate compare job.yaml --with markup_10,markup_20,no_lost_time
  labourrate compare job.yaml --variant "raise:weekly_gross=1150,markup_percent=15"
  labourrate compare job.yaml --transform "set_overhead:id=v3,field=unit_cost,value=95"
  labourrate compare --list-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := transform.CreateBuiltInTemplates()

			if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
				fmt.Fprintln(cmd.OutOrStdout(), transform.GetTemplateHelp(registry))
				return nil
			}

			withTemplates, _ := cmd.Flags().GetString("with")
			variantSpecs, _ := cmd.Flags().GetStringArray("variant")
			transformSpecs, _ := cmd.Flags().GetStringArray("transform")
			templates := transform.ParseTemplateList(withTemplates)
			if len(templates) == 0 && len(variantSpecs) == 0 && len(transformSpecs) == 0 {
				return fmt.Errorf("nothing to compare: pass --with, --variant or --transform (see --list-templates)")
			}

			variants, err := parseVariants(variantSpecs, transformSpecs)
			if err != nil {
				return err
			}

			state, err := loadState(cmd, args)
			if err != nil {
				return err
			}
			warn(cmd, state)

			baseName, _ := cmd.Flags().GetString("base")
			configPath := ""
			if len(args) > 0 {
				configPath = args[0]
			}

			engine := compare.NewCompareEngine(a.newEngine(cmd))
			set, err := engine.Compare(cmd.Context(), state, compare.CompareOptions{
				BaseScenarioName: baseName,
				Templates:        templates,
				Variants:         variants,
				ConfigPath:       configPath,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			format, _ := cmd.Flags().GetString("format")
			var out string
			switch strings.ToLower(format) {
			case "table", "":
				out = (&compare.TableFormatter{}).Format(set)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(set) + "\n"
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(set)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
			default:
				return fmt.Errorf("unknown compare format: %s (valid: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringArray("variant", nil, "Ad-hoc variant as name:key=value,key=value (repeatable)")
	cmd.Flags().StringArray("transform", nil, "Single-transform variant as transform_name:params (repeatable)")
	cmd.Flags().String("set", "", "Override base inputs before comparing, e.g. markup_percent=20")
	cmd.Flags().String("base", "base", "Label for the base row")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List available templates and exit")
	cmd.Flags().Bool("debug", false, "Log every calculation stage")
	return cmd
}

// parseVariants builds one variant per --variant and per --transform flag, in flag order
func parseVariants(variantSpecs, transformSpecs []string) ([]compare.Variant, error) {
	variants := make([]compare.Variant, 0, len(variantSpecs)+len(transformSpecs))

	for _, spec := range variantSpecs {
		name, assignments, ok := strings.Cut(spec, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --variant %q, expected name:key=value,...", spec)
		}
		transforms, err := transform.ParseAssignments(assignments)
		if err != nil {
			return nil, fmt.Errorf("invalid --variant %s: %w", name, err)
		}
		if len(transforms) == 0 {
			return nil, fmt.Errorf("variant %s has no assignments", name)
		}
		variants = append(variants, compare.Variant{
			Name:        name,
			Description: strings.Join(transform.Describe(transforms), "; "),
			Transforms:  transforms,
		})
	}

	registry := transform.NewTransformRegistry()
	for _, spec := range transformSpecs {
		t, err := registry.ParseTransformSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid --transform: %w", err)
		}
		variants = append(variants, compare.Variant{
			Name:        t.Name(),
			Description: t.Description(),
			Transforms:  []transform.StateTransform{t},
		})
	}
	return variants, nil
}
