package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/output"
)

func (a *app) sensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity [input-file]",
		Short: "Sweep one input across a range and show how the sell rate responds",
		Long: `Sweep one input from --min to --max in evenly spaced steps.
Run "labourrate parameters" for the list of keys.

Example:
  labourrate sensitivity job.yaml --param markup_percent --min 0 --max 40 --steps 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := cmd.Flags().GetString("param")
			minValue, _ := cmd.Flags().GetFloat64("min")
			maxValue, _ := cmd.Flags().GetFloat64("max")
			steps, _ := cmd.Flags().GetInt("steps")
			format, _ := cmd.Flags().GetString("format")

			switch strings.ToLower(format) {
			case "console", "csv", "json":
			default:
				return fmt.Errorf("unknown sensitivity format: %s (valid: console, csv, json)", format)
			}
			formatter := output.NewSensitivityFormatter(format)

			state, err := loadState(cmd, args)
			if err != nil {
				return err
			}
			warn(cmd, state)

			analyzer := calculation.NewSensitivityAnalyzer(a.newEngine(cmd))
			analysis, err := analyzer.AnalyzeParameter(cmd.Context(), state, calculation.SensitivityParameter{
				Key:   domain.ParameterKey(key),
				Min:   minValue,
				Max:   maxValue,
				Steps: steps,
			})
			if err != nil {
				return fmt.Errorf("sensitivity analysis failed: %w", err)
			}

			out, err := formatter.FormatSensitivityAnalysis(analysis)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("param", string(domain.ParamMarkupPercent), "Input key to sweep")
	cmd.Flags().Float64("min", 0, "Lowest value of the sweep")
	cmd.Flags().Float64("max", 50, "Highest value of the sweep")
	cmd.Flags().Int("steps", 6, "Number of evenly spaced values, endpoints included")
	cmd.Flags().String("set", "", "Override inputs before sweeping, e.g. weekly_gross=1100")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	cmd.Flags().Bool("debug", false, "Log every calculation stage")
	return cmd
}
