package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/config"
	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/output"
)

func (a *app) markupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markup [input-file]",
		Short: "Find the profit margin that reaches a target sell rate",
		Long: `Solve for the markup percent that makes the final hourly rate equal --target.
With --save the input file is rewritten with the solved markup.

Example:
  labourrate markup job.yaml --target 65`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetFloat64("target")
			if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
				return fmt.Errorf("--target must be a positive hourly rate")
			}

			state, err := loadState(cmd, args)
			if err != nil {
				return err
			}
			warn(cmd, state)

			adjusted, results, err := calculation.ApplyTargetRate(state, target)
			if err != nil {
				return err
			}
			if !results.IsFinite() {
				return fmt.Errorf("inputs are too large: results overflow the number range")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cost base:       %s\n", output.FormatRate(results.CostBasePerHour()))
			fmt.Fprintf(out, "Target rate:     %s (%s)\n", output.FormatRate(target), domain.GSTNote)
			fmt.Fprintf(out, "Required markup: %s\n", output.FormatPercentage(adjusted.MarkupPercent))
			if adjusted.MarkupPercent < 0 {
				fmt.Fprintln(out, "Warning: target is below cost; the job would run at a loss")
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				if len(args) == 0 {
					return fmt.Errorf("--save needs an input file")
				}
				if err := config.SaveConfiguration(adjusted, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "Markup saved to %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().Float64("target", 0, "Target sell rate per hour, excluding GST")
	cmd.Flags().String("set", "", "Override inputs before solving, e.g. weekly_gross=1100")
	cmd.Flags().Bool("save", false, "Write the solved markup back to the input file")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
