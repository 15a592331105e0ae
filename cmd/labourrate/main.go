package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/config"
	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/output"
	"github.com/rgehrsitz/labourrate/internal/server"
	"github.com/rgehrsitz/labourrate/internal/transform"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries settings loaded once for every command
type app struct {
	settings config.Settings
	now      func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{settings: config.DefaultSettings(), now: time.Now}

	root := &cobra.Command{
		Use:   "labourrate",
		Short: "Labour costing calculator CLI",
		Long: `Works out an hourly sell rate from wage, working time and overhead inputs:
total labour cost, annual billable hours, hourly overheads and the marked-up rate.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			settings, err := config.LoadSettings(files...)
			if err != nil {
				return err
			}
			a.settings = settings
			return nil
		},
	}
	root.PersistentFlags().String("env-file", "", "Environment file with LABOURRATE_* settings (default: .env if present)")

	root.AddCommand(
		a.calculateCmd(),
		a.validateCmd(),
		a.exampleCmd(),
		a.compareCmd(),
		a.sensitivityCmd(),
		a.markupCmd(),
		a.serveCmd(),
		a.parametersCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "labourrate %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// newEngine builds a calculation engine, logging stages when debug is on
func (a *app) newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode || a.settings.Debug {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

// loadState reads the optional input file and applies --set assignments.
// With no file the blank default state is used.
func loadState(cmd *cobra.Command, args []string) (domain.CalculatorState, error) {
	state := domain.DefaultState()
	if len(args) > 0 {
		loaded, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return state, err
		}
		state = *loaded
	}

	if cmd.Flags().Lookup("set") == nil {
		return state, nil
	}
	assignments, _ := cmd.Flags().GetString("set")
	transforms, err := transform.ParseAssignments(assignments)
	if err != nil {
		return state, fmt.Errorf("invalid --set: %w", err)
	}
	return transform.ApplyTransforms(state, transforms)
}

func warn(cmd *cobra.Command, state domain.CalculatorState) {
	for _, w := range config.Warnings(state) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
}

func (a *app) calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate the hourly sell rate and print a report",
		Long: `Calculate the hourly sell rate from an input file (YAML, JSON or HJSON).
Without a file the blank calculator is used, so every input comes from --set.

Examples:
  labourrate calculate job.yaml
  labourrate calculate job.yaml --format html --student "Sam Carter" --output report.html
  labourrate calculate --set weekly_gross=1000,standard_hours_per_day=8,markup_percent=20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState(cmd, args)
			if err != nil {
				return err
			}
			warn(cmd, state)

			results, err := a.newEngine(cmd).Calculate(cmd.Context(), state)
			if err != nil {
				return err
			}
			if !results.IsFinite() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: inputs are too large; some results overflowed and print as "+output.NotAvailable)
			}

			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = a.settings.Format
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown output format: %s (valid: %v, aliases: %v)",
					format, output.AvailableFormatterNames(), output.AvailableFormatAliases())
			}

			student, _ := cmd.Flags().GetString("student")
			if student == "" {
				student = a.settings.Student
			}
			report := output.NewReport(state, results, student, a.now())

			outPath, _ := cmd.Flags().GetString("output")
			switch outPath {
			case "":
				data, err := f.Format(report)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case "auto":
				filename, err := output.WriteFormatted(f, report, output.ExtensionFor(f))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			default:
				if err := output.WriteFormattedTo(f, report, outPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
				return nil
			}
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format (console, json, csv, markdown, html); default from LABOURRATE_FORMAT or console")
	cmd.Flags().String("set", "", "Override inputs, e.g. markup_percent=20,weekly_gross=1100")
	cmd.Flags().String("student", "", "Student name printed on the report")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file (\"auto\" for a timestamped name)")
	cmd.Flags().Bool("debug", false, "Log every calculation stage")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			warn(cmd, *state)
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", args[0])
			return nil
		},
	}
}

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example input file (YAML), or print it when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := config.CreateExampleConfiguration()
			if len(args) == 0 {
				data, err := config.MarshalConfiguration(state)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := config.SaveConfiguration(state, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}

func (a *app) parametersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parameters",
		Short: "List the input keys accepted by --set, sensitivity and templates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, p := range domain.Parameters() {
				unit := p.Suffix
				if p.Prefix != "" {
					unit = p.Prefix + " " + unit
				}
				fmt.Fprintf(out, "  %-24s %-26s %s\n", p.Key, p.Label, unit)
			}
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = a.settings.Addr
			}
			engine := a.newEngine(cmd)
			engine.SetLogger(simpleCLILogger{})
			engine.Cache = calculation.NewMemo(1024)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(engine, a.settings).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default from LABOURRATE_ADDR or :8080)")
	cmd.Flags().Bool("debug", false, "Log every calculation stage")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
