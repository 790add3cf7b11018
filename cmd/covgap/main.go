package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/covgap/internal/config"
	"github.com/unbound-force/covgap/internal/gap"
	"github.com/unbound-force/covgap/internal/lcov"
	"github.com/unbound-force/covgap/internal/report"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "covgap",
		Short: "covgap — LCOV coverage gap analysis",
		Long: `Covgap parses an LCOV tracefile and reports which files need
additional test coverage to reach a target threshold, prioritized
by how far below the target each file sits.`,
		Version: version,
	}

	root.AddCommand(newReportCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// reportParams holds the parsed flags for the report command.
type reportParams struct {
	tracefile   string
	format      string
	target      float64
	top         int
	configPath  string
	interactive bool
	stdout      io.Writer
}

// resolveInputs merges flags over the config file and returns the
// tracefile path, analysis options, and display options.
func resolveInputs(tracefile, configPath string, target float64, top int) (string, gap.Options, report.Options, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", gap.Options{}, report.Options{}, err
	}

	input := tracefile
	if input == "" {
		input = cfg.Input
	}
	if target <= 0 {
		target = cfg.Target
	}
	if top <= 0 {
		top = cfg.Top
	}

	opts := gap.Options{Target: target, LowestCount: top}
	disp := report.Options{StripPrefixes: cfg.StripPrefixes}
	return input, opts, disp, nil
}

// runReport is the extracted, testable body of the report command.
func runReport(p reportParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	input, opts, disp, err := resolveInputs(p.tracefile, p.configPath, p.target, p.top)
	if err != nil {
		return err
	}

	logger.Info("parsing tracefile", "path", input)
	tf, err := lcov.ParseFile(input)
	if err != nil {
		return err
	}

	if tf.Len() == 0 {
		logger.Warn("tracefile contains no source file records")
	}

	a := gap.Analyze(tf, opts)
	logger.Info("analysis complete",
		"files", a.Summary.Files, "coverage", fmt.Sprintf("%.1f%%", a.Summary.Percent))

	if p.interactive {
		return runInteractiveReport(a, disp)
	}

	switch p.format {
	case "json":
		return report.WriteJSON(p.stdout, a)
	default:
		return report.WriteText(p.stdout, a, disp)
	}
}

func newReportCmd() *cobra.Command {
	var (
		format      string
		target      float64
		top         int
		configPath  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "report [tracefile]",
		Short: "Print the coverage gap report for an LCOV tracefile",
		Long: `Parse an LCOV tracefile and print the per-file coverage table,
the aggregate summary against the target, and the lowest-coverage
files prioritized for testing.

Without an argument the configured input path is read
(coverage/lcov.info by default).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tracefile string
			if len(args) == 1 {
				tracefile = args[0]
			}
			return runReport(reportParams{
				tracefile:   tracefile,
				format:      format,
				target:      target,
				top:         top,
				configPath:  configPath,
				interactive: interactive,
				stdout:      os.Stdout,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().Float64Var(&target, "target", 0,
		"coverage target percentage (default 80, overrides config)")
	cmd.Flags().IntVar(&top, "top", 0,
		"size of the lowest-coverage list (default 5, overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"config file path (default .covgap.yml if present)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing the report")

	return cmd
}

// checkParams holds the parsed flags for the check command.
type checkParams struct {
	tracefile  string
	target     float64
	configPath string
	stderr     io.Writer
}

// runCheck is the extracted, testable body of the check command.
// It prints a one-line summary to stderr and fails when overall
// coverage is below the target.
func runCheck(p checkParams) error {
	input, opts, _, err := resolveInputs(p.tracefile, p.configPath, p.target, 0)
	if err != nil {
		return err
	}

	tf, err := lcov.ParseFile(input)
	if err != nil {
		return err
	}

	sum := gap.Analyze(tf, opts).Summary

	status := "PASS"
	if sum.Percent < sum.Target {
		status = "FAIL"
	}
	fmt.Fprintf(p.stderr, "Coverage: %.1f%% (target %.1f%%) %s\n",
		sum.Percent, sum.Target, status)

	if sum.Percent < sum.Target {
		return fmt.Errorf("coverage %.1f%% is below target %.1f%% (%d lines needed)",
			sum.Percent, sum.Target, sum.LinesNeeded)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	var (
		target     float64
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "check [tracefile]",
		Short: "Fail when overall coverage is below the target",
		Long: `Parse an LCOV tracefile and exit non-zero when overall line
coverage is below the target threshold. Intended for CI gates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tracefile string
			if len(args) == 1 {
				tracefile = args[0]
			}
			return runCheck(checkParams{
				tracefile:  tracefile,
				target:     target,
				configPath: configPath,
				stderr:     os.Stderr,
			})
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0,
		"coverage target percentage (default 80, overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"config file path (default .covgap.yml if present)")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for covgap report output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of covgap report --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
