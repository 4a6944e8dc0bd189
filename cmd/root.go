// Package cmd implements the k6viz command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethpandaops/k6viz/internal/chart"
	"github.com/ethpandaops/k6viz/internal/config"
	"github.com/ethpandaops/k6viz/internal/report"
	"github.com/ethpandaops/k6viz/internal/table"
	"github.com/spf13/cobra"
)

// errUsage marks invocation errors that print the usage line instead of an error.
var errUsage = errors.New("usage")

var usageLine = fmt.Sprintf("Usage: %s <k6_summary.json>", config.ProgramName)

type rootOptions struct {
	outputDir   string
	showSummary bool
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   config.ProgramName + " <k6_summary.json>",
		Short: "Render charts from a k6 summary export",
		Long: `k6viz reads the JSON summary exported by k6 (--summary-export) and renders:

  k6_test_results.png     request timing breakdown, response time distribution,
                          throughput and check success rate (2x2 panels)
  iteration_duration.png  iteration duration distribution

Both files are written to the output directory and overwritten on every run.
Throughput rates assume a 30 second test.

Exit status is 0 on success and 1 on a wrong argument count, an unknown flag
or any load/render error. -h/--help prints this help and exits 0 without
reading any file.

Examples:
  k6viz summary.json
  k6viz --summary --output-dir charts summary.json`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected 1 argument, got %d", errUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], opts, stdout, stderr)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	rootCmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory to write charts to (default from K6VIZ_OUTPUT_DIR or .)")
	rootCmd.Flags().BoolVar(&opts.showSummary, "summary", false, "Print a summary table of the charted values")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	return rootCmd
}

func run(path string, opts *rootOptions, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}

	log := newLogger(stderr, cfg.LogLevel, opts.verbose)
	log.Debug(cfg.String())

	rep, err := report.NewLoader(log).Load(path)
	if err != nil {
		return err
	}

	summary, err := report.Extract(rep)
	if err != nil {
		return err
	}

	renderer := chart.NewRenderer(log, chart.Options{
		OutputDir: cfg.OutputDir,
		DPI:       cfg.DPI,
	})

	artifacts, err := renderer.Render(summary)
	if err != nil {
		return err
	}

	if opts.showSummary {
		formatter := table.NewSummaryFormatter(log, table.NewRenderer(log))
		fmt.Fprintln(stdout, formatter.Format(summary, artifacts))
	}

	fmt.Fprintf(stdout, "Visualization complete. Check %s and %s\n", config.ResultsFileName, config.IterationFileName)

	return nil
}

// Run executes the CLI with args and returns the process exit code. Every
// failure is reported on stdout as a usage line or an "Error:" line.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usageLine)
		} else {
			fmt.Fprintf(stdout, "Error: %v\n", err)
		}
		return 1
	}

	return 0
}

// Execute runs the root command against the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
