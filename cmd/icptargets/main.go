package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"icptargets/internal"
	"icptargets/internal/config"
	"icptargets/internal/logger"
	"icptargets/internal/pipeline"
)

func main() {
	must(newRootCmd().Execute())
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "icptargets",
		Short:         "Collect ICP filing domains/IPs from xlsx exports into one targets CSV",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout())
		},
	}
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) { usage(cmd.OutOrStdout()) })
	return rootCmd
}

func run(cfg config.Config, out io.Writer) error {
	log := logger.NewWithWriter(cfg, out)

	fmt.Fprintln(out, "processing xlsx files...")
	svc := pipeline.NewProcessingService(cfg, log)
	summary, err := svc.Run()
	switch {
	case errors.Is(err, pipeline.ErrTargetsDirMissing):
		fmt.Fprintf(out, "targets directory not found: %s\n\n", cfg.TargetsDir)
		usage(out)
		return nil
	case errors.Is(err, pipeline.ErrNoInputFiles):
		fmt.Fprintf(out, "no xlsx files found in %s\n\n", cfg.TargetsDir)
		usage(out)
		return nil
	case err != nil:
		return err
	}

	// An empty run is already reported by the service log.
	if summary.OutputPath != "" {
		fmt.Fprintf(out, "\ndone, report saved to: %s\n", summary.OutputPath)
		fmt.Fprintf(out, "organizations: %d\n", len(summary.Records))
	}
	if skipped := totalSkipped(summary); skipped > 0 {
		fmt.Fprintf(out, "skipped files: %d of %d\n", skipped, summary.Found)
		for _, reason := range internal.SkipReasons {
			if n := summary.Skipped[reason]; n > 0 {
				fmt.Fprintf(out, "  %s: %d\n", reason, n)
			}
		}
	}
	fmt.Fprintln(out, "finished")
	return nil
}

func totalSkipped(summary pipeline.RunSummary) int {
	n := 0
	for _, c := range summary.Skipped {
		n += c
	}
	return n
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "usage: icptargets")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Extracts the domains/IPs of ICP filing exports and writes one targets CSV.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "steps:")
	fmt.Fprintln(out, "  1. create a 'targets' directory next to where you run the command")
	fmt.Fprintln(out, "  2. put the xlsx exports into 'targets'")
	fmt.Fprintln(out, "  3. each workbook needs a sheet whose name contains '"+config.DefaultSheetKeyword+"'")
	fmt.Fprintln(out, "  4. that sheet needs a column whose header contains '"+config.DefaultColumnKeyword+"'")
	fmt.Fprintln(out, "  5. run: icptargets")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "file naming:")
	fmt.Fprintln(out, "  <organization>-YYYY-MM-DD--<timestamp>.xlsx")
	fmt.Fprintln(out, "  example: 示例机构-2025-01-22--1735845402.xlsx")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "output:")
	fmt.Fprintln(out, "  results/targets-YYYYMMDD-<timestamp>.csv with two columns:")
	fmt.Fprintln(out, "    organization")
	fmt.Fprintln(out, "    all of its domains/IPs, newline separated, double-quoted when more than one")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "optional environment (.env is read when present):")
	fmt.Fprintln(out, "  TARGETS_DIR RESULTS_DIR ICP_SHEET_KEYWORD DOMAIN_COLUMN_KEYWORD LOG_LEVEL LOG_FORMAT")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
