package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/halcasteel/chrome-bookmark-organizer/extract"
	"github.com/halcasteel/chrome-bookmark-organizer/linkcheck"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	var (
		suspiciousOnly bool
		singleURL      string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Probe bookmark URLs for dead links",
		Long: `Validate probes every extracted bookmark URL over HTTP and writes
the valid list, the invalid list, and an error-type report to the
workspace.

With --suspicious-only, only bookmarks that look likely to be dead are
probed: URLs on defunct hosting patterns, bookmarks older than five
years, and titles that already read like error pages. Bookmarks on
well-known reliable domains are always skipped in this mode.

With --url, a single URL is checked and the result printed as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			metrics := linkcheck.NewMetrics(prometheus.NewRegistry())
			checker, err := linkcheck.New(cfg.Linkcheck, metrics, logger)
			if err != nil {
				return err
			}

			if singleURL != "" {
				result := checker.Check(ctx, singleURL)
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			raws, err := loadExtracted(filepath.Join(cfg.Workspace.AnalysisPath(), extract.ExtractedFile))
			if err != nil {
				return err
			}

			total := len(raws)
			if suspiciousOnly {
				suspicious, confident := linkcheck.NewTriage().Split(raws)
				fmt.Printf("Checking %d suspicious bookmarks, skipping %d confident ones\n",
					len(suspicious), len(confident))
				raws = suspicious
			}

			outcomes, err := checker.CheckAll(ctx, raws)
			if err != nil {
				return err
			}

			outputDir := cfg.Workspace.ValidationPath()
			if err := linkcheck.WriteResults(outcomes, outputDir, time.Now()); err != nil {
				return err
			}

			report := linkcheck.BuildReport(outcomes, time.Now())
			fmt.Printf("Checked %d of %d bookmarks: %d valid, %d invalid (%s), results in %s\n",
				report.CheckedBookmarks, total, report.ValidCount, report.InvalidCount,
				report.ValidityRate, outputDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&suspiciousOnly, "suspicious-only", false, "Only probe bookmarks that look likely to be dead")
	cmd.Flags().StringVar(&singleURL, "url", "", "Check a single URL and print the result")

	return cmd
}
