package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcasteel/chrome-bookmark-organizer/extract"
)

func newExtractCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Parse bookmark entries out of chunk files",
		Long: `Extract reads every chunk file a prior chunk run produced, parses
the bookmark anchors out of the HTML, and writes the combined bookmark
list plus a domain and temporal analysis report to the workspace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}

			extractor := extract.NewExtractor(logger)
			raws, err := extractor.ExtractDir(cfg.Workspace.ChunksPath())
			if err != nil {
				return err
			}

			outputDir := cfg.Workspace.AnalysisPath()
			if err := extract.SaveResults(outputDir, raws); err != nil {
				return err
			}

			report := extract.Analyze(raws)
			fmt.Printf("Extracted %d bookmarks (%d unique domains) to %s\n",
				report.Summary.TotalBookmarks, report.Summary.UniqueDomains, outputDir)
			return nil
		},
	}
}
