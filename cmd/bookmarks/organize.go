package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/halcasteel/chrome-bookmark-organizer/extract"
	"github.com/halcasteel/chrome-bookmark-organizer/organize"
)

func newOrganizeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "organize",
		Short: "Deduplicate, categorize, and partition extracted bookmarks",
		Long: `Organize runs the extracted bookmark list through URL
normalization, deduplication, and categorization, then writes the
partitioned per-category artifacts, the duplicates report, and the run
summary to the workspace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}

			raws, err := loadExtracted(filepath.Join(cfg.Workspace.AnalysisPath(), extract.ExtractedFile))
			if err != nil {
				return err
			}

			tax, err := loadTaxonomy(cfg)
			if err != nil {
				return fmt.Errorf("load taxonomy: %w", err)
			}

			pipeline, err := organize.New(tax, cfg.Organize, logger)
			if err != nil {
				return err
			}

			result := pipeline.Run(raws)
			outputDir := cfg.Workspace.OrganizedPath()
			if err := pipeline.WriteArtifacts(result, outputDir); err != nil {
				return err
			}

			fmt.Printf("Organized %d bookmarks into %d categories (%d duplicates removed), artifacts in %s\n",
				result.Summary.UniqueCount, len(result.CategoryOrder),
				result.Summary.DuplicatesRemoved, outputDir)
			return nil
		},
	}
}
