package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcasteel/chrome-bookmark-organizer/site"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Render the static browsing site from organized artifacts",
		Long: `Generate reads the organized per-category artifacts and renders a
static HTML site: an index page with category cards and a searchable
per-category page grouping bookmarks by domain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}

			generator, err := site.New(logger)
			if err != nil {
				return err
			}

			collection, err := site.Load(cfg.Workspace.OrganizedPath())
			if err != nil {
				return fmt.Errorf("load organized artifacts (run 'bookmarks organize' first): %w", err)
			}

			outputDir := cfg.Workspace.SitePath()
			if err := generator.Generate(collection, outputDir); err != nil {
				return err
			}

			fmt.Printf("Generated site with %d category pages in %s\n",
				len(collection.Categories), outputDir)
			return nil
		},
	}
}
