package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcasteel/chrome-bookmark-organizer/extract"
)

func newChunkCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chunk [input-file]",
		Short: "Split a bookmarks export into chunk files",
		Long: `Chunk splits a large exported bookmarks HTML file into numbered,
size-bounded chunk files with line overlap between neighbors, so later
stages can process the export piece by piece.

The input file defaults to the workspace input from configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}

			input := cfg.Workspace.Input
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				return fmt.Errorf("no input file: pass one as an argument or set workspace.input in config")
			}

			chunker, err := extract.NewChunker(cfg.Chunker, logger)
			if err != nil {
				return err
			}

			outputDir := cfg.Workspace.ChunksPath()
			metas, err := chunker.Chunk(input, outputDir)
			if err != nil {
				return fmt.Errorf("chunk %s: %w", input, err)
			}

			fmt.Printf("Wrote %d chunks to %s\n", len(metas), outputDir)
			return nil
		},
	}
}
