// Package main provides the bookmarks binary entry point. It drives
// the full pipeline from an exported bookmarks HTML file to a browsable
// static site: chunk, extract, organize, validate, generate, serve.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
	"github.com/halcasteel/chrome-bookmark-organizer/config"
	"github.com/halcasteel/chrome-bookmark-organizer/taxonomy"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "bookmarks"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalOptions carries flags shared by every subcommand.
type globalOptions struct {
	configPath string
	workspace  string
	logLevel   string
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Organize exported browser bookmarks",
		Long: `Bookmarks processes a browser bookmark export into an organized,
deduplicated, categorized collection and serves it as a static site.

The pipeline stages are:
- chunk:    split a large export into overlapping chunk files
- extract:  parse bookmark entries out of the chunks
- organize: deduplicate, categorize, and write partitioned artifacts
- validate: probe URLs for dead links
- generate: render the static browsing site
- serve:    host the site and regenerate on changes`,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace directory (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newChunkCmd(opts),
		newExtractCmd(opts),
		newOrganizeCmd(opts),
		newValidateCmd(opts),
		newGenerateCmd(opts),
		newServeCmd(opts),
		newServicesCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func loadConfig(opts *globalOptions, logger *slog.Logger) (*config.Config, error) {
	var cfg *config.Config
	if opts.configPath != "" {
		loaded, err := config.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		loaded, err := config.NewLoader(logger).Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.workspace != "" {
		cfg.Workspace.Root = opts.workspace
	}
	if cfg.Workspace.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		cfg.Workspace.Root = cwd
	}
	if cfg.Serve.SiteDir == "" {
		cfg.Serve.SiteDir = cfg.Workspace.SitePath()
	}
	if cfg.Serve.OrganizedDir == "" {
		cfg.Serve.OrganizedDir = cfg.Workspace.OrganizedPath()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadTaxonomy(cfg *config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.Workspace.TaxonomyFile == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.LoadFromFile(cfg.Workspace.TaxonomyFile)
}

// loadExtracted reads the bookmark list an extract run wrote.
func loadExtracted(path string) ([]bookmark.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read extracted bookmarks (run 'bookmarks extract' first): %w", err)
	}
	var raws []bookmark.Raw
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse extracted bookmarks: %w", err)
	}
	return raws, nil
}
