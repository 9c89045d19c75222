// Package config provides configuration loading and management for the
// bookmark organizer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/halcasteel/chrome-bookmark-organizer/extract"
	"github.com/halcasteel/chrome-bookmark-organizer/linkcheck"
	"github.com/halcasteel/chrome-bookmark-organizer/organize"
	"github.com/halcasteel/chrome-bookmark-organizer/serve"
	"github.com/halcasteel/chrome-bookmark-organizer/supervise"
)

// Config represents the complete organizer configuration.
type Config struct {
	Workspace WorkspaceConfig       `yaml:"workspace"`
	Chunker   extract.ChunkerConfig `yaml:"chunker"`
	Organize  organize.Config       `yaml:"organize"`
	Linkcheck linkcheck.Config      `yaml:"linkcheck"`
	Serve     serve.Config          `yaml:"serve"`
	Services  []supervise.Service   `yaml:"services"`
}

// WorkspaceConfig locates the working tree all pipeline stages share.
type WorkspaceConfig struct {
	// Root is the workspace directory. Every stage reads and writes
	// under it. Empty means the current directory.
	Root string `yaml:"root"`
	// Input is the exported bookmarks HTML file.
	Input string `yaml:"input"`
	// TaxonomyFile optionally overrides the built-in category taxonomy.
	TaxonomyFile string `yaml:"taxonomy_file"`
}

// Workspace subdirectories, one per pipeline stage.
const (
	ChunksDir     = "CHUNKS"
	AnalysisDir   = "ANALYSIS"
	OrganizedDir  = "ORGANIZED"
	ValidationDir = "VALIDATION"
	SiteDir       = "SITE"
)

// ChunksPath returns the chunk output directory.
func (w WorkspaceConfig) ChunksPath() string { return filepath.Join(w.Root, ChunksDir) }

// AnalysisPath returns the extraction output directory.
func (w WorkspaceConfig) AnalysisPath() string { return filepath.Join(w.Root, AnalysisDir) }

// OrganizedPath returns the organization artifact directory.
func (w WorkspaceConfig) OrganizedPath() string { return filepath.Join(w.Root, OrganizedDir) }

// ValidationPath returns the link validation output directory.
func (w WorkspaceConfig) ValidationPath() string { return filepath.Join(w.Root, ValidationDir) }

// SitePath returns the generated site directory.
func (w WorkspaceConfig) SitePath() string { return filepath.Join(w.Root, SiteDir) }

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	cfg := &Config{
		Chunker:   extract.DefaultChunkerConfig(),
		Organize:  organize.DefaultConfig(),
		Linkcheck: linkcheck.DefaultConfig(),
		Serve:     serve.DefaultConfig(),
	}
	return cfg
}

// Validate checks that the configuration is valid. The serve section is
// only validated once its directories have been resolved, since they
// default from the workspace at load time.
func (c *Config) Validate() error {
	if err := c.Chunker.Validate(); err != nil {
		return fmt.Errorf("chunker: %w", err)
	}
	if err := c.Organize.Validate(); err != nil {
		return fmt.Errorf("organize: %w", err)
	}
	if err := c.Linkcheck.Validate(); err != nil {
		return fmt.Errorf("linkcheck: %w", err)
	}
	for _, svc := range c.Services {
		if err := svc.Validate(); err != nil {
			return fmt.Errorf("services: %w", err)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file layered over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Workspace.Root != "" {
		c.Workspace.Root = other.Workspace.Root
	}
	if other.Workspace.Input != "" {
		c.Workspace.Input = other.Workspace.Input
	}
	if other.Workspace.TaxonomyFile != "" {
		c.Workspace.TaxonomyFile = other.Workspace.TaxonomyFile
	}

	if other.Chunker.MaxChunkBytes != 0 {
		c.Chunker.MaxChunkBytes = other.Chunker.MaxChunkBytes
	}
	if other.Chunker.OverlapPercent != 0 {
		c.Chunker.OverlapPercent = other.Chunker.OverlapPercent
	}

	if other.Organize.ChunkSize != 0 {
		c.Organize.ChunkSize = other.Organize.ChunkSize
	}

	if other.Linkcheck.Workers != 0 {
		c.Linkcheck.Workers = other.Linkcheck.Workers
	}
	if other.Linkcheck.Timeout != 0 {
		c.Linkcheck.Timeout = other.Linkcheck.Timeout
	}
	if other.Linkcheck.RatePerSecond != 0 {
		c.Linkcheck.RatePerSecond = other.Linkcheck.RatePerSecond
	}
	if other.Linkcheck.UserAgent != "" {
		c.Linkcheck.UserAgent = other.Linkcheck.UserAgent
	}

	if other.Serve.Addr != "" {
		c.Serve.Addr = other.Serve.Addr
	}
	if other.Serve.SiteDir != "" {
		c.Serve.SiteDir = other.Serve.SiteDir
	}
	if other.Serve.OrganizedDir != "" {
		c.Serve.OrganizedDir = other.Serve.OrganizedDir
	}
	if other.Serve.Debounce != 0 {
		c.Serve.Debounce = other.Serve.Debounce
	}

	if len(other.Services) > 0 {
		c.Services = other.Services
	}
}
