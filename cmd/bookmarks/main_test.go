package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
)

func TestRootCmdSubcommands(t *testing.T) {
	cmd := rootCmd()

	want := []string{"chunk", "extract", "organize", "validate", "generate", "serve", "services", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		logger := newLogger(tt.level)
		if !logger.Enabled(nil, tt.want) {
			t.Errorf("level %q: expected %v to be enabled", tt.level, tt.want)
		}
		if tt.want > slog.LevelDebug && logger.Enabled(nil, tt.want-4) {
			t.Errorf("level %q: expected %v to be disabled", tt.level, tt.want-4)
		}
	}
}

func TestLoadConfigExplicitFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bookmarks.yaml")
	content := "workspace:\n  root: " + tmpDir + "\norganize:\n  chunk_size: 100\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := &globalOptions{configPath: configPath, logLevel: "error"}
	cfg, err := loadConfig(opts, newLogger(opts.logLevel))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Workspace.Root != tmpDir {
		t.Errorf("workspace root = %q, want %q", cfg.Workspace.Root, tmpDir)
	}
	if cfg.Organize.ChunkSize != 100 {
		t.Errorf("chunk size = %d, want 100", cfg.Organize.ChunkSize)
	}
	if cfg.Serve.SiteDir != cfg.Workspace.SitePath() {
		t.Errorf("site dir = %q, want workspace default %q", cfg.Serve.SiteDir, cfg.Workspace.SitePath())
	}
	if cfg.Serve.OrganizedDir != cfg.Workspace.OrganizedPath() {
		t.Errorf("organized dir = %q, want workspace default %q", cfg.Serve.OrganizedDir, cfg.Workspace.OrganizedPath())
	}
}

func TestLoadConfigWorkspaceFlagOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bookmarks.yaml")
	if err := os.WriteFile(configPath, []byte("workspace:\n  root: /somewhere/else\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := &globalOptions{configPath: configPath, workspace: tmpDir, logLevel: "error"}
	cfg, err := loadConfig(opts, newLogger(opts.logLevel))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Workspace.Root != tmpDir {
		t.Errorf("workspace root = %q, want flag override %q", cfg.Workspace.Root, tmpDir)
	}
}

func TestLoadExtracted(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bookmarks_extracted.json")

	raws := []bookmark.Raw{
		{URL: "https://example.com/a", Title: "A", Timestamp: 1700000000},
		{URL: "https://example.com/b", Title: "B"},
	}
	data, err := json.Marshal(raws)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := loadExtracted(path)
	if err != nil {
		t.Fatalf("loadExtracted: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d bookmarks, want 2", len(loaded))
	}
	if loaded[0].URL != "https://example.com/a" {
		t.Errorf("first URL = %q", loaded[0].URL)
	}
}

func TestLoadExtractedMissingFile(t *testing.T) {
	_, err := loadExtracted(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "bookmarks extract") {
		t.Errorf("error should hint at the extract command, got: %v", err)
	}
}
