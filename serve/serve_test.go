package serve

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
	"github.com/halcasteel/chrome-bookmark-organizer/organize"
	"github.com/halcasteel/chrome-bookmark-organizer/site"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServer(t *testing.T, siteDir string) *Server {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SiteDir = siteDir
	s, err := New(cfg, nil, testLogger())
	require.NoError(t, err)
	return s
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SiteDir = "/tmp/site"
	assert.NoError(t, cfg.Validate())

	assert.Error(t, Config{SiteDir: "/tmp/site", Debounce: time.Second}.Validate())
	assert.Error(t, Config{Addr: ":8080", Debounce: time.Second}.Validate())

	cfg.Debounce = 0
	assert.Error(t, cfg.Validate())
}

func TestHandler_ServesSiteWithoutCaching(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>hello</html>"), 0644))

	s := testServer(t, dir)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "hello")
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "0", resp.Header.Get("Expires"))
}

func TestHandler_Healthz(t *testing.T) {
	s := testServer(t, t.TempDir())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Metrics(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0644))

	s := testServer(t, dir)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	// Generate one countable request first.
	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "bookmarks_serve_http_requests_total")
}

func writeOrganizedFixture(t *testing.T, dir string) {
	t.Helper()
	summary := bookmark.OrganizationSummary{
		OriginalCount: 1,
		UniqueCount:   1,
		Categories:    map[string]int{"Other": 1},
	}
	data, err := json.Marshal(summary)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, organize.SummaryFile), data, 0644))

	categoryDir := filepath.Join(dir, "Other")
	require.NoError(t, os.MkdirAll(categoryDir, 0755))
	chunk := bookmark.CategoryChunk{
		Category: "Other", Chunk: 1, TotalChunks: 1, BookmarksCount: 1,
		Bookmarks: []bookmark.Raw{
			{URL: "https://example.com/", Title: "Example", Domain: "example.com"},
		},
	}
	data, err = json.Marshal(chunk)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(categoryDir, "Other.json"), data, 0644))
}

func TestRegenerate(t *testing.T) {
	organizedDir := t.TempDir()
	siteDir := t.TempDir()
	writeOrganizedFixture(t, organizedDir)

	generator, err := site.New(testLogger())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.SiteDir = siteDir
	cfg.OrganizedDir = organizedDir
	s, err := New(cfg, generator, testLogger())
	require.NoError(t, err)

	require.NoError(t, s.regenerate())

	index, err := os.ReadFile(filepath.Join(siteDir, site.IndexFile))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Other")
}

func TestRegenerate_MissingArtifacts(t *testing.T) {
	generator, err := site.New(testLogger())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.SiteDir = t.TempDir()
	cfg.OrganizedDir = t.TempDir()
	s, err := New(cfg, generator, testLogger())
	require.NoError(t, err)

	assert.Error(t, s.regenerate())
}
