package site

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
	"github.com/halcasteel/chrome-bookmark-organizer/organize"
	"github.com/halcasteel/chrome-bookmark-organizer/taxonomy"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(testLogger())
	require.NoError(t, err)
	g.Now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return g
}

func categorized(url, title, domain, category string) bookmark.Categorized {
	return bookmark.Categorized{
		Raw:      bookmark.Raw{URL: url, Title: title, Domain: domain},
		Category: category,
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	collection := &Collection{
		Summary: bookmark.OrganizationSummary{DuplicatesRemoved: 7},
		Categories: []CategoryBookmarks{
			{Name: "Cloud & DevOps", Bookmarks: []bookmark.Categorized{
				categorized("https://kubernetes.io/docs", "Kubernetes Docs", "kubernetes.io", "Cloud & DevOps"),
			}},
			{Name: "AI & Machine Learning", Bookmarks: []bookmark.Categorized{
				categorized("https://arxiv.org/abs/1", "Paper One - Transformers", "arxiv.org", "AI & Machine Learning"),
				categorized("https://arxiv.org/abs/2", "Paper Two", "arxiv.org", "AI & Machine Learning"),
			}},
			{Name: "Empty Category"},
		},
	}

	require.NoError(t, testGenerator(t).Generate(collection, dir))

	index, err := os.ReadFile(filepath.Join(dir, IndexFile))
	require.NoError(t, err)
	html := string(index)
	assert.Contains(t, html, "AI &amp; Machine Learning")
	assert.Contains(t, html, "Cloud &amp; DevOps")
	assert.NotContains(t, html, "Empty Category", "empty categories get no card")
	assert.Contains(t, html, "Generated on 2026-08-01 12:00:00")
	assert.Less(t,
		strings.Index(html, "AI &amp; Machine Learning"),
		strings.Index(html, "Cloud &amp; DevOps"),
		"larger categories are listed first")

	page, err := os.ReadFile(filepath.Join(dir, "AI_and_Machine_Learning.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "2 bookmarks")
	assert.Contains(t, string(page), "arxiv.org")
	assert.Contains(t, string(page), "Paper One - Transformers")
	assert.Contains(t, string(page), `class="bookmark-description"`)

	_, err = os.Stat(filepath.Join(dir, StyleFile))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "Empty_Category.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_EscapesTitles(t *testing.T) {
	dir := t.TempDir()
	collection := &Collection{
		Categories: []CategoryBookmarks{
			{Name: "Other", Bookmarks: []bookmark.Categorized{
				categorized("https://sketchy.example/", `<script>alert("x")</script>`, "sketchy.example", "Other"),
			}},
		},
	}

	require.NoError(t, testGenerator(t).Generate(collection, dir))

	page, err := os.ReadFile(filepath.Join(dir, "Other.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(page), `<script>alert`)
	assert.Contains(t, string(page), "&lt;script&gt;")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	summary := bookmark.OrganizationSummary{
		OriginalCount: 3,
		UniqueCount:   3,
		Categories:    map[string]int{"AI & Machine Learning": 3},
	}
	writeTestJSON(t, filepath.Join(dir, organize.SummaryFile), summary)

	categoryDir := filepath.Join(dir, taxonomy.SafeName("AI & Machine Learning"))
	require.NoError(t, os.MkdirAll(categoryDir, 0755))
	writeTestJSON(t, filepath.Join(categoryDir, "AI_and_Machine_Learning_001.json"), bookmark.CategoryChunk{
		Category: "AI & Machine Learning", Chunk: 1, TotalChunks: 2, BookmarksCount: 2,
		Bookmarks: []bookmark.Raw{
			{URL: "https://a.example/1", Title: "One", Domain: "a.example"},
			{URL: "https://a.example/2", Title: "Two", Domain: "a.example"},
		},
	})
	writeTestJSON(t, filepath.Join(categoryDir, "AI_and_Machine_Learning_002.json"), bookmark.CategoryChunk{
		Category: "AI & Machine Learning", Chunk: 2, TotalChunks: 2, BookmarksCount: 1,
		Bookmarks: []bookmark.Raw{
			{URL: "https://a.example/3", Title: "Three", Domain: "a.example"},
		},
	})

	collection, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, collection.Categories, 1)
	assert.Equal(t, "AI & Machine Learning", collection.Categories[0].Name)
	require.Len(t, collection.Categories[0].Bookmarks, 3)
	assert.Equal(t, "One", collection.Categories[0].Bookmarks[0].Title, "chunk files load in order")
	assert.Equal(t, "Three", collection.Categories[0].Bookmarks[2].Title)
}

func TestLoad_MissingSummary(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestTitleDescription(t *testing.T) {
	assert.Equal(t, "A distributed cache", titleDescription("groupcache - A distributed cache"))
	assert.Equal(t, "Hacker News", titleDescription("Show HN | Hacker News"))
	assert.Empty(t, titleDescription("Plain title"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Unknown", formatDate(0))
	assert.Equal(t, time.Unix(1686700000, 0).Format("2006-01-02"), formatDate(1686700000))
}

func writeTestJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}
