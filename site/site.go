// Package site renders an organized bookmark collection into a static
// browsable website: an index of category cards plus one page per
// category with domain grouping and client-side search.
package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
	"github.com/halcasteel/chrome-bookmark-organizer/organize"
	"github.com/halcasteel/chrome-bookmark-organizer/taxonomy"
)

// IndexFile is the site entry point.
const IndexFile = "index.html"

// StyleFile is the shared stylesheet.
const StyleFile = "style.css"

// Collection is an organized bookmark set loaded back from disk
// artifacts, ready for rendering.
type Collection struct {
	Summary    bookmark.OrganizationSummary
	Categories []CategoryBookmarks
}

// CategoryBookmarks holds one category's bookmarks in artifact order.
type CategoryBookmarks struct {
	Name      string
	Bookmarks []bookmark.Categorized
}

// Generator renders a Collection to static HTML.
type Generator struct {
	logger *slog.Logger

	// Now is injectable for reproducible footers.
	Now func() time.Time

	indexTmpl    *template.Template
	categoryTmpl *template.Template
}

// New creates a Generator. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	indexTmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	categoryTmpl, err := template.New("category").Parse(categoryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse category template: %w", err)
	}
	return &Generator{
		logger:       logger,
		Now:          time.Now,
		indexTmpl:    indexTmpl,
		categoryTmpl: categoryTmpl,
	}, nil
}

// Load reads the organization summary and every category chunk file
// from an organized output directory.
func Load(organizedDir string) (*Collection, error) {
	data, err := os.ReadFile(filepath.Join(organizedDir, organize.SummaryFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read organization summary: %w", err)
	}
	var summary bookmark.OrganizationSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse organization summary: %w", err)
	}

	collection := &Collection{Summary: summary}
	for name := range summary.Categories {
		dir := filepath.Join(organizedDir, taxonomy.SafeName(name))
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to glob category %s: %w", name, err)
		}
		sort.Strings(matches)

		category := CategoryBookmarks{Name: name}
		for _, path := range matches {
			chunkData, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			var chunk bookmark.CategoryChunk
			if err := json.Unmarshal(chunkData, &chunk); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			// Chunk files persist bare Raw records; the category is the
			// chunk's own label.
			for _, raw := range chunk.Bookmarks {
				category.Bookmarks = append(category.Bookmarks, bookmark.Categorized{
					Raw:      raw,
					Category: chunk.Category,
				})
			}
		}
		collection.Categories = append(collection.Categories, category)
	}

	// Summary categories come from a map; restore a stable order.
	sort.Slice(collection.Categories, func(i, j int) bool {
		return collection.Categories[i].Name < collection.Categories[j].Name
	})
	return collection, nil
}

// Generate writes the index page, one page per non-empty category, and
// the stylesheet into outputDir.
func (g *Generator) Generate(collection *Collection, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create site directory: %w", err)
	}

	total := 0
	for _, category := range collection.Categories {
		total += len(category.Bookmarks)
	}

	index := indexView{
		TotalBookmarks:    total,
		Categories:        0,
		DuplicatesRemoved: collection.Summary.DuplicatesRemoved,
		GeneratedAt:       g.Now().Format("2006-01-02 15:04:05"),
	}
	for _, category := range collection.Categories {
		if len(category.Bookmarks) == 0 {
			continue
		}
		index.Categories++
		index.Cards = append(index.Cards, newCategoryCard(category))

		view := newCategoryView(category)
		if err := g.render(g.categoryTmpl, filepath.Join(outputDir, view.File), view); err != nil {
			return err
		}
	}

	// Index cards sorted by size, largest first.
	sort.SliceStable(index.Cards, func(i, j int) bool {
		return index.Cards[i].Count > index.Cards[j].Count
	})

	if err := g.render(g.indexTmpl, filepath.Join(outputDir, IndexFile), index); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, StyleFile), []byte(styleSheet), 0644); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}

	g.logger.Info("site generated",
		slog.String("dir", outputDir),
		slog.Int("pages", index.Categories+1),
		slog.Int("bookmarks", total))
	return nil
}

func (g *Generator) render(tmpl *template.Template, path string, view any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, view); err != nil {
		return fmt.Errorf("failed to render %s: %w", filepath.Base(path), err)
	}
	return nil
}

type indexView struct {
	TotalBookmarks    int
	Categories        int
	DuplicatesRemoved int
	GeneratedAt       string
	Cards             []categoryCard
}

type categoryCard struct {
	Emoji      string
	Name       string
	File       string
	Count      int
	TopDomains []string
}

type categoryView struct {
	Name   string
	File   string
	Count  int
	Groups []domainGroup
}

type domainGroup struct {
	Domain  string
	Favicon string
	Items   []bookmarkItem
}

type bookmarkItem struct {
	Title       string
	URL         string
	Date        string
	Description string
	Search      string
}

// categoryEmoji decorates known category pages on the index.
var categoryEmoji = map[string]string{
	"AI & Machine Learning":     "🤖",
	"Programming & Development": "💻",
	"Cloud & DevOps":            "☁️",
	"News & Media":              "📰",
	"Social Media & Forums":     "👥",
	"Education & Learning":      "🎓",
	"Science & Research":        "🔬",
	"E-commerce & Shopping":     "🛒",
	"Entertainment":             "🎬",
	"Finance & Investment":      "💰",
	"Productivity Tools":        "⚡",
	"Sports & Recreation":       "⛵",
	"Documentation & Reference": "📖",
	"Local Services":            "🏠",
	taxonomy.Fallback:           "📌",
}

func newCategoryCard(category CategoryBookmarks) categoryCard {
	emoji, ok := categoryEmoji[category.Name]
	if !ok {
		emoji = "📁"
	}

	// Top domains from a leading sample, matching how much fits on a card.
	sample := category.Bookmarks
	if len(sample) > 50 {
		sample = sample[:50]
	}
	counts := map[string]int{}
	for _, b := range sample {
		if b.Domain != "" {
			counts[b.Domain]++
		}
	}
	domains := make([]string, 0, len(counts))
	for domain := range counts {
		domains = append(domains, domain)
	}
	sort.Slice(domains, func(i, j int) bool {
		if counts[domains[i]] != counts[domains[j]] {
			return counts[domains[i]] > counts[domains[j]]
		}
		return domains[i] < domains[j]
	})
	if len(domains) > 3 {
		domains = domains[:3]
	}

	return categoryCard{
		Emoji:      emoji,
		Name:       category.Name,
		File:       pageFile(category.Name),
		Count:      len(category.Bookmarks),
		TopDomains: domains,
	}
}

func newCategoryView(category CategoryBookmarks) categoryView {
	bookmarks := make([]bookmark.Categorized, len(category.Bookmarks))
	copy(bookmarks, category.Bookmarks)
	sort.SliceStable(bookmarks, func(i, j int) bool {
		if bookmarks[i].Domain != bookmarks[j].Domain {
			return bookmarks[i].Domain < bookmarks[j].Domain
		}
		return bookmarks[i].Title < bookmarks[j].Title
	})

	view := categoryView{
		Name:  category.Name,
		File:  pageFile(category.Name),
		Count: len(bookmarks),
	}
	for _, b := range bookmarks {
		domain := b.Domain
		if domain == "" {
			domain = "Unknown"
		}
		if len(view.Groups) == 0 || view.Groups[len(view.Groups)-1].Domain != domain {
			view.Groups = append(view.Groups, domainGroup{
				Domain:  domain,
				Favicon: faviconURL(domain),
			})
		}
		group := &view.Groups[len(view.Groups)-1]
		group.Items = append(group.Items, newBookmarkItem(b, domain))
	}
	return view
}

func newBookmarkItem(b bookmark.Categorized, domain string) bookmarkItem {
	title := b.Title
	if title == "" {
		title = "Untitled"
	}
	description := titleDescription(title)
	return bookmarkItem{
		Title:       title,
		URL:         b.URL,
		Date:        formatDate(b.Timestamp),
		Description: description,
		Search:      strings.ToLower(title + " " + domain + " " + description),
	}
}

// titleDescription pulls a secondary clause out of titles shaped like
// "Thing - What it is" or "Thing | Site".
func titleDescription(title string) string {
	for _, sep := range []string{" - ", " | "} {
		if _, after, found := strings.Cut(title, sep); found {
			return after
		}
	}
	return ""
}

func formatDate(timestamp int64) string {
	if timestamp <= 0 {
		return "Unknown"
	}
	return time.Unix(timestamp, 0).Format("2006-01-02")
}

func faviconURL(domain string) string {
	return "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(domain) + "&sz=32"
}

func pageFile(name string) string {
	return taxonomy.SafeName(name) + ".html"
}
