// Package classify assigns each bookmark to exactly one taxonomy category
// using multi-signal scoring.
//
// Every category is scored against every pattern before a winner is picked;
// there is no early exit, so a single keyword coincidence cannot out-rank a
// strong domain signal. Ties resolve to the category declared earlier in
// the taxonomy, which makes taxonomy order part of the contract.
package classify

import (
	"strings"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
	"github.com/halcasteel/chrome-bookmark-organizer/taxonomy"
)

// Override bonuses. Overrides add to accumulated scores, never replace
// them, so the highest-total rule stays intact.
const (
	officeSuiteBonus = 5
	preprintBonus    = 5
	tldBonus         = 3
)

// Classifier scores bookmarks against one immutable taxonomy.
type Classifier struct {
	categories []taxonomy.Category
	index      map[string]int
}

// New creates a classifier for the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Classifier {
	categories := tax.Categories()
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.Name] = i
	}
	return &Classifier{categories: categories, index: index}
}

// Classify returns the winning category and its accumulated score.
// It always succeeds: a bookmark with no pattern evidence falls back to a
// heuristic category or, failing that, to taxonomy.Fallback with score 0.
func (c *Classifier) Classify(b bookmark.Raw) (string, int) {
	domain := strings.ToLower(b.Domain)
	title := strings.ToLower(b.Title)
	path := strings.ToLower(b.Path)
	rawURL := strings.ToLower(b.URL)

	scores := make([]int, len(c.categories))

	for i, cat := range c.categories {
		for _, pattern := range cat.Domains {
			if strings.Contains(domain, pattern) {
				scores[i] += cat.DomainWeight
			}
		}
		for _, keyword := range cat.Keywords {
			if strings.Contains(title, keyword) {
				scores[i] += cat.TitleWeight
			}
			if strings.Contains(path, keyword) {
				scores[i] += cat.PathWeight
			}
		}
	}

	c.applyOverrides(domain, rawURL, scores)

	best, bestScore := -1, 0
	for i, s := range scores {
		// Strictly greater keeps the earliest-declared category on ties.
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	if best >= 0 {
		return c.categories[best].Name, bestScore
	}

	return c.fallback(domain, rawURL), 0
}

// ClassifyAll classifies survivors in order, preserving input order within
// the result.
func (c *Classifier) ClassifyAll(raws []bookmark.Raw) []bookmark.Categorized {
	out := make([]bookmark.Categorized, len(raws))
	for i, b := range raws {
		category, score := c.Classify(b)
		out[i] = bookmark.Categorized{Raw: b, Category: category, Score: score}
	}
	return out
}

// applyOverrides injects fixed bonuses for URL shapes whose meaning is
// stronger than any substring table: office-suite document URLs, preprint
// hosts, and civic or academic top-level domains. An override is skipped
// when its target category is absent from the taxonomy.
func (c *Classifier) applyOverrides(domain, rawURL string, scores []int) {
	if strings.Contains(rawURL, "google.com/docs") || strings.Contains(rawURL, "google.com/sheets") {
		c.bump(scores, "Productivity Tools", officeSuiteBonus)
	}
	if strings.Contains(domain, "arxiv.org") {
		c.bump(scores, "Science & Research", preprintBonus)
	}
	switch {
	case strings.Contains(domain, ".edu"):
		c.bump(scores, "Education & Learning", tldBonus)
	case strings.Contains(domain, ".gov"), strings.Contains(domain, ".mil"):
		c.bump(scores, "Government & Legal", tldBonus)
	}
}

func (c *Classifier) bump(scores []int, category string, bonus int) {
	if i, ok := c.index[category]; ok {
		scores[i] += bonus
	}
}

// fallback resolves bookmarks with zero pattern evidence.
func (c *Classifier) fallback(domain, rawURL string) string {
	if containsAny(domain, "blog", "wordpress", "medium") {
		if _, ok := c.index["Personal Development"]; ok {
			return "Personal Development"
		}
	}
	if isLocalAddress(domain, rawURL) {
		if _, ok := c.index["Local Services"]; ok {
			return "Local Services"
		}
	}
	return taxonomy.Fallback
}

func isLocalAddress(domain, rawURL string) bool {
	if containsAny(domain, "localhost", "127.0.0.1", "0.0.0.0") {
		return true
	}
	if strings.HasPrefix(domain, "192.168.") || strings.HasPrefix(domain, "10.") {
		return true
	}
	return strings.Contains(rawURL, "localhost") || strings.Contains(rawURL, "192.168")
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
