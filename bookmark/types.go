// Package bookmark defines the core data model shared by the extraction,
// deduplication, classification, and validation stages.
package bookmark

import "time"

// DateAddedLayout is the human-readable timestamp format used in exported
// bookmark records.
const DateAddedLayout = "2006-01-02 15:04:05"

// Raw is a single bookmark as extracted from a browser export.
// It is immutable once created; one record per <A HREF> tag.
type Raw struct {
	// URL is the bookmark target exactly as it appeared in the export.
	URL string `json:"url"`

	// Title is the anchor text, HTML-unescaped.
	Title string `json:"title"`

	// Domain is the lowercase host with any leading "www." removed.
	Domain string `json:"domain"`

	// Protocol is the URL scheme (http, https, chrome, file, ...).
	Protocol string `json:"protocol"`

	// Path is the URL path component.
	Path string `json:"path"`

	// DateAdded is Timestamp rendered with DateAddedLayout, empty when the
	// export carried no ADD_DATE attribute.
	DateAdded string `json:"date_added,omitempty"`

	// Timestamp is the epoch-seconds ADD_DATE value, 0 when absent.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// AddedAt returns the bookmark creation time, or the zero time when the
// export carried no date.
func (r Raw) AddedAt() time.Time {
	if r.Timestamp == 0 {
		return time.Time{}
	}
	return time.Unix(r.Timestamp, 0)
}

// Categorized is a surviving bookmark together with its assigned category
// and the score that won. Created once during classification, never mutated.
type Categorized struct {
	Raw

	// Category is the assigned taxonomy label, always non-empty.
	Category string `json:"category"`

	// Score is the winning accumulated score; 0 means the category came
	// from a fallback heuristic rather than pattern evidence.
	Score int `json:"score"`
}

// DuplicateGroup records one normalized URL that appeared more than once.
type DuplicateGroup struct {
	// NormalizedURL is the grouping key.
	NormalizedURL string `json:"normalized_url"`

	// Count includes the surviving bookmark.
	Count int `json:"count"`

	// SurvivorURL is the URL of the record that was kept.
	SurvivorURL string `json:"survivor_url"`

	// Duplicates are the superseded records in the order they were displaced.
	Duplicates []Raw `json:"duplicates"`
}

// CategoryChunk is one self-describing output unit for a category.
// Large categories are partitioned so no single file grows unbounded.
type CategoryChunk struct {
	Category       string `json:"category"`
	Chunk          int    `json:"chunk"`
	TotalChunks    int    `json:"total_chunks"`
	BookmarksCount int    `json:"bookmarks_count"`
	Bookmarks      []Raw  `json:"bookmarks"`
}

// OrganizationSummary is the canonical machine-readable record of one
// pipeline run.
type OrganizationSummary struct {
	OriginalCount     int            `json:"original_count"`
	UniqueCount       int            `json:"unique_count"`
	DuplicatesRemoved int            `json:"duplicates_removed"`
	Categories        map[string]int `json:"categories"`
	RunID             string         `json:"run_id"`
	OrganizationDate  string         `json:"organization_date"`
}

// ValidationResult is the liveness probe outcome for one URL. It is an
// orthogonal annotation merged onto bookmarks by URL key; it never feeds
// back into deduplication or classification.
type ValidationResult struct {
	URL          string  `json:"url"`
	Valid        bool    `json:"valid"`
	StatusCode   int     `json:"status_code,omitempty"`
	Error        string  `json:"error,omitempty"`
	RedirectURL  string  `json:"redirect_url,omitempty"`
	ResponseTime float64 `json:"response_time,omitempty"`
	ContentType  string  `json:"content_type,omitempty"`
	Title        string  `json:"title,omitempty"`
}
