package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
)

// Output file names for extraction results.
const (
	ExtractedFile = "bookmarks_extracted.json"
	AnalysisFile  = "bookmarks_analysis.json"
)

// Report is the extraction analysis artifact: collection-level statistics
// computed before any deduplication or classification.
type Report struct {
	Summary    ReportSummary  `json:"summary"`
	TopDomains []DomainCount  `json:"top_domains"`
	Temporal   map[string]int `json:"temporal_distribution"`
}

// ReportSummary holds headline counts for the extracted collection.
type ReportSummary struct {
	TotalBookmarks int            `json:"total_bookmarks"`
	UniqueDomains  int            `json:"unique_domains"`
	DateRange      *DateRange     `json:"date_range,omitempty"`
	Protocols      map[string]int `json:"protocols"`
}

// DateRange is the earliest and latest bookmark dates.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// DomainCount is a domain with its bookmark count.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

const topDomainLimit = 50

// Analyze computes collection statistics over extracted bookmarks.
func Analyze(raws []bookmark.Raw) Report {
	domains := make(map[string]int)
	protocols := make(map[string]int)
	temporal := make(map[string]int)
	var earliest, latest string

	for _, b := range raws {
		if b.Domain != "" {
			domains[b.Domain]++
		}
		if b.Protocol != "" {
			protocols[b.Protocol]++
		}
		if len(b.DateAdded) >= 7 {
			temporal[b.DateAdded[:7]]++ // YYYY-MM
			if earliest == "" || b.DateAdded < earliest {
				earliest = b.DateAdded
			}
			if b.DateAdded > latest {
				latest = b.DateAdded
			}
		}
	}

	top := make([]DomainCount, 0, len(domains))
	for domain, count := range domains {
		top = append(top, DomainCount{Domain: domain, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Domain < top[j].Domain
	})
	if len(top) > topDomainLimit {
		top = top[:topDomainLimit]
	}

	report := Report{
		Summary: ReportSummary{
			TotalBookmarks: len(raws),
			UniqueDomains:  len(domains),
			Protocols:      protocols,
		},
		TopDomains: top,
		Temporal:   temporal,
	}
	if earliest != "" {
		report.Summary.DateRange = &DateRange{Earliest: earliest, Latest: latest}
	}
	return report
}

// SaveResults writes the extracted bookmark list and its analysis report
// under dir.
func SaveResults(dir string, raws []bookmark.Raw) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create analysis directory: %w", err)
	}

	if err := saveJSON(filepath.Join(dir, ExtractedFile), raws); err != nil {
		return err
	}
	return saveJSON(filepath.Join(dir, AnalysisFile), Analyze(raws))
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
