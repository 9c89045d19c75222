package organize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
)

// QualityReport captures how the classification went, for manual review of
// the run.
type QualityReport struct {
	QualityMetrics       QualityMetrics                  `json:"quality_metrics"`
	CategoryDistribution map[string]CategoryDistribution `json:"category_distribution"`
	SampleBookmarks      map[string][]SampleBookmark     `json:"sample_categorizations"`
	GeneratedAt          string                          `json:"generated_at"`
}

// QualityMetrics are the headline numbers for one run.
type QualityMetrics struct {
	TotalProcessed          int     `json:"total_processed"`
	CategoriesUsed          int     `json:"categories_used"`
	UncategorizedCount      int     `json:"uncategorized_count"`
	UncategorizedPercentage float64 `json:"uncategorized_percentage"`
}

// CategoryDistribution summarizes one category.
type CategoryDistribution struct {
	Count      int           `json:"count"`
	Percentage string        `json:"percentage"`
	TopDomains []DomainCount `json:"top_domains"`
}

// DomainCount is a domain with its bookmark count.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// SampleBookmark is a spot-check entry in the quality report.
type SampleBookmark struct {
	Title  string `json:"title"`
	Domain string `json:"domain"`
	URL    string `json:"url"`
}

const (
	topDomainsPerCategory = 5
	samplesPerCategory    = 3
)

func (p *Pipeline) qualityReport(result *Result) QualityReport {
	total := result.Summary.UniqueCount
	other := result.Summary.Categories["Other"]

	var uncategorizedPct float64
	if total > 0 {
		uncategorizedPct = float64(other) / float64(total) * 100
	}

	distribution := make(map[string]CategoryDistribution, len(result.CategoryOrder))
	samples := make(map[string][]SampleBookmark, len(result.CategoryOrder))
	for _, category := range result.CategoryOrder {
		bookmarks := result.Categorized[category]

		distribution[category] = CategoryDistribution{
			Count:      len(bookmarks),
			Percentage: fmt.Sprintf("%.1f%%", float64(len(bookmarks))/float64(total)*100),
			TopDomains: topDomains(bookmarks, topDomainsPerCategory),
		}

		n := samplesPerCategory
		if n > len(bookmarks) {
			n = len(bookmarks)
		}
		for _, cb := range bookmarks[:n] {
			samples[category] = append(samples[category], SampleBookmark{
				Title:  cb.Title,
				Domain: cb.Domain,
				URL:    cb.URL,
			})
		}
	}

	return QualityReport{
		QualityMetrics: QualityMetrics{
			TotalProcessed:          total,
			CategoriesUsed:          len(result.CategoryOrder),
			UncategorizedCount:      other,
			UncategorizedPercentage: uncategorizedPct,
		},
		CategoryDistribution: distribution,
		SampleBookmarks:      samples,
		GeneratedAt:          result.Summary.OrganizationDate,
	}
}

// topDomains counts domains and returns the n most common, ordered by
// count descending then domain ascending so the report is reproducible.
func topDomains(bookmarks []bookmark.Categorized, n int) []DomainCount {
	counts := make(map[string]int)
	for _, cb := range bookmarks {
		if cb.Domain != "" {
			counts[cb.Domain]++
		}
	}

	out := make([]DomainCount, 0, len(counts))
	for domain, count := range counts {
		out = append(out, DomainCount{Domain: domain, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Domain < out[j].Domain
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// readableSummary renders the human-readable run report.
func readableSummary(result *Result) string {
	var b strings.Builder

	b.WriteString("BOOKMARK ORGANIZATION SUMMARY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Original Bookmarks: %d\n", result.Summary.OriginalCount)
	fmt.Fprintf(&b, "Unique Bookmarks: %d\n", result.Summary.UniqueCount)
	fmt.Fprintf(&b, "Duplicates Removed: %d\n", result.Summary.DuplicatesRemoved)
	fmt.Fprintf(&b, "Organization Date: %s\n", result.Summary.OrganizationDate)
	fmt.Fprintf(&b, "Run ID: %s\n\n", result.Summary.RunID)

	b.WriteString("CATEGORIES\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")

	// Sort by size descending, ties by name, so the biggest buckets lead.
	order := make([]string, len(result.CategoryOrder))
	copy(order, result.CategoryOrder)
	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := result.Summary.Categories[order[i]], result.Summary.Categories[order[j]]
		if ci != cj {
			return ci > cj
		}
		return order[i] < order[j]
	})

	for _, category := range order {
		bookmarks := result.Categorized[category]
		fmt.Fprintf(&b, "\n%s: %d bookmarks\n", category, len(bookmarks))
		for _, dc := range topDomains(bookmarks, topDomainsPerCategory) {
			fmt.Fprintf(&b, "  - %s: %d\n", dc.Domain, dc.Count)
		}
	}

	return b.String()
}
