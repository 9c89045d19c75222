package linkcheck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Validation artifact filenames.
const (
	ValidFile   = "valid_bookmarks.json"
	InvalidFile = "invalid_bookmarks.json"
	ReportFile  = "validation_report.json"
)

// Report summarizes a validation run.
type Report struct {
	ValidationDate   string         `json:"validation_date"`
	TotalBookmarks   int            `json:"total_bookmarks"`
	CheckedBookmarks int            `json:"checked_bookmarks"`
	ValidCount       int            `json:"valid_count"`
	InvalidCount     int            `json:"invalid_count"`
	ValidityRate     string         `json:"validity_rate"`
	ErrorTypes       map[string]int `json:"error_types"`
}

// ErrorTypeCounts sorts the report's error histogram by count descending,
// ties broken alphabetically.
func (r Report) ErrorTypeCounts() []ErrorTypeCount {
	counts := make([]ErrorTypeCount, 0, len(r.ErrorTypes))
	for errType, n := range r.ErrorTypes {
		counts = append(counts, ErrorTypeCount{Type: errType, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Type < counts[j].Type
	})
	return counts
}

// ErrorTypeCount is one bucket of the error histogram.
type ErrorTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// BuildReport aggregates outcomes into a run report.
func BuildReport(outcomes []Outcome, now time.Time) Report {
	report := Report{
		ValidationDate:   now.Format(time.RFC3339),
		TotalBookmarks:   len(outcomes),
		CheckedBookmarks: len(outcomes),
		ErrorTypes:       map[string]int{},
	}
	for _, o := range outcomes {
		if o.Validation.Valid {
			report.ValidCount++
			continue
		}
		report.InvalidCount++
		if o.Validation.Error != "" {
			report.ErrorTypes[errorType(o.Validation.Error)]++
		}
	}
	if len(outcomes) > 0 {
		report.ValidityRate = fmt.Sprintf("%.1f%%", float64(report.ValidCount)/float64(len(outcomes))*100)
	} else {
		report.ValidityRate = "0%"
	}
	return report
}

// errorType buckets a probe error message into a histogram key by
// dropping everything after the first colon.
func errorType(msg string) string {
	head, _, _ := strings.Cut(msg, ":")
	return strings.TrimSpace(head)
}

// bookmarkList is the envelope shape shared by the valid and invalid
// artifact files.
type bookmarkList struct {
	Count     int       `json:"count"`
	Bookmarks []Outcome `json:"bookmarks"`
}

// WriteResults writes the valid, invalid, and report artifacts to dir.
func WriteResults(outcomes []Outcome, dir string, now time.Time) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	valid := bookmarkList{Bookmarks: []Outcome{}}
	invalid := bookmarkList{Bookmarks: []Outcome{}}
	for _, o := range outcomes {
		if o.Validation.Valid {
			valid.Bookmarks = append(valid.Bookmarks, o)
		} else {
			invalid.Bookmarks = append(invalid.Bookmarks, o)
		}
	}
	valid.Count = len(valid.Bookmarks)
	invalid.Count = len(invalid.Bookmarks)

	if err := writeJSON(filepath.Join(dir, ValidFile), valid); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, InvalidFile), invalid); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, ReportFile), BuildReport(outcomes, now))
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
