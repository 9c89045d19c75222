package organize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/halcasteel/chrome-bookmark-organizer/taxonomy"
)

// Artifact file names within the output directory.
const (
	SummaryFile          = "organization_summary.json"
	DuplicatesReportFile = "duplicates_report.json"
	QualityReportFile    = "categorization_quality_report.json"
	ReadableSummaryFile  = "ORGANIZATION_SUMMARY.txt"
)

// WriteArtifacts writes the full partition set plus summary and report
// files under dir. Any write error fails the run; callers must not treat a
// partially written directory as authoritative.
func (p *Pipeline) WriteArtifacts(result *Result, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, category := range result.CategoryOrder {
		if err := p.writeCategory(dir, category, result); err != nil {
			return err
		}
	}

	if err := writeJSON(filepath.Join(dir, SummaryFile), result.Summary); err != nil {
		return err
	}
	if len(result.DuplicateGroups) > 0 {
		if err := writeJSON(filepath.Join(dir, DuplicatesReportFile), result.DuplicateGroups); err != nil {
			return err
		}
	}
	if err := writeJSON(filepath.Join(dir, QualityReportFile), p.qualityReport(result)); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, ReadableSummaryFile), []byte(readableSummary(result)), 0644); err != nil {
		return fmt.Errorf("failed to write readable summary: %w", err)
	}

	return nil
}

// writeCategory writes one category's chunk files into its own directory.
// A single-chunk category gets "<Category>.json"; larger categories get
// "<Category>_001.json" and so on.
func (p *Pipeline) writeCategory(dir, category string, result *Result) error {
	safe := taxonomy.SafeName(category)
	categoryDir := filepath.Join(dir, safe)
	if err := os.MkdirAll(categoryDir, 0755); err != nil {
		return fmt.Errorf("failed to create category directory %s: %w", safe, err)
	}

	chunks := result.Chunks[category]
	for _, chunk := range chunks {
		name := safe + ".json"
		if chunk.TotalChunks > 1 {
			name = fmt.Sprintf("%s_%03d.json", safe, chunk.Chunk)
		}
		if err := writeJSON(filepath.Join(categoryDir, name), chunk); err != nil {
			return err
		}
	}
	return nil
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
