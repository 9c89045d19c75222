// Package organize drives the bookmark pipeline: deduplicate, classify,
// partition into bounded chunks, and emit summary and report artifacts.
package organize

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
	"github.com/halcasteel/chrome-bookmark-organizer/classify"
	"github.com/halcasteel/chrome-bookmark-organizer/dedup"
	"github.com/halcasteel/chrome-bookmark-organizer/taxonomy"
)

// Config holds pipeline settings.
type Config struct {
	// ChunkSize bounds the number of bookmarks in a single category output
	// file. A category with N bookmarks produces ceil(N/ChunkSize) chunks.
	ChunkSize int `yaml:"chunk_size"`
}

// DefaultConfig returns pipeline defaults.
func DefaultConfig() Config {
	return Config{ChunkSize: 500}
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	return nil
}

// Pipeline runs the dedup/classify/partition sequence. The stages are
// strictly sequential and perform no I/O; writing artifacts is a separate
// step so a failed run never leaves a partial partition set behind.
type Pipeline struct {
	tax        *taxonomy.Taxonomy
	classifier *classify.Classifier
	config     Config
	logger     *slog.Logger

	// Now and NewRunID are injectable so repeated runs over the same input
	// are byte-for-byte reproducible in tests. They default to time.Now
	// and uuid.NewString.
	Now      func() time.Time
	NewRunID func() string
}

// New creates a pipeline for the given taxonomy.
func New(tax *taxonomy.Taxonomy, cfg Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg.ChunkSize == 0 {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		tax:        tax,
		classifier: classify.New(tax),
		config:     cfg,
		logger:     logger,
		Now:        time.Now,
		NewRunID:   uuid.NewString,
	}, nil
}

// Result is the in-memory outcome of one pipeline run.
type Result struct {
	Summary bookmark.OrganizationSummary

	// CategoryOrder lists categories with at least one bookmark, in
	// taxonomy declaration order.
	CategoryOrder []string

	// Chunks maps each non-empty category to its partitioned output units.
	Chunks map[string][]bookmark.CategoryChunk

	// Categorized maps each non-empty category to its bookmarks with the
	// winning scores, in survivor order.
	Categorized map[string][]bookmark.Categorized

	// DuplicateGroups is the duplicates report, in survivor order.
	DuplicateGroups []bookmark.DuplicateGroup
}

// Run executes the pipeline over already-loaded bookmarks. It never fails
// mid-stream: classification is total and every stage is pure, so the only
// error sources are upstream input loading and downstream artifact writing.
func (p *Pipeline) Run(raws []bookmark.Raw) *Result {
	deduped := dedup.Deduplicate(raws)
	p.logger.Info("deduplicated bookmarks",
		slog.Int("original", len(raws)),
		slog.Int("unique", len(deduped.Survivors)),
		slog.Int("duplicates_removed", deduped.DuplicateCount()))

	byCategory := make(map[string][]bookmark.Categorized)
	for _, cb := range p.classifier.ClassifyAll(deduped.Survivors) {
		byCategory[cb.Category] = append(byCategory[cb.Category], cb)
	}

	var order []string
	counts := make(map[string]int, len(byCategory))
	chunks := make(map[string][]bookmark.CategoryChunk, len(byCategory))
	for _, name := range p.tax.Names() {
		bookmarks, ok := byCategory[name]
		if !ok {
			continue
		}
		order = append(order, name)
		counts[name] = len(bookmarks)
		chunks[name] = p.partition(name, bookmarks)
	}

	result := &Result{
		Summary: bookmark.OrganizationSummary{
			OriginalCount:     len(raws),
			UniqueCount:       len(deduped.Survivors),
			DuplicatesRemoved: deduped.DuplicateCount(),
			Categories:        counts,
			RunID:             p.NewRunID(),
			OrganizationDate:  p.Now().Format(time.RFC3339),
		},
		CategoryOrder:   order,
		Chunks:          chunks,
		Categorized:     byCategory,
		DuplicateGroups: deduped.Groups(),
	}

	p.logger.Info("organized bookmarks",
		slog.String("run_id", result.Summary.RunID),
		slog.Int("categories", len(order)))
	return result
}

// partition splits a category into self-describing chunks of at most
// ChunkSize bookmarks each.
func (p *Pipeline) partition(category string, categorized []bookmark.Categorized) []bookmark.CategoryChunk {
	size := p.config.ChunkSize
	total := (len(categorized) + size - 1) / size

	chunks := make([]bookmark.CategoryChunk, 0, total)
	for start := 0; start < len(categorized); start += size {
		end := start + size
		if end > len(categorized) {
			end = len(categorized)
		}

		raws := make([]bookmark.Raw, 0, end-start)
		for _, cb := range categorized[start:end] {
			raws = append(raws, cb.Raw)
		}

		chunks = append(chunks, bookmark.CategoryChunk{
			Category:       category,
			Chunk:          len(chunks) + 1,
			TotalChunks:    total,
			BookmarksCount: len(raws),
			Bookmarks:      raws,
		})
	}
	return chunks
}
