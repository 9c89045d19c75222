// Package extract turns a browser bookmark export into raw bookmark
// records. The export is first split into overlapping chunk files sized
// for downstream consumers, then the chunks are scanned for anchor tags.
package extract

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ChunkerConfig holds file-chunking settings.
type ChunkerConfig struct {
	// MaxChunkBytes bounds the content size of one chunk file.
	MaxChunkBytes int `yaml:"max_chunk_bytes"`

	// OverlapPercent is the fraction of a chunk's lines repeated at the
	// start of the next chunk, so records cut at a boundary appear whole
	// in the neighbor.
	OverlapPercent float64 `yaml:"overlap_percent"`
}

// DefaultChunkerConfig returns chunking defaults: ~100KB chunks with 5%
// line overlap.
func DefaultChunkerConfig() ChunkerConfig {
	return ChunkerConfig{
		MaxChunkBytes:  100_000,
		OverlapPercent: 0.05,
	}
}

// Validate checks that the configuration is valid.
func (c ChunkerConfig) Validate() error {
	if c.MaxChunkBytes <= 0 {
		return fmt.Errorf("max_chunk_bytes must be positive, got %d", c.MaxChunkBytes)
	}
	if c.OverlapPercent < 0 || c.OverlapPercent >= 1 {
		return fmt.Errorf("overlap_percent must be in [0, 1), got %g", c.OverlapPercent)
	}
	return nil
}

// ChunkMeta describes one chunk file. Line numbers are 1-indexed.
type ChunkMeta struct {
	ChunkNumber    int    `json:"chunk_number"`
	TotalChunks    int    `json:"total_chunks"`
	ChunkStartLine int    `json:"chunk_start_line"`
	ChunkEndLine   int    `json:"chunk_end_line"`
	OverlapLines   int    `json:"overlap_lines"`
	OverlapPercent string `json:"overlap_percent"`
	TotalLines     int    `json:"total_lines"`
	LinesInChunk   int    `json:"lines_in_chunk"`
	ChunkSizeBytes int    `json:"chunk_size_bytes"`
}

// ChunkFile is the on-disk chunk format.
type ChunkFile struct {
	Metadata ChunkMeta `json:"metadata"`
	Content  string    `json:"content"`
}

// Chunker splits a file into overlapping chunk files.
type Chunker struct {
	config ChunkerConfig
	logger *slog.Logger
}

// NewChunker creates a chunker, falling back to defaults for a zero config.
func NewChunker(cfg ChunkerConfig, logger *slog.Logger) (*Chunker, error) {
	if cfg.MaxChunkBytes == 0 && cfg.OverlapPercent == 0 {
		cfg = DefaultChunkerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Chunker{config: cfg, logger: logger}, nil
}

// chunkSpan marks one chunk's line range within the input.
type chunkSpan struct {
	start   int // 0-indexed, inclusive
	end     int // exclusive
	size    int // content bytes
	overlap int // lines shared with the next chunk
}

// Chunk splits inputPath into chunk_NNNN.json files under outputDir and
// returns the metadata for each chunk written.
func (c *Chunker) Chunk(inputPath, outputDir string) ([]ChunkMeta, error) {
	lines, err := readLines(inputPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create chunks directory: %w", err)
	}

	spans := c.planSpans(lines)

	metas := make([]ChunkMeta, 0, len(spans))
	for i, span := range spans {
		meta := ChunkMeta{
			ChunkNumber:    i + 1,
			TotalChunks:    len(spans),
			ChunkStartLine: span.start + 1,
			ChunkEndLine:   span.end,
			OverlapLines:   span.overlap,
			OverlapPercent: fmt.Sprintf("%.1f%%", c.config.OverlapPercent*100),
			TotalLines:     len(lines),
			LinesInChunk:   span.end - span.start,
			ChunkSizeBytes: span.size,
		}

		chunk := ChunkFile{
			Metadata: meta,
			Content:  strings.Join(lines[span.start:span.end], ""),
		}
		data, err := json.MarshalIndent(chunk, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal chunk %d: %w", meta.ChunkNumber, err)
		}

		name := fmt.Sprintf("chunk_%04d.json", meta.ChunkNumber)
		if err := os.WriteFile(filepath.Join(outputDir, name), data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}

		c.logger.Debug("wrote chunk",
			slog.String("file", name),
			slog.Int("start_line", meta.ChunkStartLine),
			slog.Int("end_line", meta.ChunkEndLine),
			slog.Int("bytes", meta.ChunkSizeBytes))
		metas = append(metas, meta)
	}

	c.logger.Info("chunking complete",
		slog.Int("total_lines", len(lines)),
		slog.Int("total_chunks", len(metas)))
	return metas, nil
}

// planSpans determines chunk boundaries: lines accumulate until the byte
// budget is hit (always at least one line per chunk), and the next chunk
// rewinds by a proportional overlap.
func (c *Chunker) planSpans(lines []string) []chunkSpan {
	var spans []chunkSpan

	start := 0
	for start < len(lines) {
		size := 0
		end := start
		for end < len(lines) {
			lineSize := len(lines[end])
			if size+lineSize > c.config.MaxChunkBytes && end > start {
				break
			}
			size += lineSize
			end++
		}

		linesInChunk := end - start
		overlap := int(float64(linesInChunk) * c.config.OverlapPercent)
		if overlap < 1 {
			overlap = 1
		}
		if end >= len(lines) {
			overlap = 0
		}
		spans = append(spans, chunkSpan{start: start, end: end, size: size, overlap: overlap})

		if end >= len(lines) {
			break
		}
		next := end - overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return spans
}

// readLines reads a file preserving line terminators, so re-joined chunk
// content is byte-identical to the source span.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var lines []string
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
	}
	return lines, nil
}
