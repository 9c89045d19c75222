package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
)

// chunkGlob matches the files the Chunker writes.
const chunkGlob = "chunk_*.json"

// Extractor scans chunk files for bookmark anchors.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractDir reads every chunk file in chunksDir (sorted by name) and
// returns one Raw per distinct <A HREF> tag. Chunk overlap means the same
// anchor can appear twice; repeats are skipped by verbatim URL, which is
// the only deduplication done at extraction time.
func (e *Extractor) ExtractDir(chunksDir string) ([]bookmark.Raw, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(chunksDir, chunkGlob))
	if err != nil {
		return nil, fmt.Errorf("failed to glob chunk files: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no chunk files in %s", chunksDir)
	}
	sort.Strings(matches)

	seen := make(map[string]struct{})
	var raws []bookmark.Raw

	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}

		var chunk ChunkFile
		if err := json.Unmarshal(data, &chunk); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}

		before := len(raws)
		raws = appendAnchors(raws, seen, chunk.Content)
		e.logger.Debug("extracted chunk",
			slog.String("file", filepath.Base(path)),
			slog.Int("bookmarks", len(raws)-before))
	}

	e.logger.Info("extraction complete",
		slog.Int("chunks", len(matches)),
		slog.Int("bookmarks", len(raws)))
	return raws, nil
}

// ExtractContent scans a single blob of bookmark-export HTML.
func (e *Extractor) ExtractContent(content string) []bookmark.Raw {
	return appendAnchors(nil, make(map[string]struct{}), content)
}

// appendAnchors tokenizes export HTML and appends one Raw per unseen
// anchor. The tokenizer tolerates the truncated markup that chunk
// boundaries produce; an anchor split across a boundary is recovered from
// the overlap region of the neighboring chunk.
func appendAnchors(raws []bookmark.Raw, seen map[string]struct{}, content string) []bookmark.Raw {
	tokenizer := html.NewTokenizer(strings.NewReader(content))

	var (
		current  *bookmark.Raw
		title    strings.Builder
		inAnchor bool
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Title = strings.TrimSpace(title.String())
		raws = append(raws, *current)
		current = nil
		title.Reset()
	}

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			flush()
			return raws

		case html.StartTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				// A new tag inside an unterminated anchor ends it.
				if inAnchor && token.Data == "dt" {
					flush()
					inAnchor = false
				}
				continue
			}

			href, addDate := anchorAttrs(token)
			if href == "" {
				continue
			}
			if _, dup := seen[href]; dup {
				inAnchor = false
				continue
			}
			seen[href] = struct{}{}

			flush()
			b := newRaw(href, addDate)
			current = &b
			inAnchor = true

		case html.TextToken:
			if inAnchor && current != nil {
				title.WriteString(tokenizer.Token().Data)
			}

		case html.EndTagToken:
			if tokenizer.Token().Data == "a" && inAnchor {
				flush()
				inAnchor = false
			}
		}
	}
}

// anchorAttrs pulls the HREF and ADD_DATE attributes from an anchor token.
func anchorAttrs(token html.Token) (href, addDate string) {
	for _, attr := range token.Attr {
		switch strings.ToLower(attr.Key) {
		case "href":
			href = attr.Val
		case "add_date":
			addDate = attr.Val
		}
	}
	return href, addDate
}

// newRaw builds a Raw record from an anchor's attributes. URL parse
// failures degrade to empty derived fields rather than dropping the
// bookmark.
func newRaw(href, addDate string) bookmark.Raw {
	b := bookmark.Raw{URL: href}

	if parsed, err := url.Parse(href); err == nil {
		domain := strings.ToLower(parsed.Host)
		domain = strings.TrimPrefix(domain, "www.")
		b.Domain = domain
		b.Protocol = parsed.Scheme
		b.Path = parsed.Path
	}

	if addDate != "" {
		if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil && ts > 0 {
			b.Timestamp = ts
			b.DateAdded = b.AddedAt().Format(bookmark.DateAddedLayout)
		}
	}

	return b
}
