// Package dedup groups bookmarks by normalized URL and picks one survivor
// per group.
package dedup

import (
	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
	"github.com/halcasteel/chrome-bookmark-organizer/urlnorm"
)

// Result holds the outcome of one deduplication pass.
type Result struct {
	// Survivors are the kept bookmarks, ordered by the first appearance of
	// their normalized URL in the input.
	Survivors []bookmark.Raw

	// Duplicates maps each normalized URL that appeared more than once to
	// the superseded records, in the order they were displaced.
	Duplicates map[string][]bookmark.Raw
}

// Deduplicate processes bookmarks in input order. The survivor of each group
// is the record with the greatest timestamp (missing timestamp counts as 0);
// a strictly greater timestamp displaces the current survivor, so among
// equal timestamps the record seen first is kept and later ones are filed
// as duplicates. The pass is deterministic for a fixed input sequence and
// performs no I/O.
func Deduplicate(raws []bookmark.Raw) Result {
	seen := make(map[string]int, len(raws)) // key -> index into survivors
	result := Result{
		Survivors:  make([]bookmark.Raw, 0, len(raws)),
		Duplicates: make(map[string][]bookmark.Raw),
	}

	for _, b := range raws {
		key := urlnorm.Normalize(b.URL)

		idx, ok := seen[key]
		if !ok {
			seen[key] = len(result.Survivors)
			result.Survivors = append(result.Survivors, b)
			continue
		}

		current := result.Survivors[idx]
		if b.Timestamp > current.Timestamp {
			result.Duplicates[key] = append(result.Duplicates[key], current)
			result.Survivors[idx] = b
		} else {
			result.Duplicates[key] = append(result.Duplicates[key], b)
		}
	}

	return result
}

// DuplicateCount returns the total number of superseded records.
func (r Result) DuplicateCount() int {
	n := 0
	for _, dups := range r.Duplicates {
		n += len(dups)
	}
	return n
}

// Groups renders the duplicate map as report entries, ordered to match the
// survivor sequence so reports are reproducible run to run.
func (r Result) Groups() []bookmark.DuplicateGroup {
	var groups []bookmark.DuplicateGroup
	for _, survivor := range r.Survivors {
		key := urlnorm.Normalize(survivor.URL)
		dups, ok := r.Duplicates[key]
		if !ok {
			continue
		}
		groups = append(groups, bookmark.DuplicateGroup{
			NormalizedURL: key,
			Count:         len(dups) + 1,
			SurvivorURL:   survivor.URL,
			Duplicates:    dups,
		})
	}
	return groups
}
