// Package urlnorm canonicalizes bookmark URLs for duplicate detection.
//
// Normalization lowercases the entire URL before parsing, which makes host
// and scheme comparison case-insensitive but also folds case-sensitive
// paths together. Existing organized datasets were produced with this rule,
// so it is preserved as a known limitation rather than corrected.
package urlnorm

import (
	"net/url"
	"sort"
	"strings"
)

// trackingParams are query parameters that identify a visit, not a resource.
// They are stripped before comparison.
var trackingParams = map[string]struct{}{
	"utm_source":   {},
	"utm_medium":   {},
	"utm_campaign": {},
	"utm_content":  {},
	"utm_term":     {},
	"fbclid":       {},
	"gclid":        {},
	"ref":          {},
	"source":       {},
	"mc_cid":       {},
}

// Normalize returns the canonical grouping key for a URL. Two bookmarks
// with the same key are considered duplicates.
//
// Normalize is a pure function of its input and never fails: a URL that
// cannot be parsed yields a best-effort degenerate key so the bookmark
// still participates in deduplication.
func Normalize(rawURL string) string {
	lowered := strings.ToLower(strings.TrimSpace(rawURL))

	parsed, err := url.Parse(lowered)
	if err != nil {
		return lowered
	}

	host := strings.TrimPrefix(parsed.Host, "www.")

	path := strings.TrimSuffix(parsed.Path, "/")
	if path == "" {
		path = "/"
	}

	normalized := parsed.Scheme + "://" + host + path
	if query := cleanQuery(parsed.RawQuery); query != "" {
		normalized += "?" + query
	}
	return normalized
}

// cleanQuery strips tracking parameters and re-joins the remainder sorted
// by key, keeping only the first value of any repeated key.
func cleanQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return rawQuery
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if _, tracking := trackingParams[key]; tracking {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(values.Get(key))
	}
	return b.String()
}
