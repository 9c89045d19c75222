package linkcheck

import (
	"regexp"
	"strings"
	"time"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
)

// suspiciousAge marks bookmarks old enough that their targets have often
// rotted away.
const suspiciousAge = 5 * 365 * 24 * time.Hour

// reliableDomains are hosts that almost never go away. Matching
// bookmarks skip pattern triage entirely.
var reliableDomains = []string{
	"google.com", "docs.google.com", "drive.google.com", "mail.google.com",
	"calendar.google.com", "youtube.com", "github.com", "microsoft.com",
	"apple.com", "amazon.com", "facebook.com", "twitter.com", "linkedin.com",
	"reddit.com", "stackoverflow.com", "wikipedia.org",

	"openai.com", "anthropic.com", "claude.ai", "chatgpt.com", "perplexity.ai",

	"nytimes.com", "wsj.com", "bloomberg.com", "reuters.com", "bbc.com",
	"cnn.com", "forbes.com", "techcrunch.com", "theverge.com", "wired.com",

	"aws.amazon.com", "cloud.google.com", "azure.microsoft.com",

	"gitlab.com", "bitbucket.org", "docker.com", "kubernetes.io",

	"coursera.org", "udemy.com", "edx.org", "khanacademy.org",

	"localhost", "127.0.0.1", "0.0.0.0",
}

// suspiciousPatterns flag URL shapes with a history of dying: free
// hosting, discontinued services, personal pages, legacy protocols.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.blogspot\.`),
	regexp.MustCompile(`\.wordpress\.com`),
	regexp.MustCompile(`\.tumblr\.com`),
	regexp.MustCompile(`\.geocities\.`),
	regexp.MustCompile(`\.angelfire\.`),
	regexp.MustCompile(`\.tripod\.`),

	regexp.MustCompile(`megaupload\.`),
	regexp.MustCompile(`rapidshare\.`),
	regexp.MustCompile(`mediafire\.`),

	regexp.MustCompile(`plus\.google\.com`),
	regexp.MustCompile(`reader\.google\.com`),

	regexp.MustCompile(`~[^/]+/`),
	regexp.MustCompile(`/personal/`),
	regexp.MustCompile(`/users?/`),

	regexp.MustCompile(`^ftp://`),
	regexp.MustCompile(`^gopher://`),
}

// deadTitleIndicators are title fragments a browser records when it
// bookmarks an error page instead of real content.
var deadTitleIndicators = []string{"404", "not found", "error", "expired", "discontinued"}

// Triage flags bookmarks likely to be dead without touching the network,
// so a probe run can be focused on the risky subset.
type Triage struct {
	// Now is injectable for reproducible age checks.
	Now func() time.Time
}

// NewTriage creates a Triage using the wall clock.
func NewTriage() *Triage {
	return &Triage{Now: time.Now}
}

// Suspicious reports whether a bookmark is worth probing and why.
// Bookmarks on reliable domains are never suspicious.
func (t *Triage) Suspicious(b bookmark.Raw) (bool, string) {
	domain := strings.ToLower(b.Domain)
	for _, reliable := range reliableDomains {
		if strings.Contains(domain, reliable) {
			return false, ""
		}
	}

	lowURL := strings.ToLower(b.URL)
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(lowURL) {
			return true, "url matches pattern " + pattern.String()
		}
	}

	if b.Timestamp > 0 && t.Now().Sub(b.AddedAt()) > suspiciousAge {
		return true, "bookmarked more than five years ago"
	}

	lowTitle := strings.ToLower(b.Title)
	for _, indicator := range deadTitleIndicators {
		if strings.Contains(lowTitle, indicator) {
			return true, "title suggests dead page: " + indicator
		}
	}

	return false, ""
}

// Split partitions bookmarks into suspicious and confident sets,
// preserving input order within each.
func (t *Triage) Split(raws []bookmark.Raw) (suspicious, confident []bookmark.Raw) {
	for _, b := range raws {
		if flagged, _ := t.Suspicious(b); flagged {
			suspicious = append(suspicious, b)
		} else {
			confident = append(confident, b)
		}
	}
	return suspicious, confident
}
