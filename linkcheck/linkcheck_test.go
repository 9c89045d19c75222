package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	cfg := DefaultConfig()
	cfg.RatePerSecond = 1000
	c, err := New(cfg, nil, testLogger())
	require.NoError(t, err)
	return c
}

const articleHTML = `<!DOCTYPE html>
<html><head><title>Deep Dive into Connection Pooling</title></head>
<body><article>
<h1>Deep Dive into Connection Pooling</h1>
<p>Connection pooling keeps a set of established connections ready for
reuse so that each request avoids paying the setup cost again. The pool
hands out an idle connection when one is available and opens a new one
otherwise, up to a configured ceiling.</p>
<p>Sizing the pool is a trade between latency and resource pressure on
the server. Too small and requests queue behind each other waiting for a
free connection; too large and the backend drowns in mostly idle
sockets that still consume memory and file descriptors.</p>
<p>Health checking matters as well. A pooled connection can die quietly
between uses, so robust pools verify liveness before handing a
connection out, or at least recover gracefully when the first write
fails and retry on a fresh connection.</p>
</article></body></html>`

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Workers = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Timeout = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.RatePerSecond = -1
	assert.Error(t, bad.Validate())
}

func TestCheck_BrowserSchemes(t *testing.T) {
	c := newTestChecker(t)

	for _, url := range []string{
		"chrome://settings/passwords",
		"chrome-extension://abcdef/popup.html",
		"about:blank",
		"file:///home/user/notes.html",
	} {
		result := c.Check(context.Background(), url)
		assert.True(t, result.Valid, url)
		assert.Contains(t, result.Error, "assumed valid")
	}
}

func TestCheck_LocalService(t *testing.T) {
	c := newTestChecker(t)

	var dialed string
	c.dialLocal = func(_ context.Context, addr string) error {
		dialed = addr
		return nil
	}
	result := c.Check(context.Background(), "http://localhost:8080/admin")
	assert.True(t, result.Valid)
	assert.Equal(t, "localhost:8080", dialed)

	c.dialLocal = func(_ context.Context, addr string) error {
		dialed = addr
		return errors.New("connection refused")
	}
	result = c.Check(context.Background(), "http://192.168.1.50/router")
	assert.False(t, result.Valid)
	assert.Equal(t, "local service not running", result.Error)
	assert.Equal(t, "192.168.1.50:80", dialed, "port defaults from scheme")
}

func TestCheckRemote_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, articleHTML)
	}))
	defer server.Close()

	c := newTestChecker(t)
	result := c.checkRemote(context.Background(), server.URL, bookmark.ValidationResult{URL: server.URL})

	assert.True(t, result.Valid)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "text/html", result.ContentType)
	assert.Greater(t, result.ResponseTime, 0.0)
	assert.Empty(t, result.Title, "HEAD responses carry no body to read a title from")
}

func TestCheckRemote_TitleViaGetFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, articleHTML)
	}))
	defer server.Close()

	c := newTestChecker(t)
	result := c.checkRemote(context.Background(), server.URL, bookmark.ValidationResult{URL: server.URL})

	assert.True(t, result.Valid)
	assert.Equal(t, "Deep Dive into Connection Pooling", result.Title)
}

func TestPeekTitle_TruncatesOnRuneBoundary(t *testing.T) {
	longTitle := strings.Repeat("日", 40)
	page := strings.ReplaceAll(articleHTML, "Deep Dive into Connection Pooling", longTitle)
	pageURL, err := url.Parse("https://example.com/pooling")
	require.NoError(t, err)

	title := peekTitle(strings.NewReader(page), pageURL)

	// 100 bytes would split the 34th three-byte rune.
	assert.Equal(t, strings.Repeat("日", 33), title)
	assert.True(t, utf8.ValidString(title))
}

func TestCheckRemote_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := newTestChecker(t)
	result := c.checkRemote(context.Background(), server.URL+"/gone", bookmark.ValidationResult{})

	assert.False(t, result.Valid)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, "HTTP 404", result.Error)
}

func TestCheckRemote_Redirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestChecker(t)
	result := c.checkRemote(context.Background(), server.URL+"/old", bookmark.ValidationResult{})

	assert.True(t, result.Valid)
	assert.Equal(t, server.URL+"/new", result.RedirectURL)
}

func TestCheckRemote_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := newTestChecker(t)
	result := c.checkRemote(context.Background(), url, bookmark.ValidationResult{})

	assert.False(t, result.Valid)
	assert.Equal(t, "connection failed, site unreachable", result.Error)
}

func TestCheckAll_PreservesOrder(t *testing.T) {
	c := newTestChecker(t)
	c.dialLocal = func(context.Context, string) error { return nil }

	raws := []bookmark.Raw{
		{URL: "http://localhost:3000/a"},
		{URL: "chrome://bookmarks"},
		{URL: "http://127.0.0.1:9000/c"},
	}
	outcomes, err := c.CheckAll(context.Background(), raws)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for i, o := range outcomes {
		assert.Equal(t, raws[i].URL, o.URL)
		assert.True(t, o.Validation.Valid)
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	assert.Equal(t, "request timed out", classifyError(timeoutError{}))
	assert.Equal(t, "too many redirects", classifyError(errors.New(`Get "x": stopped after 10 redirects`)))
	assert.Equal(t, "connection failed, site unreachable", classifyError(errors.New("dial tcp: connection refused")))
}

func TestIsLocalHost(t *testing.T) {
	assert.True(t, isLocalHost("localhost"))
	assert.True(t, isLocalHost("127.0.0.1"))
	assert.True(t, isLocalHost("192.168.0.12"))
	assert.True(t, isLocalHost("10.1.2.3"))
	assert.False(t, isLocalHost("example.com"))
	assert.False(t, isLocalHost("110.1.2.3"))
}

func TestMetricsObserve(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.observe(bookmark.ValidationResult{Valid: true, ResponseTime: 0.2})
	m.observe(bookmark.ValidationResult{Valid: false})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.checksTotal.WithLabelValues("valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checksTotal.WithLabelValues("invalid")))
}

func fixedTriage(now string) *Triage {
	ts, _ := time.Parse("2006-01-02", now)
	return &Triage{Now: func() time.Time { return ts }}
}

func TestTriage_ReliableDomainsSkipped(t *testing.T) {
	tr := fixedTriage("2026-01-01")

	// Old and pattern-adjacent, but github.com is on the reliable list.
	flagged, _ := tr.Suspicious(bookmark.Raw{
		URL:       "https://github.com/abandoned/project",
		Domain:    "github.com",
		Timestamp: time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
	})
	assert.False(t, flagged)
}

func TestTriage_SuspiciousPatterns(t *testing.T) {
	tr := fixedTriage("2026-01-01")

	cases := []string{
		"http://myblog.blogspot.com/2009/01/post.html",
		"http://www.rapidshare.com/files/12345",
		"https://plus.google.com/+someone",
		"http://cs.school.edu/~jdoe/notes.html",
		"ftp://ftp.example.org/pub/file.tar.gz",
	}
	for _, url := range cases {
		flagged, reason := tr.Suspicious(bookmark.Raw{URL: url, Domain: "unimportant.example"})
		assert.True(t, flagged, url)
		assert.NotEmpty(t, reason)
	}
}

func TestTriage_OldBookmark(t *testing.T) {
	tr := fixedTriage("2026-01-01")

	old := bookmark.Raw{
		URL:       "https://obscure.example/page",
		Domain:    "obscure.example",
		Timestamp: time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC).Unix(),
	}
	flagged, reason := tr.Suspicious(old)
	assert.True(t, flagged)
	assert.Contains(t, reason, "five years")

	recent := old
	recent.Timestamp = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Unix()
	flagged, _ = tr.Suspicious(recent)
	assert.False(t, flagged)

	undated := old
	undated.Timestamp = 0
	flagged, _ = tr.Suspicious(undated)
	assert.False(t, flagged, "missing timestamp is not an age signal")
}

func TestTriage_DeadTitle(t *testing.T) {
	tr := fixedTriage("2026-01-01")

	flagged, reason := tr.Suspicious(bookmark.Raw{
		URL:    "https://fresh.example/page",
		Domain: "fresh.example",
		Title:  "404 Not Found",
	})
	assert.True(t, flagged)
	assert.Contains(t, reason, "title")
}

func TestTriage_Split(t *testing.T) {
	tr := fixedTriage("2026-01-01")

	raws := []bookmark.Raw{
		{URL: "https://github.com/a", Domain: "github.com"},
		{URL: "http://old.blogspot.com/b", Domain: "old.blogspot.com"},
		{URL: "https://example.org/c", Domain: "example.org"},
	}
	suspicious, confident := tr.Split(raws)
	require.Len(t, suspicious, 1)
	assert.Equal(t, "http://old.blogspot.com/b", suspicious[0].URL)
	require.Len(t, confident, 2)
	assert.Equal(t, "https://github.com/a", confident[0].URL)
	assert.Equal(t, "https://example.org/c", confident[1].URL)
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	outcomes := []Outcome{
		{Validation: bookmark.ValidationResult{Valid: true}},
		{Validation: bookmark.ValidationResult{Valid: true}},
		{Validation: bookmark.ValidationResult{Error: "HTTP 404"}},
		{Validation: bookmark.ValidationResult{Error: "HTTP 404"}},
		{Validation: bookmark.ValidationResult{Error: "invalid URL: bad"}},
	}

	report := BuildReport(outcomes, now)
	assert.Equal(t, 5, report.TotalBookmarks)
	assert.Equal(t, 2, report.ValidCount)
	assert.Equal(t, 3, report.InvalidCount)
	assert.Equal(t, "40.0%", report.ValidityRate)
	assert.Equal(t, 2, report.ErrorTypes["HTTP 404"])
	assert.Equal(t, 1, report.ErrorTypes["invalid URL"])

	counts := report.ErrorTypeCounts()
	require.Len(t, counts, 2)
	assert.Equal(t, "HTTP 404", counts[0].Type)

	assert.Equal(t, "0%", BuildReport(nil, now).ValidityRate)
}

func TestWriteResults(t *testing.T) {
	dir := t.TempDir()
	outcomes := []Outcome{
		{Raw: bookmark.Raw{URL: "https://a.example/"}, Validation: bookmark.ValidationResult{URL: "https://a.example/", Valid: true}},
		{Raw: bookmark.Raw{URL: "https://b.example/"}, Validation: bookmark.ValidationResult{URL: "https://b.example/", Error: "HTTP 410"}},
	}

	require.NoError(t, WriteResults(outcomes, dir, time.Now()))

	for _, name := range []string{ValidFile, InvalidFile, ReportFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, ValidFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"count": 1`)
	assert.Contains(t, string(data), "a.example")
	assert.True(t, strings.Contains(string(data), `"validation"`))
}
