// Package linkcheck probes bookmark URLs for liveness and triages
// collections for entries likely to be dead.
package linkcheck

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// titlePeekBytes bounds how much of an HTML body is read when
	// recovering a page title from a GET response.
	titlePeekBytes = 10 * 1024

	localDialTimeout = 2 * time.Second
)

// browserSchemes are URL schemes a browser resolves internally. They can
// never be probed over the network and are assumed valid.
var browserSchemes = map[string]bool{
	"chrome":           true,
	"chrome-extension": true,
	"about":            true,
	"file":             true,
}

// Config controls probe concurrency and HTTP behavior.
type Config struct {
	Workers       int           `yaml:"workers"`
	Timeout       time.Duration `yaml:"timeout"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	UserAgent     string        `yaml:"user_agent"`
}

// DefaultConfig returns probe settings suitable for a large collection.
func DefaultConfig() Config {
	return Config{
		Workers:       20,
		Timeout:       10 * time.Second,
		RatePerSecond: 50,
		UserAgent:     defaultUserAgent,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.RatePerSecond <= 0 {
		return fmt.Errorf("rate_per_second must be positive, got %g", c.RatePerSecond)
	}
	return nil
}

// Outcome pairs a bookmark with its probe result.
type Outcome struct {
	bookmark.Raw
	Validation bookmark.ValidationResult `json:"validation"`
}

// Checker probes URLs over HTTP and reports per-URL liveness.
type Checker struct {
	client         *http.Client
	insecureClient *http.Client
	config         Config
	limiter        *rate.Limiter
	metrics        *Metrics
	logger         *slog.Logger

	// dialLocal is swappable so tests can probe local addresses without
	// opening sockets.
	dialLocal func(ctx context.Context, addr string) error
}

// New creates a Checker. A nil metrics disables instrumentation; a nil
// logger falls back to slog.Default().
func New(cfg Config, metrics *Metrics, logger *slog.Logger) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid linkcheck config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	dialer := &net.Dialer{Timeout: localDialTimeout}
	return &Checker{
		client: &http.Client{Timeout: cfg.Timeout},
		insecureClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		config:  cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Workers),
		metrics: metrics,
		logger:  logger,
		dialLocal: func(ctx context.Context, addr string) error {
			conn, err := dialer.DialContext(ctx, "tcp", addr)
			if err != nil {
				return err
			}
			return conn.Close()
		},
	}, nil
}

// CheckAll probes every bookmark concurrently and returns outcomes in
// input order. It stops early only when the context is canceled.
func (c *Checker) CheckAll(ctx context.Context, raws []bookmark.Raw) ([]Outcome, error) {
	outcomes := make([]Outcome, len(raws))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.Workers)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result := c.Check(ctx, raw.URL)
			outcomes[i] = Outcome{Raw: raw, Validation: result}
			if !result.Valid {
				c.logger.Debug("dead link",
					slog.String("url", raw.URL),
					slog.String("error", result.Error))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	valid := 0
	for _, o := range outcomes {
		if o.Validation.Valid {
			valid++
		}
	}
	c.logger.Info("validation complete",
		slog.Int("checked", len(outcomes)),
		slog.Int("valid", valid),
		slog.Int("invalid", len(outcomes)-valid))
	return outcomes, nil
}

// Check probes a single URL. It never returns an error: every failure
// mode is reported inside the result.
func (c *Checker) Check(ctx context.Context, rawURL string) bookmark.ValidationResult {
	result := bookmark.ValidationResult{URL: rawURL}
	defer func() {
		if c.metrics != nil {
			c.metrics.observe(result)
		}
	}()

	parsed, err := url.Parse(rawURL)
	if err != nil {
		result.Error = "invalid URL"
		return result
	}

	if browserSchemes[parsed.Scheme] {
		result.Valid = true
		result.Error = "browser internal URL, assumed valid"
		return result
	}

	if isLocalHost(parsed.Hostname()) {
		return c.checkLocal(ctx, parsed, result)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		result.Error = "canceled"
		return result
	}
	return c.checkRemote(ctx, rawURL, result)
}

// checkLocal verifies that something is listening on a local address.
// HTTP status is irrelevant for these: a dashboard behind auth still
// counts as alive.
func (c *Checker) checkLocal(ctx context.Context, parsed *url.URL, result bookmark.ValidationResult) bookmark.ValidationResult {
	port := parsed.Port()
	if port == "" {
		if parsed.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}

	if err := c.dialLocal(ctx, net.JoinHostPort(parsed.Hostname(), port)); err != nil {
		result.Error = "local service not running"
		return result
	}
	result.Valid = true
	result.Error = "local service accessible"
	return result
}

func (c *Checker) checkRemote(ctx context.Context, rawURL string, result bookmark.ValidationResult) bookmark.ValidationResult {
	start := time.Now()
	resp, err := c.probe(ctx, c.client, rawURL)
	if err != nil {
		if isCertError(err) {
			return c.retryInsecure(ctx, rawURL, result)
		}
		result.Error = classifyError(err)
		return result
	}
	defer resp.Body.Close()

	result.ResponseTime = time.Since(start).Seconds()
	result.StatusCode = resp.StatusCode

	if resp.StatusCode >= 400 {
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
		return result
	}

	result.Valid = true
	if final := resp.Request.URL.String(); final != rawURL {
		result.RedirectURL = final
	}
	result.ContentType = strings.TrimSpace(strings.SplitN(resp.Header.Get("Content-Type"), ";", 2)[0])

	if resp.Request.Method == http.MethodGet && strings.Contains(result.ContentType, "text/html") {
		result.Title = peekTitle(resp.Body, resp.Request.URL)
	}
	return result
}

// probe issues a HEAD request and falls back to GET when the server
// rejects HEAD outright or refuses the method.
func (c *Checker) probe(ctx context.Context, client *http.Client, rawURL string) (*http.Response, error) {
	resp, err := c.request(ctx, client, http.MethodHead, rawURL)
	if err == nil && resp.StatusCode != http.StatusMethodNotAllowed && resp.StatusCode != http.StatusNotImplemented {
		return resp, nil
	}
	if err == nil {
		resp.Body.Close()
	}
	return c.request(ctx, client, http.MethodGet, rawURL)
}

func (c *Checker) request(ctx context.Context, client *http.Client, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	return client.Do(req)
}

// retryInsecure reprobes a URL that failed TLS verification. A site with
// a broken certificate is degraded, not dead.
func (c *Checker) retryInsecure(ctx context.Context, rawURL string, result bookmark.ValidationResult) bookmark.ValidationResult {
	result.Error = "SSL certificate error"
	resp, err := c.probe(ctx, c.insecureClient, rawURL)
	if err != nil {
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode < 400 {
		result.Valid = true
		result.Error = "SSL certificate invalid but site accessible"
	}
	return result
}

// peekTitle reads a bounded prefix of an HTML body and extracts the page
// title. Errors are swallowed: the title is a nicety, not a signal.
func peekTitle(body io.Reader, pageURL *url.URL) string {
	article, err := readability.FromReader(io.LimitReader(body, titlePeekBytes), pageURL)
	if err != nil {
		return ""
	}
	title := strings.TrimSpace(article.Title)
	if len(title) > 100 {
		cut := 100
		for cut > 0 && !utf8.RuneStart(title[cut]) {
			cut--
		}
		title = title[:cut]
	}
	return title
}

func isLocalHost(hostname string) bool {
	switch hostname {
	case "localhost", "127.0.0.1", "0.0.0.0":
		return true
	}
	return strings.HasPrefix(hostname, "192.168.") || strings.HasPrefix(hostname, "10.")
}

func isCertError(err error) bool {
	var certErr *tls.CertificateVerificationError
	return errors.As(err, &certErr)
}

func classifyError(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request timed out"
	}
	if strings.Contains(err.Error(), "stopped after") {
		return "too many redirects"
	}
	return "connection failed, site unreachable"
}
