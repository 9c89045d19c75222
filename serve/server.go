// Package serve hosts the generated bookmark site over HTTP and keeps
// it fresh by regenerating when the organized artifacts change.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/halcasteel/chrome-bookmark-organizer/site"
)

// Config controls the HTTP server and artifact watching.
type Config struct {
	Addr         string        `yaml:"addr"`
	SiteDir      string        `yaml:"site_dir"`
	OrganizedDir string        `yaml:"organized_dir"`
	Debounce     time.Duration `yaml:"debounce"`
}

// DefaultConfig returns server settings for local browsing.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		Debounce: 500 * time.Millisecond,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.SiteDir == "" {
		return errors.New("site_dir is required")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive, got %s", c.Debounce)
	}
	return nil
}

// Server serves the static site with cache-busting headers, a health
// endpoint, and Prometheus metrics.
type Server struct {
	config    Config
	generator *site.Generator
	logger    *slog.Logger

	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// New creates a Server. The generator is optional: without one the
// server only serves what is already on disk and never regenerates.
func New(cfg Config, generator *site.Generator, logger *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid serve config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookmarks",
		Subsystem: "serve",
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by status code.",
	}, []string{"code"})
	registry.MustRegister(requests)

	return &Server{
		config:    cfg,
		generator: generator,
		logger:    logger,
		registry:  registry,
		requests:  requests,
	}, nil
}

// Handler returns the server's routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	files := noCache(http.FileServer(http.Dir(s.config.SiteDir)))
	mux.Handle("/", promhttp.InstrumentHandlerCounter(s.requests, files))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// Run serves until the context is canceled. When a generator and
// organized directory are configured it regenerates the site up front
// and again on every artifact change.
func (s *Server) Run(ctx context.Context) error {
	if s.watching() {
		if err := s.regenerate(); err != nil {
			return err
		}
	}

	httpServer := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving bookmark site",
			slog.String("addr", s.config.Addr),
			slog.String("dir", s.config.SiteDir))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if s.watching() {
		g.Go(func() error {
			return s.watch(ctx)
		})
	}
	return g.Wait()
}

func (s *Server) watching() bool {
	return s.generator != nil && s.config.OrganizedDir != ""
}

func (s *Server) regenerate() error {
	collection, err := site.Load(s.config.OrganizedDir)
	if err != nil {
		return fmt.Errorf("failed to load organized bookmarks: %w", err)
	}
	return s.generator.Generate(collection, s.config.SiteDir)
}

// noCache disables caching so edits show up on refresh.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
