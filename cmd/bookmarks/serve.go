package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/halcasteel/chrome-bookmark-organizer/serve"
	"github.com/halcasteel/chrome-bookmark-organizer/site"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the generated site",
		Long: `Serve hosts the generated static site over HTTP with caching
disabled so edits show up on refresh. It watches the organized
artifacts directory and regenerates the site when they change.

The server also exposes /healthz and Prometheus metrics on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Serve.Addr = addr
			}

			generator, err := site.New(logger)
			if err != nil {
				return err
			}

			server, err := serve.New(cfg.Serve, generator, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Serving %s on %s\n", cfg.Serve.SiteDir, cfg.Serve.Addr)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
