package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/halcasteel/chrome-bookmark-organizer/supervise"
)

func newServicesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Manage companion services",
		Long: `Services runs the companion processes declared in configuration
(for example an API backend next to the static site), in declaration
order, waiting for each one's port before starting the next.`,
	}

	cmd.AddCommand(newServicesStartCmd(opts), newServicesStatusCmd(opts))
	return cmd
}

func newServicesStartCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start [name...]",
		Short: "Start configured services and supervise them until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}
			if len(cfg.Services) == 0 {
				return fmt.Errorf("no services configured: add a services list to config")
			}

			manager, err := supervise.NewManager(cfg.Services, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if len(args) == 0 {
				if err := manager.StartAll(ctx); err != nil {
					return err
				}
			} else {
				for _, name := range args {
					if err := manager.Start(ctx, name); err != nil {
						manager.StopAll()
						return err
					}
				}
			}

			fmt.Println("Services running, press Ctrl+C to stop")
			<-ctx.Done()
			manager.StopAll()
			return nil
		},
	}
}

func newServicesStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which configured services are running",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}

			manager, err := supervise.NewManager(cfg.Services, logger)
			if err != nil {
				return err
			}

			for _, status := range manager.StatusAll() {
				state := "stopped"
				if status.Running {
					state = "running"
				}
				line := fmt.Sprintf("%-20s %s", status.Name, state)
				if status.Port != 0 {
					line += fmt.Sprintf("  port=%d", status.Port)
				}
				if status.PID != 0 {
					line += fmt.Sprintf("  pid=%d", status.PID)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
