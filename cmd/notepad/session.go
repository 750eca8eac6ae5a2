package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/internal/shell"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive session",
	Long: `Start an interactive session reading commands from stdin.
Type help for the list of commands. Notes live until the session ends.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ctrl, err := open(cmd)
		if err != nil {
			fatal("Error initializing notepad", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if verbose {
			events := ctrl.Store().Watch(ctx, 0)
			lifecycle.Go(ctx, func(ctx context.Context) error {
				for e := range events {
					slog.Debug("store changed", "event", e.String())
				}
				return nil
			})
		}

		s := shell.NewSession(ctrl, os.Stdout,
			shell.WithLogger(slog.Default()),
			shell.WithColor(cfg.Color),
		)
		if err := s.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
			fatal("Session failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
