package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sbromberger/arcoder/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the name-encoding HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			srv := server.New(activeCfg)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			slog.Info("listening",
				slog.String("addr", activeCfg.Server.ListenAddr),
				slog.String("encoder", activeCfg.Encoder),
			)
			return srv.Start(ctx)
		},
	}
}
