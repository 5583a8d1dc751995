package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/clforge/clforge/internal/api"
	"github.com/clforge/clforge/pkg/httpserver"
	"github.com/clforge/clforge/pkg/logger"
)

func (a *app) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the plate and RUT operations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.settings.HTTPAddr
			}

			service, err := api.New(a.settings, api.WithLogger(a.log))
			if err != nil {
				return err
			}
			defer service.Close()

			srv := httpserver.New(
				httpserver.WithAddr(addr),
				httpserver.WithReadTimeout(a.settings.HTTPReadTimeout),
				httpserver.WithWriteTimeout(a.settings.HTTPWriteTimeout),
				httpserver.WithShutdownTimeout(a.settings.ShutdownTimeout),
				httpserver.WithLogger(a.log),
				httpserver.WithStartHook(func(log *slog.Logger) {
					log.Info("generation limits",
						logger.Component("api"),
						slog.Int("max_count", a.settings.GenerateMaxCount),
						slog.Int64("min", a.settings.GenerateMin),
						slog.Int64("max", a.settings.GenerateMax),
					)
				}),
			)
			return srv.Run(cmd.Context(), service.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default CLFORGE_HTTP_ADDR)")
	return cmd
}
