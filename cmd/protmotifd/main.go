package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"protmotif/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "protmotifd",
		Short:        "Serve the protmotif HTTP API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(v, configPath)
			if err != nil {
				return err
			}
			logger, closeLog := app.NewLogger(cfg.Log, os.Stderr)
			defer func() { _ = closeLog() }()

			w, err := app.NewWire(cfg, logger)
			if err != nil {
				logger.Error("startup failed", "err", err)
				return err
			}
			defer func() { _ = w.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := w.Ping(ctx); err != nil {
				logger.Error("database unreachable", "err", err)
				return err
			}

			srv := &http.Server{
				Addr:              cfg.Server.Addr(),
				Handler:           w.Server().Handler(),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
				IdleTimeout:       120 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening",
					"addr", srv.Addr,
					"driver", cfg.Database.Driver,
					"data_dir", cfg.DataDir,
					"submit_max_length", cfg.Limits.SubmitMaxLength,
					"max_protein_length", cfg.Limits.MaxProteinLength,
				)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "err", err)
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./protmotif.yaml or ~/.protmotif/protmotif.yaml)")
	cmd.Flags().Int("port", 0, "listen port (overrides PORT)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn or error")
	_ = v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	return cmd
}
