package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/quickcalc/internal/logging"
	"github.com/iwvelando/quickcalc/internal/server"
	"github.com/iwvelando/quickcalc/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		serverConfigPath string
		address          string
		maxRequestSize   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}
			if maxRequestSize != "" {
				size, err := server.ParseSize(maxRequestSize)
				if err != nil {
					return err
				}
				cfg.SetRequestSizeBytes(size)
			}

			logger := a.logger
			if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
				logger, err = logging.NewLogger(cfg.Logging, a.logLevel)
				if err != nil {
					return err
				}
				defer func() {
					_ = logger.Sync()
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, logger, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flags.StringVar(&address, "address", "", "listen address override")
	flags.StringVar(&maxRequestSize, "max-request-size", "", "request body limit override, e.g. 64K")
	return cmd
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, logger *zap.Logger, cfg *server.Config) error {
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, cfg, version),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "main.serve"),
			zap.String("address", cfg.Address),
			zap.Int64("maxRequestSize", cfg.RequestSizeBytes()),
			zap.String("unitSystem", cfg.Defaults.UnitSystem),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "main.serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
