package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator HTTP API",
	Long: `Serve the calculator over HTTP.

Endpoints:
  GET  /health, /metrics
  GET  /calculator/operations
  POST /calculator/{op}, /calculator/four, /calculator/chain
  POST /programmer/{op}, /programmer/convert
  GET|DELETE /history, POST /history/save, /history/load`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := current.cfg
	if addr != "" {
		cfg.Server.Addr = addr
	}

	if cfg.Telemetry.OTLPEnabled {
		shutdown, err := initTelemetry(ctx, cfg.Telemetry)
		if err != nil {
			return err
		}
		defer shutdown(context.WithoutCancel(ctx))
	}

	if err := observability.RegisterCollector(current.store.Collector()); err != nil {
		return fmt.Errorf("register history collector: %w", err)
	}

	// Router
	router := server.NewRouter(calculator.NewHandler(current.svc))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		observability.Logger.Info("server started", zap.String("addr", srv.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return waitForShutdown(ctx, srv, errCh, cfg.Server.ShutdownTimeout.Duration)
}

// waitForShutdown blocks until ctx is cancelled by a signal or the server
// fails, then drains in-flight requests for at most timeout.
func waitForShutdown(ctx context.Context, srv *http.Server, errCh <-chan error, timeout time.Duration) error {
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	observability.Logger.Info("shutting down server", zap.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
