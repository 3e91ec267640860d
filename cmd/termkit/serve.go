package main

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/vango-dev/termkit/internal/registry"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built-in catalog as an HTTP registry",
		Long: `Serve the built-in catalog as an HTTP registry.

Point other projects at it with:

  termkit init --registry http://<host>:8080

Prometheus metrics are exposed at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")

	return cmd
}

func (a *app) serveHandler(provider registry.Provider) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(a.telemetry.Registry(), promhttp.HandlerOpts{}))
	r.Mount("/", registry.NewHandler(provider, a.logger))
	return r
}

func (a *app) runServe(cmd *cobra.Command, addr string) (err error) {
	ctx, done := a.commandContext(cmd)
	defer func() { done(err) }()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           a.serveHandler(registry.Embedded()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	success(cmd.OutOrStdout(), "Serving registry on http://%s", ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	info(cmd.OutOrStdout(), "Shutting down...")
	return srv.Shutdown(shutdownCtx)
}
