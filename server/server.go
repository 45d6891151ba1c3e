// Package server exposes the resolver over HTTP.
//
//	GET /resolve?url=<page>   200 {"url":...,"format":...} or 422 {"error":...}
//	GET /metrics              Prometheus exposition
//	GET /healthz              204
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kipdayo/kipdayo/log"
)

const shutdownTimeout = 10 * time.Second

// Options configures New.
type Options struct {
	Resolver Resolver
	// Sessdata is the fallback token for requests without the header.
	Sessdata string
	Metrics  *Metrics
}

// New returns the router serving every endpoint.
func New(opts Options) http.Handler {
	m := opts.Metrics
	if m == nil {
		m = NewMetrics()
	}

	h := &handler{resolver: opts.Resolver, metrics: m, sessdata: opts.Sessdata}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(m.middleware)

	r.Get("/resolve", h.resolve)
	r.Get("/healthz", healthz)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

// Run serves handler on addr until ctx is cancelled, then drains connections.
// ready, when non-nil, receives the bound address once listening.
func Run(ctx context.Context, addr string, handler http.Handler, ready chan<- string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	log.Infof("listening on %s", ln.Addr())
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
