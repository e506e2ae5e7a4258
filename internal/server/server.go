// Package server wraps the page handler with the HTTP plumbing of a
// deployment: routing, health checks, middleware and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/goliatone/go-qrgen/internal/logging"
	"github.com/goliatone/go-qrgen/pkg/handler"
)

const HealthPath = "/healthz"

type Options struct {
	Addr              string
	BasePath          string
	ReadHeaderTimeout time.Duration
	ShutdownGrace     time.Duration
	Logger            *slog.Logger
	// Page configures the page handler mounted at BasePath.
	Page []handler.OptionFn
}

type Server struct {
	opts    Options
	logger  *slog.Logger
	pattern string
	handler http.Handler
}

// New builds the routed and instrumented handler tree.
func New(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	mux := http.NewServeMux()
	pageOpts := append([]handler.OptionFn{handler.WithLogger(logger)}, opts.Page...)
	pattern, err := handler.RegisterRoutes(mux, opts.BasePath, pageOpts...)
	if err != nil {
		return nil, fmt.Errorf("server: register page: %w", err)
	}
	if pattern != HealthPath {
		mux.HandleFunc(HealthPath, health)
	}

	return &Server{
		opts:    opts,
		logger:  logger,
		pattern: pattern,
		handler: Chain(mux,
			RequestIDMiddleware(),
			LoggingMiddleware(logger),
			RecoveryMiddleware(logger),
		),
	}, nil
}

// Pattern returns the mux pattern the page is served under.
func (s *Server) Pattern() string {
	return s.pattern
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down within the grace
// period.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String(), "path", s.pattern)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	grace := s.opts.ShutdownGrace
	if grace <= 0 {
		grace = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	s.logger.Info("shutting down", "grace", grace)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	return nil
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}
