// Package server exposes cube sessions over an HTTP JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SeamusWaldron/cubesim"
)

// Config configures the HTTP server.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	MaxSessions     int
	SessionOptions  []cubesim.Option
}

// Server is the HTTP API.
type Server struct {
	cfg      Config
	log      *slog.Logger
	router   chi.Router
	registry *Registry
	http     *http.Server
}

// New builds a server and registers its routes.
func New(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	opts := append([]cubesim.Option{cubesim.WithLogger(log)}, cfg.SessionOptions...)
	s := &Server{
		cfg:      cfg,
		log:      log,
		router:   chi.NewRouter(),
		registry: NewRegistry(cfg.MaxSessions, opts...),
	}
	s.routes()

	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(AccessLog(s.log))
	s.router.Use(Recover)
	s.router.Use(Compression)

	h := &handlers{log: s.log, registry: s.registry}

	s.router.Get("/healthz", h.health)
	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/scramble", h.scramble)
		r.Post("/invert", h.invert)

		r.Post("/sessions", h.createSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.withSession(h.getSession))
			r.Delete("/", h.deleteSession)
			r.Post("/reset", h.withSession(h.resetSession))
			r.Post("/moves", h.withSession(h.applyMoves))
			r.Post("/scramble", h.withSession(h.scrambleSession))
			r.Post("/solve", h.withSession(h.solveSession))
		})
	})
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the session registry.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
