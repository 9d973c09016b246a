// Package server exposes the dashboard over HTTP: a JSON API consumed by
// the browser-side rendering layer, a raw CSV export, and the static page
// shell.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"StockScope/internal/cache"
	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/recorder"
)

// Server wires the collector, cache and recorder behind the HTTP surface.
type Server struct {
	cfg       *config.Config
	collector *collector.Collector
	cache     *cache.SnapshotCache
	recorder  recorder.Recorder
	srv       *http.Server
}

// New creates a Server with all routes registered.
func New(cfg *config.Config, col *collector.Collector, c *cache.SnapshotCache, rec recorder.Recorder) *Server {
	s := &Server{
		cfg:       cfg,
		collector: col,
		cache:     c,
		recorder:  rec,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/stock/{ticker}", s.handleStock)
	mux.HandleFunc("GET /api/stock/{ticker}/history.csv", s.handleHistoryCSV)

	s.srv = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      withAccessLog(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start begins serving. It blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.cfg.Server.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] http server shutting down")
	return s.srv.Shutdown(ctx)
}

// Handler exposes the wrapped mux for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
