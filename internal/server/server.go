// Package server provides the HTTP API over the extracted reference records.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/keibalab/jvspec/internal/config"
	"github.com/keibalab/jvspec/internal/models"
	"github.com/keibalab/jvspec/internal/search"
	"go.uber.org/zap"
)

// Server is the HTTP server for the jvspec API. It serves a snapshot of
// the latest extraction; SetSnapshot swaps it when the pipeline re-runs.
type Server struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server

	mu    sync.RWMutex
	ex    *models.Extraction
	index *search.Index
}

// NewServer creates a server over an extraction and its search index.
func NewServer(ex *models.Extraction, index *search.Index, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		ex:     ex,
		index:  index,
	}
}

// SetSnapshot atomically replaces the served extraction and search index
// and closes the index it replaces.
func (s *Server) SetSnapshot(ex *models.Extraction, index *search.Index) {
	s.mu.Lock()
	old := s.index
	s.ex = ex
	s.index = index
	s.mu.Unlock()
	if old != nil && old != index {
		_ = old.Close()
	}
}

func (s *Server) snapshot() (*models.Extraction, *search.Index) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ex, s.index
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/api/v1/methods", s.handleMethods)
	r.Get("/api/v1/errors", s.handleErrors)
	r.Get("/api/v1/errors/{code}", s.handleError)
	r.Get("/api/v1/search", s.handleSearch)
	r.Handle("/docs/*", http.StripPrefix("/docs/", http.FileServer(http.Dir(s.config.Output.SpecsDir))))
	r.Get("/health", s.handleHealth)

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
