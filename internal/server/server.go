// Package server provides the HTTP API over the findings store, aggregates,
// and the recommender.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/orbitalbio/litscan/internal/config"
	"github.com/orbitalbio/litscan/internal/models"
	"github.com/orbitalbio/litscan/internal/recommend"
)

// StatusInfo is the corpus snapshot reported by /api/v1/status. The server
// serves a loaded snapshot of the stores; restart it after a pipeline run to
// pick up new data.
type StatusInfo struct {
	Documents int   `json:"documents"`
	Passages  int   `json:"passages"`
	Findings  int   `json:"findings"`
	Analyzed  int64 `json:"analyzed"`
}

// Server is the HTTP server for the findings API.
type Server struct {
	findings    []*models.Finding
	recommender *recommend.Recommender
	status      StatusInfo
	config      *config.ServerConfig
	logger      *zap.Logger
	server      *http.Server
}

// NewServer creates a server over a loaded findings snapshot. recommender may
// be nil when no analyses or findings exist yet.
func NewServer(
	findings []*models.Finding,
	recommender *recommend.Recommender,
	status StatusInfo,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		findings:    findings,
		recommender: recommender,
		status:      status,
		config:      cfg,
		logger:      logger,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/api/v1/findings", s.handleFindings)
	r.Post("/api/v1/recommend", s.handleRecommend)
	r.Get("/api/v1/aggregates/gaps", s.handleGaps)
	r.Get("/api/v1/aggregates/mission-matrix", s.handleMissionMatrix)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
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
