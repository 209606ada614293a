// Package api exposes ingestion runs over HTTP: a gin application
// router for uploads and queries, and a chi ops router for health,
// metrics and profiling.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"distio/app"
	"distio/internal/report"
	"distio/ports"
)

// Server is the HTTP API over ingestion runs. Concurrent uploads are
// bounded by a weighted semaphore so a burst of large files cannot run
// an unbounded number of fits at once.
type Server struct {
	router   *gin.Engine
	ingestor app.Ingestor
	repo     ports.RunRepository
	report   *report.Builder
	ingests  *semaphore.Weighted
}

// NewServer creates the API server and registers its routes
func NewServer(mode string, ingestor app.Ingestor, repo ports.RunRepository, builder *report.Builder, maxParallel int64) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}
	if maxParallel < 1 {
		maxParallel = 1
	}

	s := &Server{
		router:   gin.Default(),
		ingestor: ingestor,
		repo:     repo,
		report:   builder,
		ingests:  semaphore.NewWeighted(maxParallel),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.POST("/runs", s.handleCreateRun)
	api.GET("/runs", s.handleListRuns)
	api.GET("/runs/:id", s.handleGetRun)
	api.GET("/runs/:id/report", s.handleRunReport)
	api.DELETE("/runs/:id", s.handleDeleteRun)
}

// Handler exposes the router, e.g. for handler tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
