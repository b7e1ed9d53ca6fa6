package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
	"github.com/rs/zerolog"
)

// Searcher runs the scrape pipeline for one query.
type Searcher interface {
	Search(ctx context.Context, params models.SearchParams) []models.JobRecord
}

// JobStore is the persisted snapshot of the latest search run.
type JobStore interface {
	ReplaceAll(ctx context.Context, records []models.JobRecord) error
	List(ctx context.Context) ([]models.JobRecord, error)
}

// Server is the HTTP surface of the scraper. The store may be nil; in that
// case only the ad hoc routes are mounted.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	searcher   Searcher
	store      JobStore
	log        zerolog.Logger
}

func New(searcher Searcher, store JobStore, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Any("panic", recovered).Str("path", c.Request.URL.Path).Msg("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("An error occurred: %v", recovered),
		})
	}))

	s := &Server{
		router:   router,
		searcher: searcher,
		store:    store,
		log:      log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.POST("/search", s.handleSearch)
	api.POST("/download-csv", s.handleDownloadCSV)

	if s.store != nil {
		api.POST("/jobs/search", s.handleJobsSearch)
		api.GET("/jobs", s.handleListJobs)
		api.GET("/jobs/download-csv", s.handleExportJobs)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	s.log.Info().Str("addr", addr).Msg("http server listening")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
