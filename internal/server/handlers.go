package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/export"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

const (
	defaultJobLimit = 100

	// The persisted collection is bounded tighter than ad hoc searches:
	// replace-all over thousands of rows per request is not worth it.
	maxPersistedLimit = 1000
	maxAdHocLimit     = 3000
)

type searchRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	JobLimit int    `json:"job_limit"`
}

// validate trims the free-text inputs, applies the default limit, and
// returns a caller-facing message when the request is rejected.
func (r *searchRequest) validate(maxLimit int) (string, bool) {
	r.Keywords = strings.TrimSpace(r.Keywords)
	r.Location = strings.TrimSpace(r.Location)
	if r.Keywords == "" || r.Location == "" {
		return "Both keywords and location are required", false
	}

	if r.JobLimit == 0 {
		r.JobLimit = defaultJobLimit
	}
	if r.JobLimit < 1 || r.JobLimit > maxLimit {
		return fmt.Sprintf("Job limit must be between 1 and %d", maxLimit), false
	}
	return "", true
}

// handleSearch is the ad hoc mode: run the pipeline and return the matches
// in a message envelope without touching the store.
func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both keywords and location are required"})
		return
	}
	if msg, ok := req.validate(maxAdHocLimit); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	records := s.searcher.Search(c.Request.Context(), models.SearchParams{
		Keywords: req.Keywords,
		Location: req.Location,
		Limit:    req.JobLimit,
	})

	if len(records) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("No jobs found for %s in %s", req.Keywords, req.Location),
			"jobs":    []models.JobRecord{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d matching jobs", len(records)),
		"jobs":    records,
	})
}

// handleJobsSearch is the persisted mode: run the pipeline, replace the
// stored collection with this run's snapshot, and return the raw records.
func (s *Server) handleJobsSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both keywords and location are required"})
		return
	}
	if msg, ok := req.validate(maxPersistedLimit); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	records := s.searcher.Search(c.Request.Context(), models.SearchParams{
		Keywords: req.Keywords,
		Location: req.Location,
		Limit:    req.JobLimit,
	})

	if err := s.store.ReplaceAll(c.Request.Context(), records); err != nil {
		s.log.Error().Err(err).Msg("replace-all failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("An error occurred: %v", err)})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (s *Server) handleListJobs(c *gin.Context) {
	records, err := s.store.List(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("An error occurred: %v", err)})
		return
	}
	if records == nil {
		records = []models.JobRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// handleDownloadCSV converts a posted record array to a CSV attachment. The
// column set is the union of fields present across the posted records.
func (s *Server) handleDownloadCSV(c *gin.Context) {
	var records []models.JobRecord
	if err := c.ShouldBindJSON(&records); err != nil || len(records) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format"})
		return
	}

	writeCSVAttachment(c, records, export.UnionColumns(records))
}

// handleExportJobs streams the persisted collection as CSV with the fixed
// stored-schema column list.
func (s *Server) handleExportJobs(c *gin.Context) {
	records, err := s.store.List(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("An error occurred: %v", err)})
		return
	}

	writeCSVAttachment(c, records, export.StoredColumns())
}

func writeCSVAttachment(c *gin.Context, records []models.JobRecord, columns []string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="jobs_data.csv"`)
	c.Status(http.StatusOK)
	_ = export.WriteCSV(c.Writer, records, columns, ',')
}
