package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbase/talentbase/internal/models"
	"github.com/talentbase/talentbase/internal/services"
)

// JobReader is the slice of JobService the public routes need.
type JobReader interface {
	ListOpen(ctx context.Context) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
}

type JobHandler struct {
	jobs JobReader
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// ListOpen is the GET /api/jobs endpoint.
func (h *JobHandler) ListOpen(c *gin.Context) {
	jobs, err := h.jobs.ListOpen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is the GET /api/jobs/:id endpoint. It serves jobs of any status so
// direct links to closed or draft postings still resolve.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job"})
		return
	}
	c.JSON(http.StatusOK, job)
}
