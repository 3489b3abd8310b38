package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbase/talentbase/internal/dtos"
	"github.com/talentbase/talentbase/internal/models"
	"github.com/talentbase/talentbase/internal/services"
)

type JobManager interface {
	ListAll(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, req *dtos.JobCreateRequest) (*models.Job, error)
	Update(ctx context.Context, id string, req *dtos.JobUpdateRequest) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

type ApplicationReviewer interface {
	List(ctx context.Context, typeFilter, statusFilter string) ([]dtos.ApplicationWithJob, error)
	Get(ctx context.Context, id string) (*dtos.ApplicationWithJob, error)
	UpdateReview(ctx context.Context, id string, req *dtos.ApplicationReviewRequest) (*models.Application, error)
	Delete(ctx context.Context, id string) error
}

type StatsProvider interface {
	Overview(ctx context.Context) (*dtos.AdminStats, error)
}

// AdminHandler serves the token-gated back-office routes.
type AdminHandler struct {
	jobs         JobManager
	applications ApplicationReviewer
	stats        StatsProvider
}

func NewAdminHandler(jobs *services.JobService, applications *services.ApplicationService, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{
		jobs:         jobs,
		applications: applications,
		stats:        stats,
	}
}

// ListJobs is GET /api/admin/jobs: every status, newest first.
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *AdminHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.jobs.Update(c.Request.Context(), c.Param("id"), &req)
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	err := h.jobs.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// ListApplications is GET /api/admin/applications with optional type and
// status query filters.
func (h *AdminHandler) ListApplications(c *gin.Context) {
	results, err := h.applications.List(c.Request.Context(), c.Query("type"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *AdminHandler) GetApplication(c *gin.Context) {
	result, err := h.applications.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrApplicationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch application"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) UpdateApplication(c *gin.Context) {
	var req dtos.ApplicationReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.applications.UpdateReview(c.Request.Context(), c.Param("id"), &req)
	if errors.Is(err, services.ErrApplicationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	err := h.applications.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrApplicationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
