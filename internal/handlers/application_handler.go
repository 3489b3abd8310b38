package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/talentbase/talentbase/internal/dtos"
	"github.com/talentbase/talentbase/internal/models"
	"github.com/talentbase/talentbase/internal/services"
	"github.com/talentbase/talentbase/internal/storage"
)

const maxResumeSize = 5 << 20 // 5 MiB

type ApplicationSubmitter interface {
	Submit(ctx context.Context, app *models.Application) error
}

type ApplicationHandler struct {
	applications ApplicationSubmitter
	store        storage.ResumeStore
}

func NewApplicationHandler(applications *services.ApplicationService, store storage.ResumeStore) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		store:        store,
	}
}

// Submit is the POST /api/applications endpoint: one resume file plus form
// fields, multipart. The file is validated before anything is stored; if
// the row insert fails afterwards, the stored file is removed again.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.ApplicationSubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}
	if file.Size > maxResumeSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file must be 5MB or less"})
		return
	}
	if file.Header.Get("Content-Type") != "application/pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read resume file"})
		return
	}
	defer src.Close()

	data := make([]byte, file.Size)
	if _, err := io.ReadFull(src, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read resume file"})
		return
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	resumeURL, err := h.store.Save(c.Request.Context(), name, "application/pdf", data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store resume file"})
		return
	}

	isSpontaneous := req.JobID == "" || req.JobID == dtos.JobIDSpontaneous
	app := &models.Application{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              optional(req.Phone),
		ResumeURL:          resumeURL,
		ResumeOriginalName: optional(file.Filename),
		CoverLetter:        optional(req.CoverLetter),
		LinkedinURL:        optional(req.LinkedinURL),
		PortfolioURL:       optional(req.PortfolioURL),
		IsSpontaneous:      isSpontaneous,
		Status:             models.AppStatusPending,
	}
	if !isSpontaneous {
		app.JobID = &req.JobID
	}

	if err := h.applications.Submit(c.Request.Context(), app); err != nil {
		// Unwind the blob so a failed submission leaves no orphan. Cleanup
		// failure is logged and swallowed.
		if rmErr := h.store.Remove(c.Request.Context(), name); rmErr != nil {
			log.Warn().Err(rmErr).Str("file", name).Msg("failed to remove resume after aborted submission")
		}
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
