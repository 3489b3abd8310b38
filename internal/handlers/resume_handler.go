package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talentbase/talentbase/internal/storage"
)

// ResumeHandler serves resume downloads when the S3 backend is active, by
// redirecting to a short-lived presigned URL. The disk backend serves the
// upload directory statically instead.
type ResumeHandler struct {
	store *storage.S3Store
}

func NewResumeHandler(store *storage.S3Store) *ResumeHandler {
	return &ResumeHandler{store: store}
}

func (h *ResumeHandler) Download(c *gin.Context) {
	url, err := h.store.PresignedURL(c.Request.Context(), c.Param("file"), 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}
