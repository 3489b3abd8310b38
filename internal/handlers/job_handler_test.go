package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/talentbase/talentbase/internal/models"
	"github.com/talentbase/talentbase/internal/services"
)

type mockJobReader struct {
	jobs []models.Job
}

func (m *mockJobReader) ListOpen(ctx context.Context) ([]models.Job, error) {
	return m.jobs, nil
}

func (m *mockJobReader) Get(ctx context.Context, id string) (*models.Job, error) {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			return &m.jobs[i], nil
		}
	}
	return nil, services.ErrJobNotFound
}

func TestListOpenJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := &JobHandler{jobs: &mockJobReader{
		jobs: []models.Job{
			{ID: "1", Title: "Backend Engineer", Department: "Engineering", Status: models.JobStatusOpen},
		},
	}}

	r := gin.New()
	r.GET("/api/jobs", handler.ListOpen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/jobs", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response []models.Job
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Errorf("failed to unmarshal response: %v", err)
	}
	if len(response) != 1 {
		t.Errorf("expected 1 job, got %d", len(response))
	}
}

func TestGetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A draft job still resolves on the detail route.
	handler := &JobHandler{jobs: &mockJobReader{
		jobs: []models.Job{
			{ID: "draft-1", Title: "Quiet Posting", Status: models.JobStatusDraft},
		},
	}}

	r := gin.New()
	r.GET("/api/jobs/:id", handler.Get)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/jobs/draft-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for a draft job, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/jobs/unknown", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
