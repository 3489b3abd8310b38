package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/talentbase/talentbase/internal/models"
	"github.com/talentbase/talentbase/internal/services"
)

type mockSubmitter struct {
	err       error
	submitted *models.Application
}

func (m *mockSubmitter) Submit(ctx context.Context, app *models.Application) error {
	if m.err != nil {
		return m.err
	}
	m.submitted = app
	return nil
}

type mockStore struct {
	files    map[string][]byte
	saves    int
	removals int
}

func newMockStore() *mockStore {
	return &mockStore{files: make(map[string][]byte)}
}

func (m *mockStore) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	m.saves++
	m.files[name] = data
	return "/uploads/resumes/" + name, nil
}

func (m *mockStore) Remove(ctx context.Context, name string) error {
	m.removals++
	delete(m.files, name)
	return nil
}

func submissionRouter(submitter *mockSubmitter, store *mockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := &ApplicationHandler{applications: submitter, store: store}
	r := gin.New()
	r.POST("/api/applications", handler.Submit)
	return r
}

// multipartBody builds a submission form with an optional resume part.
func multipartBody(t *testing.T, fields map[string]string, fileName, fileType string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, fileName))
		h.Set("Content-Type", fileType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

var validFields = map[string]string{
	"firstName": "Sara",
	"lastName":  "Benali",
	"email":     "sara@example.com",
}

func TestSubmitSpontaneousApplication(t *testing.T) {
	submitter := &mockSubmitter{}
	store := newMockStore()
	r := submissionRouter(submitter, store)

	fields := map[string]string{"jobId": "spontaneous"}
	for k, v := range validFields {
		fields[k] = v
	}
	body, contentType := multipartBody(t, fields, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if submitter.submitted == nil {
		t.Fatal("expected a submission")
	}
	if !submitter.submitted.IsSpontaneous || submitter.submitted.JobID != nil {
		t.Error("jobId=spontaneous must yield a spontaneous application with no job reference")
	}
	if submitter.submitted.Status != models.AppStatusPending {
		t.Errorf("expected initial status pending, got %q", submitter.submitted.Status)
	}
	if store.saves != 1 {
		t.Errorf("expected exactly one file write, got %d", store.saves)
	}

	var resp struct {
		Message     string             `json:"message"`
		Application models.Application `json:"application"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Application.ResumeURL == "" {
		t.Error("expected a resume URL on the created application")
	}
}

func TestSubmitWithJobID(t *testing.T) {
	submitter := &mockSubmitter{}
	store := newMockStore()
	r := submissionRouter(submitter, store)

	fields := map[string]string{"jobId": "abc-123"}
	for k, v := range validFields {
		fields[k] = v
	}
	body, contentType := multipartBody(t, fields, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if submitter.submitted.IsSpontaneous {
		t.Error("a concrete jobId must not be spontaneous")
	}
	if submitter.submitted.JobID == nil || *submitter.submitted.JobID != "abc-123" {
		t.Error("expected the job reference to be kept")
	}
}

func TestSubmitWithoutFile(t *testing.T) {
	submitter := &mockSubmitter{}
	store := newMockStore()
	r := submissionRouter(submitter, store)

	body, contentType := multipartBody(t, validFields, "", "", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if store.saves != 0 || submitter.submitted != nil {
		t.Error("a rejected submission must not write a file or a row")
	}
}

func TestSubmitNonPDFRejected(t *testing.T) {
	submitter := &mockSubmitter{}
	store := newMockStore()
	r := submissionRouter(submitter, store)

	body, contentType := multipartBody(t, validFields, "cv.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("PK"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if store.saves != 0 || submitter.submitted != nil {
		t.Error("a non-PDF upload must leave no file and no row")
	}
}

func TestSubmitMissingRequiredFields(t *testing.T) {
	submitter := &mockSubmitter{}
	store := newMockStore()
	r := submissionRouter(submitter, store)

	body, contentType := multipartBody(t,
		map[string]string{"firstName": "Sara"}, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if store.saves != 0 {
		t.Error("a rejected submission must not write a file")
	}
}

func TestSubmitUnknownJobRemovesStoredFile(t *testing.T) {
	submitter := &mockSubmitter{err: services.ErrJobNotFound}
	store := newMockStore()
	r := submissionRouter(submitter, store)

	fields := map[string]string{"jobId": "missing-job"}
	for k, v := range validFields {
		fields[k] = v
	}
	body, contentType := multipartBody(t, fields, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if store.saves != 1 || store.removals != 1 {
		t.Errorf("expected the stored file to be unwound, saves=%d removals=%d", store.saves, store.removals)
	}
	if len(store.files) != 0 {
		t.Error("uploads must be unchanged after a failed submission")
	}
}
