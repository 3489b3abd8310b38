package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/talentbase/talentbase/internal/models"
)

// testDB opens an in-memory sqlite database with foreign keys enforced so
// the SET NULL action on applications.job_id behaves like postgres.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled second connection would see a different :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(&models.Job{}, &models.Application{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedJob(t *testing.T, db *gorm.DB, title, status string) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       title,
		Department:  "Engineering",
		Location:    "Remote",
		Type:        models.JobTypeFullTime,
		Description: "test posting",
		Status:      status,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to seed job: %v", err)
	}
	return job
}

func seedApplication(t *testing.T, db *gorm.DB, jobID *string) *models.Application {
	t.Helper()
	app := &models.Application{
		JobID:         jobID,
		FirstName:     "Amina",
		LastName:      "Idrissi",
		Email:         "amina@example.com",
		ResumeURL:     "/uploads/resumes/test.pdf",
		IsSpontaneous: jobID == nil,
		Status:        models.AppStatusPending,
	}
	if err := db.Create(app).Error; err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	return app
}
