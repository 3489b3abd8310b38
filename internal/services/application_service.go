package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentbase/talentbase/internal/dtos"
	"github.com/talentbase/talentbase/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// Submit inserts the application row. When a job is referenced it must
// exist; the caller is responsible for unwinding the already-stored resume
// file if Submit fails.
func (s *ApplicationService) Submit(ctx context.Context, app *models.Application) error {
	if app.JobID != nil {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Job{}).
			Where("id = ?", *app.JobID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrJobNotFound
		}
	}
	return s.DB.WithContext(ctx).Create(app).Error
}

// List returns every application joined with its job, newest first, then
// applies the type and status filters in memory. typeFilter is
// "spontaneous", "job" or empty; statusFilter is one of the review
// statuses or empty.
func (s *ApplicationService) List(ctx context.Context, typeFilter, statusFilter string) ([]dtos.ApplicationWithJob, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Order("created_at desc").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	results := make([]dtos.ApplicationWithJob, 0, len(apps))
	for _, app := range apps {
		switch typeFilter {
		case "spontaneous":
			if !app.IsSpontaneous {
				continue
			}
		case "job":
			if app.IsSpontaneous {
				continue
			}
		}
		if statusFilter != "" && app.Status != statusFilter {
			continue
		}
		job := app.Job
		app.Job = nil
		results = append(results, dtos.ApplicationWithJob{Application: app, Job: job})
	}
	return results, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*dtos.ApplicationWithJob, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Where("id = ?", id).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	job := app.Job
	app.Job = nil
	return &dtos.ApplicationWithJob{Application: app, Job: job}, nil
}

// UpdateReview merges the supplied status and notes; UpdatedAt is always
// refreshed.
func (s *ApplicationService) UpdateReview(ctx context.Context, id string, req *dtos.ApplicationReviewRequest) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		app.Status = *req.Status
	}
	if req.Notes != nil {
		app.Notes = req.Notes
	}

	if err := s.DB.WithContext(ctx).Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Delete removes the row only. The resume blob is left in place.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
