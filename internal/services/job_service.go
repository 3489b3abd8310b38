package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentbase/talentbase/internal/dtos"
	"github.com/talentbase/talentbase/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// ListOpen returns open jobs only, oldest first.
func (s *JobService) ListOpen(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Where("status = ?", models.JobStatusOpen).
		Order("created_at asc").
		Find(&jobs).Error
	return jobs, err
}

// ListAll returns every job regardless of status, newest first.
func (s *JobService) ListAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Order("created_at desc").
		Find(&jobs).Error
	return jobs, err
}

// Get fetches a job by id. The public detail route deliberately serves
// closed and draft jobs too, so direct links keep resolving.
func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Create(ctx context.Context, req *dtos.JobCreateRequest) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Description:  req.Description,
		Type:         req.Type,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Salary:       req.Salary,
		Status:       req.Status,
	}
	if job.Type == "" {
		job.Type = models.JobTypeFullTime
	}
	if job.Status == "" {
		job.Status = models.JobStatusDraft
	}

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update merges the supplied fields into the stored job. UpdatedAt is
// refreshed on every call, even when no field changed.
func (s *JobService) Update(ctx context.Context, id string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = req.Benefits
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes the job. Referencing applications keep their rows; the
// store clears their job_id via the SET NULL constraint.
func (s *JobService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
