package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/talentbase/talentbase/internal/dtos"
	"github.com/talentbase/talentbase/internal/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		DB: db,
	}
}

// Overview loads both tables and counts in memory. Fine at this scale; a
// larger deployment would push the aggregation into SQL.
func (s *StatsService) Overview(ctx context.Context) (*dtos.AdminStats, error) {
	var jobs []models.Job
	if err := s.DB.WithContext(ctx).Find(&jobs).Error; err != nil {
		return nil, err
	}
	var apps []models.Application
	if err := s.DB.WithContext(ctx).Find(&apps).Error; err != nil {
		return nil, err
	}

	stats := &dtos.AdminStats{
		TotalJobs:         len(jobs),
		TotalApplications: len(apps),
	}

	for _, job := range jobs {
		switch job.Status {
		case models.JobStatusOpen:
			stats.OpenJobs++
		case models.JobStatusClosed:
			stats.ClosedJobs++
		case models.JobStatusDraft:
			stats.DraftJobs++
		}
	}

	for _, app := range apps {
		if app.IsSpontaneous {
			stats.SpontaneousApplications++
		}
		switch app.Status {
		case models.AppStatusPending:
			stats.PendingApplications++
			stats.ApplicationsByStatus.Pending++
		case models.AppStatusReviewed:
			stats.ApplicationsByStatus.Reviewed++
		case models.AppStatusShortlisted:
			stats.ApplicationsByStatus.Shortlisted++
		case models.AppStatusRejected:
			stats.ApplicationsByStatus.Rejected++
		case models.AppStatusHired:
			stats.ApplicationsByStatus.Hired++
		}
	}

	return stats, nil
}
