package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job types and lifecycle statuses. Values travel over the wire as-is.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"

	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Application review statuses. Pending is the only initial state; admins
// may relabel freely between the five values.
const (
	AppStatusPending     = "pending"
	AppStatusReviewed    = "reviewed"
	AppStatusShortlisted = "shortlisted"
	AppStatusRejected    = "rejected"
	AppStatusHired       = "hired"
)

type Job struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Department   string    `gorm:"size:100;not null" json:"department"`
	Location     string    `gorm:"size:255;not null" json:"location"`
	Type         string    `gorm:"size:20;not null;default:'full-time'" json:"type"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements *string   `gorm:"type:text" json:"requirements"`
	Benefits     *string   `gorm:"type:text" json:"benefits"`
	Salary       *string   `gorm:"size:100" json:"salary"`
	Status       string    `gorm:"size:20;not null;default:'open'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

type Application struct {
	ID    string  `gorm:"type:uuid;primaryKey" json:"id"`
	JobID *string `gorm:"type:uuid;index" json:"jobId"`
	// Cleared by the store when the job is deleted; IsSpontaneous is not.
	Job *Job `gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	FirstName string  `gorm:"size:100;not null" json:"firstName"`
	LastName  string  `gorm:"size:100;not null" json:"lastName"`
	Email     string  `gorm:"size:255;not null" json:"email"`
	Phone     *string `gorm:"size:50" json:"phone"`

	ResumeURL          string  `gorm:"size:500;not null" json:"resumeUrl"`
	ResumeOriginalName *string `gorm:"size:255" json:"resumeOriginalName"`

	CoverLetter  *string `gorm:"type:text" json:"coverLetter"`
	LinkedinURL  *string `gorm:"size:500" json:"linkedinUrl"`
	PortfolioURL *string `gorm:"size:500" json:"portfolioUrl"`

	IsSpontaneous bool    `gorm:"not null;default:false" json:"isSpontaneous"`
	Status        string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes         *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
