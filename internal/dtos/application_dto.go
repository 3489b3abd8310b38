package dtos

import "github.com/talentbase/talentbase/internal/models"

// JobIDSpontaneous is the sentinel the public form sends when the candidate
// applies without a specific posting.
const JobIDSpontaneous = "spontaneous"

// ApplicationSubmitRequest carries the multipart form fields of a public
// submission. The resume file itself is read separately from the multipart
// body.
type ApplicationSubmitRequest struct {
	JobID     string `form:"jobId"`
	FirstName string `form:"firstName" binding:"required"`
	LastName  string `form:"lastName" binding:"required"`
	Email     string `form:"email" binding:"required,email"`

	Phone        string `form:"phone"`
	CoverLetter  string `form:"coverLetter"`
	LinkedinURL  string `form:"linkedinUrl"`
	PortfolioURL string `form:"portfolioUrl"`
}

// ApplicationReviewRequest is the admin PATCH body; absent fields keep
// their current values.
type ApplicationReviewRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending reviewed shortlisted rejected hired"`
	Notes  *string `json:"notes"`
}

// ApplicationWithJob pairs an application with its posting, or nil for
// spontaneous and orphaned applications.
type ApplicationWithJob struct {
	Application models.Application `json:"application"`
	Job         *models.Job        `json:"job"`
}

type ApplicationsByStatus struct {
	Pending     int `json:"pending"`
	Reviewed    int `json:"reviewed"`
	Shortlisted int `json:"shortlisted"`
	Rejected    int `json:"rejected"`
	Hired       int `json:"hired"`
}

type AdminStats struct {
	TotalJobs               int                  `json:"totalJobs"`
	OpenJobs                int                  `json:"openJobs"`
	ClosedJobs              int                  `json:"closedJobs"`
	DraftJobs               int                  `json:"draftJobs"`
	TotalApplications       int                  `json:"totalApplications"`
	PendingApplications     int                  `json:"pendingApplications"`
	SpontaneousApplications int                  `json:"spontaneousApplications"`
	ApplicationsByStatus    ApplicationsByStatus `json:"applicationsByStatus"`
}
