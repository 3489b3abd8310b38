package dtos

type JobCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Type         string  `json:"type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	Requirements *string `json:"requirements"`
	Benefits     *string `json:"benefits"`
	Salary       *string `json:"salary"`
	Status       string  `json:"status" binding:"omitempty,oneof=open closed draft"`
}

// JobUpdateRequest is a partial update: only non-nil fields are applied.
type JobUpdateRequest struct {
	Title        *string `json:"title"`
	Department   *string `json:"department"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	Type         *string `json:"type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	Requirements *string `json:"requirements"`
	Benefits     *string `json:"benefits"`
	Salary       *string `json:"salary"`
	Status       *string `json:"status" binding:"omitempty,oneof=open closed draft"`
}
