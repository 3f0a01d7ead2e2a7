package dto

import "github.com/campushub/portal/internal/app/models"

// CreateJobRequest represents a request to post a new job
type CreateJobRequest struct {
	Title        string         `json:"title" binding:"required"`
	Company      string         `json:"company" binding:"required"`
	Location     *string        `json:"location"`
	Type         models.JobType `json:"type"`
	Description  string         `json:"description" binding:"required"`
	Requirements *StringList    `json:"requirements"`
	Salary       *string        `json:"salary"`
	Deadline     *OptionalDate  `json:"deadline"`
}

// ApplyJobRequest represents a student's application to a job. Resume is
// optional; the student's stored resume reference is used when omitted.
type ApplyJobRequest struct {
	Resume *string `json:"resume"`
}
