package models

import "time"

// Job defines the job posting model based on the 'jobs' table
type Job struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	PostedBy     int64      `json:"postedBy" db:"posted_by" example:"3"`
	Title        string     `json:"title" db:"title" example:"Backend Engineer Intern"`
	Company      string     `json:"company" db:"company" example:"Acme Corp"`
	Location     *string    `json:"location,omitempty" db:"location"`
	Type         JobType    `json:"type" db:"type" example:"Internship"`
	Description  string     `json:"description" db:"description"`
	Requirements []string   `json:"requirements,omitempty" db:"requirements"`
	Salary       *string    `json:"salary,omitempty" db:"salary"`
	Deadline     *time.Time `json:"deadline,omitempty" db:"deadline"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	PosterName string `json:"posterName,omitempty"`
}
