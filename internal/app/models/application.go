package models

import "time"

// Application defines the job application model based on the 'applications' table
type Application struct {
	ID        int64             `json:"id" db:"id" example:"1"`
	StudentID int64             `json:"studentId" db:"student_id" example:"7"`
	JobID     int64             `json:"jobId" db:"job_id" example:"2"`
	Resume    string            `json:"resume" db:"resume"`
	Status    ApplicationStatus `json:"status" db:"status" example:"Pending"`
	AppliedAt time.Time         `json:"appliedAt" db:"applied_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *User `json:"student,omitempty"`
	Job     *Job  `json:"job,omitempty"`
}
