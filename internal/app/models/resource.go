package models

import "time"

// Resource defines the shared resource model based on the 'resources' table
type Resource struct {
	ID          int64        `json:"id" db:"id" example:"1"`
	UploadedBy  int64        `json:"uploadedBy" db:"uploaded_by" example:"4"`
	Title       string       `json:"title" db:"title" example:"Operating Systems Notes"`
	Category    string       `json:"category" db:"category" example:"Computer Science"`
	Description *string      `json:"description,omitempty" db:"description"`
	FileURL     string       `json:"fileUrl" db:"file_url"`
	Type        ResourceKind `json:"type" db:"type" example:"PDF"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	UploaderName string `json:"uploaderName,omitempty"`
}
