package dto

import "github.com/campushub/portal/internal/app/models"

// CreateResourceRequest represents a request to share a resource.
// FileURL is required unless the request carries an uploaded file.
type CreateResourceRequest struct {
	Title       string              `json:"title" form:"title" binding:"required"`
	Category    string              `json:"category" form:"category" binding:"required"`
	Description *string             `json:"description" form:"description"`
	FileURL     *string             `json:"fileUrl" form:"fileUrl"`
	Type        models.ResourceKind `json:"type" form:"type"`
}
