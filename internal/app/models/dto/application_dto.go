package dto

import "github.com/campushub/portal/internal/app/models"

// UpdateApplicationStatusRequest represents an admin's status change
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}
