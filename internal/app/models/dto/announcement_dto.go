package dto

import "github.com/campushub/portal/internal/app/models"

// CreateAnnouncementRequest represents a request to post an announcement
type CreateAnnouncementRequest struct {
	Title     string                  `json:"title" binding:"required"`
	Content   string                  `json:"content" binding:"required"`
	Type      models.AnnouncementType `json:"type"`
	EventDate *OptionalDate           `json:"eventDate"`
	IsUrgent  bool                    `json:"isUrgent"`
}
