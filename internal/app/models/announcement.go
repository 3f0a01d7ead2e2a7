package models

import "time"

// Announcement defines the announcement model based on the 'announcements' table
type Announcement struct {
	ID        int64            `json:"id" db:"id" example:"1"`
	PostedBy  int64            `json:"postedBy" db:"posted_by" example:"3"`
	Title     string           `json:"title" db:"title" example:"Placement Drive"`
	Content   string           `json:"content" db:"content"`
	Type      AnnouncementType `json:"type" db:"type" example:"Event"`
	EventDate *time.Time       `json:"eventDate,omitempty" db:"event_date"`
	IsUrgent  bool             `json:"isUrgent" db:"is_urgent"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	PosterName string `json:"posterName,omitempty"`
}
