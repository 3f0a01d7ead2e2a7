package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/dberrors"
)

// AnnouncementRepository handles announcement persistence
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create inserts a new announcement and fills in the generated ID.
func (r *AnnouncementRepository) Create(ctx context.Context, ann *models.Announcement) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO announcements (posted_by, title, content, type, event_date, is_urgent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		ann.PostedBy, ann.Title, ann.Content, ann.Type, ann.EventDate, ann.IsUrgent).
		Scan(&ann.ID, &ann.CreatedAt, &ann.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

// GetAll retrieves all announcements with their poster's name, newest first
func (r *AnnouncementRepository) GetAll(ctx context.Context) ([]*models.Announcement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.posted_by, a.title, a.content, a.type, a.event_date,
		       a.is_urgent, a.created_at, a.updated_at, u.name
		FROM announcements a
		JOIN users u ON u.id = a.posted_by
		ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	var anns []*models.Announcement
	for rows.Next() {
		ann := &models.Announcement{}
		err := rows.Scan(&ann.ID, &ann.PostedBy, &ann.Title, &ann.Content, &ann.Type,
			&ann.EventDate, &ann.IsUrgent, &ann.CreatedAt, &ann.UpdatedAt, &ann.PosterName)
		if err != nil {
			return nil, fmt.Errorf("error scanning announcement: %w", err)
		}
		anns = append(anns, ann)
	}
	return anns, rows.Err()
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	ann := &models.Announcement{}
	err := r.db.QueryRow(ctx, `
		SELECT id, posted_by, title, content, type, event_date, is_urgent, created_at, updated_at
		FROM announcements WHERE id = $1`, id).
		Scan(&ann.ID, &ann.PostedBy, &ann.Title, &ann.Content, &ann.Type,
			&ann.EventDate, &ann.IsUrgent, &ann.CreatedAt, &ann.UpdatedAt)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error getting announcement: %w", err)
	}
	return ann, nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
