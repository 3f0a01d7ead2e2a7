package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/dberrors"
)

// ResourceRepository handles shared resource persistence
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a new resource and fills in the generated ID.
func (r *ResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO resources (uploaded_by, title, category, description, file_url, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		res.UploadedBy, res.Title, res.Category, res.Description, res.FileURL, res.Type).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}
	return nil
}

// GetAll retrieves all resources with their uploader's name, newest first
func (r *ResourceRepository) GetAll(ctx context.Context) ([]*models.Resource, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.uploaded_by, r.title, r.category, r.description,
		       r.file_url, r.type, r.created_at, r.updated_at, u.name
		FROM resources r
		JOIN users u ON u.id = r.uploaded_by
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		res := &models.Resource{}
		err := rows.Scan(&res.ID, &res.UploadedBy, &res.Title, &res.Category, &res.Description,
			&res.FileURL, &res.Type, &res.CreatedAt, &res.UpdatedAt, &res.UploaderName)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	res := &models.Resource{}
	err := r.db.QueryRow(ctx, `
		SELECT id, uploaded_by, title, category, description, file_url, type, created_at, updated_at
		FROM resources WHERE id = $1`, id).
		Scan(&res.ID, &res.UploadedBy, &res.Title, &res.Category, &res.Description,
			&res.FileURL, &res.Type, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrSharedResourceNotFound
		}
		return nil, fmt.Errorf("error getting resource: %w", err)
	}
	return res, nil
}

// Delete removes a resource
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSharedResourceNotFound
	}
	return nil
}
