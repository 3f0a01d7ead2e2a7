package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/dberrors"
)

// JobRepository handles job posting persistence
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job posting and fills in the generated ID.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO jobs (posted_by, title, company, location, type, description, requirements, salary, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		job.PostedBy, job.Title, job.Company, job.Location, job.Type,
		job.Description, job.Requirements, job.Salary, job.Deadline).
		Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetAll retrieves all job postings with their poster's name, newest first
func (r *JobRepository) GetAll(ctx context.Context) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT j.id, j.posted_by, j.title, j.company, j.location, j.type,
		       j.description, j.requirements, j.salary, j.deadline,
		       j.created_at, j.updated_at, u.name
		FROM jobs j
		JOIN users u ON u.id = j.posted_by
		ORDER BY j.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job := &models.Job{}
		err := rows.Scan(&job.ID, &job.PostedBy, &job.Title, &job.Company, &job.Location,
			&job.Type, &job.Description, &job.Requirements, &job.Salary, &job.Deadline,
			&job.CreatedAt, &job.UpdatedAt, &job.PosterName)
		if err != nil {
			return nil, fmt.Errorf("error scanning job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// GetByID retrieves a job posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	job := &models.Job{}
	err := r.db.QueryRow(ctx, `
		SELECT j.id, j.posted_by, j.title, j.company, j.location, j.type,
		       j.description, j.requirements, j.salary, j.deadline,
		       j.created_at, j.updated_at, u.name
		FROM jobs j
		JOIN users u ON u.id = j.posted_by
		WHERE j.id = $1`, id).
		Scan(&job.ID, &job.PostedBy, &job.Title, &job.Company, &job.Location,
			&job.Type, &job.Description, &job.Requirements, &job.Salary, &job.Deadline,
			&job.CreatedAt, &job.UpdatedAt, &job.PosterName)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error getting job: %w", err)
	}
	return job, nil
}

// Delete removes a job posting (and, via cascade, its applications)
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}
