package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/dberrors"
)

// ApplicationRepository handles job application persistence
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. A student can apply to a job only once;
// the unique constraint on (student_id, job_id) backs that rule.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (student_id, job_id, resume, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, applied_at, updated_at`,
		app.StudentID, app.JobID, app.Resume, app.Status).
		Scan(&app.ID, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_id_job_id_key") {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// ExistsForStudentAndJob checks whether the student has already applied to the job.
func (r *ApplicationRepository) ExistsForStudentAndJob(ctx context.Context, studentID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE student_id = $1 AND job_id = $2)`,
		studentID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}
	return exists, nil
}

// GetAll retrieves all applications with student and job details, newest first
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.job_id, a.resume, a.status, a.applied_at, a.updated_at,
		       u.name, u.email, u.department, u.year,
		       j.title, j.company, j.location, j.type
		FROM applications a
		JOIN users u ON u.id = a.student_id
		JOIN jobs j ON j.id = a.job_id
		ORDER BY a.applied_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app := &models.Application{Student: &models.User{}, Job: &models.Job{}}
		err := rows.Scan(&app.ID, &app.StudentID, &app.JobID, &app.Resume, &app.Status,
			&app.AppliedAt, &app.UpdatedAt,
			&app.Student.Name, &app.Student.Email, &app.Student.Department, &app.Student.Year,
			&app.Job.Title, &app.Job.Company, &app.Job.Location, &app.Job.Type)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		app.Student.ID = app.StudentID
		app.Job.ID = app.JobID
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// GetByStudent retrieves a student's applications with job details, newest first
func (r *ApplicationRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.job_id, a.resume, a.status, a.applied_at, a.updated_at,
		       j.title, j.company, j.location, j.type
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications for student: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app := &models.Application{Job: &models.Job{}}
		err := rows.Scan(&app.ID, &app.StudentID, &app.JobID, &app.Resume, &app.Status,
			&app.AppliedAt, &app.UpdatedAt,
			&app.Job.Title, &app.Job.Company, &app.Job.Location, &app.Job.Type)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		app.Job.ID = app.JobID
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	app := &models.Application{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, job_id, resume, status, applied_at, updated_at
		FROM applications WHERE id = $1`, id).
		Scan(&app.ID, &app.StudentID, &app.JobID, &app.Resume, &app.Status,
			&app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error getting application: %w", err)
	}
	return app, nil
}

// UpdateStatus changes an application's review status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// Delete removes an application
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
