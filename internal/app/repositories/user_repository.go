package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/dberrors"
)

const userColumns = `
	id, name, email, password, role, phone, date_of_birth, department,
	profile_image, profile_completion,
	year, semester, enrollment_number, cgpa, skills, resume, bio,
	portfolio_url, linkedin, github, address, city, state, pincode,
	designation, qualification, experience, employee_id, research_interests,
	publications, specialization, office_room, office_hours,
	created_at, updated_at`

// UserRepository handles user persistence against the 'users' table
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Phone, &u.DateOfBirth, &u.Department,
		&u.ProfileImage, &u.ProfileCompletion,
		&u.Year, &u.Semester, &u.EnrollmentNumber, &u.CGPA, &u.Skills, &u.Resume, &u.Bio,
		&u.PortfolioURL, &u.LinkedIn, &u.GitHub, &u.Address, &u.City, &u.State, &u.Pincode,
		&u.Designation, &u.Qualification, &u.Experience, &u.EmployeeID, &u.ResearchInterests,
		&u.Publications, &u.Specialization, &u.OfficeRoom, &u.OfficeHours,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user and fills in the generated ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password, role, department, year, skills, profile_completion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		user.Name, user.Email, user.Password, user.Role, user.Department, user.Year, user.Skills,
		user.ProfileCompletion).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// GetAll retrieves all users ordered by name
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetByRole retrieves all users with the given role ordered by name
func (r *UserRepository) GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY name`, role)
	if err != nil {
		return nil, fmt.Errorf("error listing users by role: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateProfile persists the user's profile fields and completion score as a
// single statement, so a profile update is all-or-nothing.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			phone = $2, date_of_birth = $3, department = $4, profile_image = $5,
			year = $6, semester = $7, enrollment_number = $8, cgpa = $9,
			skills = $10, resume = $11, bio = $12, portfolio_url = $13,
			linkedin = $14, github = $15, address = $16, city = $17,
			state = $18, pincode = $19,
			designation = $20, qualification = $21, experience = $22,
			employee_id = $23, research_interests = $24, publications = $25,
			specialization = $26, office_room = $27, office_hours = $28,
			profile_completion = $29, updated_at = NOW()
		WHERE id = $1`,
		user.ID,
		user.Phone, user.DateOfBirth, user.Department, user.ProfileImage,
		user.Year, user.Semester, user.EnrollmentNumber, user.CGPA,
		user.Skills, user.Resume, user.Bio, user.PortfolioURL,
		user.LinkedIn, user.GitHub, user.Address, user.City,
		user.State, user.Pincode,
		user.Designation, user.Qualification, user.Experience,
		user.EmployeeID, user.ResearchInterests, user.Publications,
		user.Specialization, user.OfficeRoom, user.OfficeHours,
		user.ProfileCompletion,
	)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateProfileCompletion persists only a recomputed completion score.
func (r *UserRepository) UpdateProfileCompletion(ctx context.Context, userID int64, score int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET profile_completion = $2 WHERE id = $1`, userID, score)
	if err != nil {
		return fmt.Errorf("error updating profile completion: %w", err)
	}
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
