package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/auth"
)

type defaultAccount struct {
	name       string
	email      string
	password   string
	role       models.RoleType
	department string
}

var defaultAccounts = []defaultAccount{
	{"Portal Admin", "admin@campus.edu", "admin123", models.RoleAdmin, "Administration"},
	{"Dr. Meera Sharma", "faculty@campus.edu", "faculty123", models.RoleFaculty, "Computer Science"},
	{"Rahul Verma", "student@campus.edu", "student123", models.RoleStudent, "Computer Science"},
}

// CreateDefaultData creates the default admin, faculty, and student accounts
// if they don't exist yet. Errors are collected so one failing account does
// not block the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default accounts...")
	var finalErr error

	for _, acc := range defaultAccounts {
		hashed, err := auth.HashPassword(acc.password)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		dept := acc.department
		user := &models.User{
			Name:       acc.name,
			Email:      acc.email,
			Password:   hashed,
			Role:       acc.role,
			Department: &dept,
		}
		user.ProfileCompletion = user.CalculateProfileCompletion()

		err = userRepo.Create(ctx, user)
		switch {
		case err == nil:
			lgr.Info().Str("email", acc.email).Str("role", string(acc.role)).Msg("Default account created")
		case errors.Is(err, apperrors.ErrEmailAlreadyExists):
			// Already seeded
		default:
			lgr.Error().Err(err).Str("email", acc.email).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
