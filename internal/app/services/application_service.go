package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// ApplicationService handles application review
type ApplicationService struct {
	applicationRepo ApplicationRepository
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applicationRepo ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// GetApplications returns all applications with student and job details
func (s *ApplicationService) GetApplications(ctx context.Context) ([]*models.Application, error) {
	return s.applicationRepo.GetAll(ctx)
}

// GetMyApplications returns the student's own applications with job details
func (s *ApplicationService) GetMyApplications(ctx context.Context, studentID int64) ([]*models.Application, error) {
	return s.applicationRepo.GetByStudent(ctx, studentID)
}

// UpdateStatus moves an application to a new review state
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "status must be one of Pending, Reviewed, Accepted, Rejected")
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("applicationID", id).Str("status", string(status)).Msg("Application status updated")
	return s.applicationRepo.GetByID(ctx, id)
}

// DeleteApplication removes an application
func (s *ApplicationService) DeleteApplication(ctx context.Context, id int64) error {
	return s.applicationRepo.Delete(ctx, id)
}
