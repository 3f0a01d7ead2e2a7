package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

func newTestApplicationService(apps *MockApplicationRepository) *ApplicationService {
	return NewApplicationService(apps, zerolog.Nop())
}

func TestUpdateStatus_RejectsUnknownState(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := newTestApplicationService(apps)

	_, err := svc.UpdateStatus(context.Background(), 1, "Shortlisted")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_ReturnsUpdatedApplication(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := newTestApplicationService(apps)

	apps.On("UpdateStatus", mock.Anything, int64(1), models.ApplicationAccepted).Return(nil)
	apps.On("GetByID", mock.Anything, int64(1)).Return(&models.Application{
		ID: 1, Status: models.ApplicationAccepted,
	}, nil)

	app, err := svc.UpdateStatus(context.Background(), 1, models.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, app.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := newTestApplicationService(apps)

	apps.On("UpdateStatus", mock.Anything, int64(99), models.ApplicationReviewed).
		Return(apperrors.ErrApplicationNotFound)

	_, err := svc.UpdateStatus(context.Background(), 99, models.ApplicationReviewed)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
