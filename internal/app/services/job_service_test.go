package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// MockJobRepository is a mock implementation of JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) GetAll(ctx context.Context) ([]*models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApplicationRepository is a mock implementation of ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) ExistsForStudentAndJob(ctx context.Context, studentID, jobID int64) (bool, error) {
	args := m.Called(ctx, studentID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) GetAll(ctx context.Context) ([]*models.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestJobService(jobs *MockJobRepository, apps *MockApplicationRepository, users *MockUserRepository) *JobService {
	return NewJobService(jobs, apps, users, zerolog.Nop())
}

func TestApply_DuplicateApplication(t *testing.T) {
	jobs := new(MockJobRepository)
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := newTestJobService(jobs, apps, users)

	jobs.On("GetByID", mock.Anything, int64(2)).Return(&models.Job{ID: 2}, nil)
	apps.On("ExistsForStudentAndJob", mock.Anything, int64(7), int64(2)).Return(true, nil)

	_, err := svc.Apply(context.Background(), 7, 2, nil)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApply_ResumeDefaultsToProfile(t *testing.T) {
	jobs := new(MockJobRepository)
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := newTestJobService(jobs, apps, users)

	resume := "/uploads/profiles/resume.pdf"
	jobs.On("GetByID", mock.Anything, int64(2)).Return(&models.Job{ID: 2}, nil)
	apps.On("ExistsForStudentAndJob", mock.Anything, int64(7), int64(2)).Return(false, nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(&models.User{
		ID: 7, Role: models.RoleStudent, Resume: &resume,
	}, nil)
	apps.On("Create", mock.Anything, mock.Anything).Return(nil)

	app, err := svc.Apply(context.Background(), 7, 2, &dto.ApplyJobRequest{})
	require.NoError(t, err)
	assert.Equal(t, resume, app.Resume)
	assert.Equal(t, models.ApplicationPending, app.Status)
}

func TestApply_NoResumeAnywhere(t *testing.T) {
	jobs := new(MockJobRepository)
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := newTestJobService(jobs, apps, users)

	jobs.On("GetByID", mock.Anything, int64(2)).Return(&models.Job{ID: 2}, nil)
	apps.On("ExistsForStudentAndJob", mock.Anything, int64(7), int64(2)).Return(false, nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(&models.User{ID: 7, Role: models.RoleStudent}, nil)

	_, err := svc.Apply(context.Background(), 7, 2, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApply_JobNotFound(t *testing.T) {
	jobs := new(MockJobRepository)
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := newTestJobService(jobs, apps, users)

	jobs.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrJobNotFound)

	_, err := svc.Apply(context.Background(), 7, 99, nil)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestCreateJob_DefaultsType(t *testing.T) {
	jobs := new(MockJobRepository)
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := newTestJobService(jobs, apps, users)

	jobs.On("Create", mock.Anything, mock.Anything).Return(nil)

	job, err := svc.CreateJob(context.Background(), 3, &dto.CreateJobRequest{
		Title:       "Backend Intern",
		Company:     "Acme",
		Description: "Go services",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobTypeFullTime, job.Type)
	assert.Equal(t, int64(3), job.PostedBy)
}

func TestCreateJob_RejectsUnknownType(t *testing.T) {
	jobs := new(MockJobRepository)
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := newTestJobService(jobs, apps, users)

	_, err := svc.CreateJob(context.Background(), 3, &dto.CreateJobRequest{
		Title:       "x",
		Company:     "y",
		Description: "z",
		Type:        "Gig",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteJob_OnlyPosterOrAdmin(t *testing.T) {
	jobs := new(MockJobRepository)
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := newTestJobService(jobs, apps, users)

	jobs.On("GetByID", mock.Anything, int64(2)).Return(&models.Job{ID: 2, PostedBy: 3}, nil)

	err := svc.DeleteJob(context.Background(), 2, 7, models.RoleFaculty)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	jobs.On("Delete", mock.Anything, int64(2)).Return(nil)
	require.NoError(t, svc.DeleteJob(context.Background(), 2, 99, models.RoleAdmin))
	require.NoError(t, svc.DeleteJob(context.Background(), 2, 3, models.RoleFaculty))
}
