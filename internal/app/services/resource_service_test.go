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

// MockResourceRepository is a mock implementation of ResourceRepository.
type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockResourceRepository) GetAll(ctx context.Context) ([]*models.Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Resource), args.Error(1)
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestResourceService(repo *MockResourceRepository, storage *MockFileStorage) *ResourceService {
	return NewResourceService(repo, storage, zerolog.Nop())
}

func TestKindFromURL(t *testing.T) {
	tests := []struct {
		url      string
		uploaded bool
		want     models.ResourceKind
	}{
		{"/uploads/resources/notes.pdf", true, models.ResourcePDF},
		{"/uploads/resources/lecture.MP4", true, models.ResourceVideo},
		{"/uploads/resources/syllabus.docx", true, models.ResourceDocument},
		{"/uploads/resources/archive.bin", true, models.ResourceDocument},
		{"https://example.com/course", false, models.ResourceLink},
		{"https://example.com/paper.pdf", false, models.ResourcePDF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kindFromURL(tt.url, tt.uploaded), tt.url)
	}
}

func TestCreateResource_RequiresFileOrURL(t *testing.T) {
	repo := new(MockResourceRepository)
	storage := new(MockFileStorage)
	svc := newTestResourceService(repo, storage)

	_, err := svc.CreateResource(context.Background(), 4, &dto.CreateResourceRequest{
		Title:    "OS Notes",
		Category: "CS",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateResource_ExternalURL(t *testing.T) {
	repo := new(MockResourceRepository)
	storage := new(MockFileStorage)
	svc := newTestResourceService(repo, storage)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	link := "https://example.com/course"
	res, err := svc.CreateResource(context.Background(), 4, &dto.CreateResourceRequest{
		Title:    "Course page",
		Category: "CS",
		FileURL:  &link,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, link, res.FileURL)
	assert.Equal(t, models.ResourceLink, res.Type)
	assert.Equal(t, int64(4), res.UploadedBy)
}

func TestDeleteResource_RemovesManagedFile(t *testing.T) {
	repo := new(MockResourceRepository)
	storage := new(MockFileStorage)
	svc := newTestResourceService(repo, storage)

	stored := "/uploads/resources/notes.pdf"
	repo.On("GetByID", mock.Anything, int64(5)).Return(&models.Resource{
		ID: 5, UploadedBy: 4, FileURL: stored,
	}, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)
	storage.On("IsManaged", stored).Return(true)
	storage.On("DeleteFile", stored).Return(nil)

	require.NoError(t, svc.DeleteResource(context.Background(), 5, 4, models.RoleFaculty))
	storage.AssertExpectations(t)
}

func TestDeleteResource_NotOwner(t *testing.T) {
	repo := new(MockResourceRepository)
	storage := new(MockFileStorage)
	svc := newTestResourceService(repo, storage)

	repo.On("GetByID", mock.Anything, int64(5)).Return(&models.Resource{
		ID: 5, UploadedBy: 4, FileURL: "https://example.com/x.pdf",
	}, nil)

	err := svc.DeleteResource(context.Background(), 5, 9, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
