package services

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfileCompletion(ctx context.Context, userID int64, score int) error {
	args := m.Called(ctx, userID, score)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFileStorage is a mock implementation of filestorage.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	args := m.Called(fileHeader, subPath)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteFile(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}

func (m *MockFileStorage) IsManaged(filePath string) bool {
	args := m.Called(filePath)
	return args.Bool(0)
}

func newTestProfileService(repo *MockUserRepository, storage *MockFileStorage) *ProfileService {
	return NewProfileService(repo, storage, zerolog.Nop())
}

func newStoredStudent() *models.User {
	return &models.User{
		ID:    7,
		Name:  "Rahul Verma",
		Email: "rahul@campus.edu",
		Role:  models.RoleStudent,
	}
}

func decodeUpdate(t *testing.T, body string) *dto.UpdateProfileRequest {
	t.Helper()
	var req dto.UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestGetProfile_RecomputesStaleScore(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	user := newStoredStudent()
	user.ProfileCompletion = 0 // stale: name+email are filled, should be 10

	repo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)
	repo.On("UpdateProfileCompletion", mock.Anything, int64(7), 10).Return(nil)

	got, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 10, got.ProfileCompletion)
	repo.AssertExpectations(t)
}

func TestGetProfile_FreshScoreNotRewritten(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	user := newStoredStudent()
	user.ProfileCompletion = 10

	repo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)

	got, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 10, got.ProfileCompletion)
	repo.AssertNotCalled(t, "UpdateProfileCompletion", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_AppliesFieldsAndRecomputes(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	user := newStoredStudent()
	repo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	req := decodeUpdate(t, `{"phone":"12345","year":3,"skills":"Go, Postgres"}`)

	got, err := svc.UpdateProfile(context.Background(), 7, req, nil)
	require.NoError(t, err)

	require.NotNil(t, got.Phone)
	assert.Equal(t, "12345", *got.Phone)
	require.NotNil(t, got.Year)
	assert.Equal(t, 3, *got.Year)
	assert.Equal(t, []string{"Go", "Postgres"}, got.Skills)
	// name, email, phone, year, skills: 5 of 20
	assert.Equal(t, 25, got.ProfileCompletion)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_SequentialDisjointUpdatesMerge(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	user := newStoredStudent()
	repo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.UpdateProfile(context.Background(), 7, decodeUpdate(t, `{"phone":"111"}`), nil)
	require.NoError(t, err)

	got, err := svc.UpdateProfile(context.Background(), 7, decodeUpdate(t, `{"bio":"hello"}`), nil)
	require.NoError(t, err)

	// The first update's field survives the second
	require.NotNil(t, got.Phone)
	assert.Equal(t, "111", *got.Phone)
	require.NotNil(t, got.Bio)
	assert.Equal(t, "hello", *got.Bio)
}

func TestUpdateProfile_EmptyStringClearsField(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	phone := "12345"
	year := 3
	user := newStoredStudent()
	user.Phone = &phone
	user.Year = &year

	repo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.UpdateProfile(context.Background(), 7, decodeUpdate(t, `{"phone":"","year":""}`), nil)
	require.NoError(t, err)
	assert.Nil(t, got.Phone)
	assert.Nil(t, got.Year)
}

func TestUpdateProfile_RoleForeignFieldsStoredButUncounted(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	user := newStoredStudent()
	repo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	// The allowed field set does not depend on role: faculty fields in a
	// student's update are stored, they just sit outside the student checklist.
	got, err := svc.UpdateProfile(context.Background(), 7,
		decodeUpdate(t, `{"designation":"Professor","employeeId":"FAC-1","phone":"999"}`), nil)
	require.NoError(t, err)

	require.NotNil(t, got.Designation)
	assert.Equal(t, "Professor", *got.Designation)
	require.NotNil(t, got.EmployeeID)
	assert.Equal(t, "FAC-1", *got.EmployeeID)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "999", *got.Phone)

	// name, email, phone count; designation and employeeId do not: 3 of 20
	assert.Equal(t, 15, got.ProfileCompletion)
}

func TestUpdateProfile_UserNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrUserNotFound)

	_, err := svc.UpdateProfile(context.Background(), 99, &dto.UpdateProfileRequest{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestUpdateProfile_UploadReplacesManagedFile(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	old := "/uploads/profiles/old.png"
	user := newStoredStudent()
	user.ProfileImage = &old

	repo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	header := &multipart.FileHeader{Filename: "new.png"}
	storage.On("SaveFile", header, "profiles").Return("/uploads/profiles/new.png", nil)
	storage.On("IsManaged", old).Return(true)
	storage.On("DeleteFile", old).Return(nil)

	got, err := svc.UpdateProfile(context.Background(), 7, &dto.UpdateProfileRequest{},
		&dto.ProfileUpload{ProfileImage: header})
	require.NoError(t, err)

	require.NotNil(t, got.ProfileImage)
	assert.Equal(t, "/uploads/profiles/new.png", *got.ProfileImage)
	storage.AssertExpectations(t)
}

func TestUpdateProfile_RejectedUploadIsValidationError(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	repo.On("GetByID", mock.Anything, int64(7)).Return(newStoredStudent(), nil)

	header := &multipart.FileHeader{Filename: "resume.exe"}
	storage.On("SaveFile", header, "profiles").
		Return("", apperrors.NewValidationError("file", `file type ".exe" is not allowed`))

	_, err := svc.UpdateProfile(context.Background(), 7, &dto.UpdateProfileRequest{},
		&dto.ProfileUpload{Resume: header})

	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "resume", custom.Field)
	repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestGetStudents_ReturnsSummaries(t *testing.T) {
	repo := new(MockUserRepository)
	storage := new(MockFileStorage)
	svc := newTestProfileService(repo, storage)

	dept := "CS"
	year := 2
	repo.On("GetByRole", mock.Anything, models.RoleStudent).Return([]*models.User{
		{ID: 1, Name: "A", Email: "a@x.y", Department: &dept, Year: &year, ProfileCompletion: 40},
		{ID: 2, Name: "B", Email: "b@x.y", ProfileCompletion: 10},
	}, nil)

	got, err := svc.GetStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, 40, got[0].ProfileCompletion)
	assert.Nil(t, got[1].Department)
}
