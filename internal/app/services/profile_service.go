package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/filestorage"
)

// ProfileService handles profile reads and partial updates
type ProfileService struct {
	userRepo UserRepository
	storage  filestorage.FileStorage
	logger   zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo UserRepository, storage filestorage.FileStorage, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// GetProfile returns the user's profile. A stale stored completion score is
// recomputed and persisted before the profile is returned.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if score := user.CalculateProfileCompletion(); score != user.ProfileCompletion {
		user.ProfileCompletion = score
		if err := s.userRepo.UpdateProfileCompletion(ctx, userID, score); err != nil {
			s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to persist recomputed profile completion")
		}
	}

	return user, nil
}

// UpdateProfile applies a partial profile update. Only fields present in the
// request change; the rest keep their stored values. Uploaded files replace
// the corresponding references, the completion score is recomputed from the
// merged state, and the whole profile is written in a single statement.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest, upload *dto.ProfileUpload) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyUpdate(user, req)

	if upload != nil {
		if err := s.applyUploads(user, upload); err != nil {
			return nil, err
		}
	}

	user.ProfileCompletion = user.CalculateProfileCompletion()

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userID", userID).
		Int("profileCompletion", user.ProfileCompletion).
		Msg("Profile updated")

	return user, nil
}

// GetStudents returns a trimmed listing of all student accounts
func (s *ProfileService) GetStudents(ctx context.Context) ([]*dto.StudentSummary, error) {
	students, err := s.userRepo.GetByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.StudentSummary, 0, len(students))
	for _, u := range students {
		summaries = append(summaries, &dto.StudentSummary{
			ID:                u.ID,
			Name:              u.Name,
			Email:             u.Email,
			Department:        u.Department,
			Year:              u.Year,
			ProfileCompletion: u.ProfileCompletion,
		})
	}
	return summaries, nil
}

// GetUserByID returns another user's profile
func (s *ProfileService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *ProfileService) applyUploads(user *models.User, upload *dto.ProfileUpload) error {
	if upload.ProfileImage != nil {
		stored, err := s.storage.SaveFile(upload.ProfileImage, filestorage.SubPathProfiles)
		if err != nil {
			return fieldError(err, "profileImage")
		}
		s.removeReplaced(user.ProfileImage)
		user.ProfileImage = &stored
	}
	if upload.Resume != nil {
		stored, err := s.storage.SaveFile(upload.Resume, filestorage.SubPathProfiles)
		if err != nil {
			return fieldError(err, "resume")
		}
		s.removeReplaced(user.Resume)
		user.Resume = &stored
	}
	return nil
}

// fieldError renames a storage validation error to the request field that
// carried the rejected file. Other errors pass through unchanged.
func fieldError(err error, field string) error {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && errors.Is(err, apperrors.ErrValidationFailed) {
		return apperrors.NewValidationError(field, custom.Message)
	}
	return err
}

func (s *ProfileService) removeReplaced(old *string) {
	if old == nil || !s.storage.IsManaged(*old) {
		return
	}
	if err := s.storage.DeleteFile(*old); err != nil {
		s.logger.Warn().Err(err).Str("file", *old).Msg("Failed to remove replaced file")
	}
}

// applyUpdate merges the present request fields into the user. The allowed
// set is the same for every role; fields outside the user's role checklist
// are stored but do not count toward the completion score.
func applyUpdate(user *models.User, req *dto.UpdateProfileRequest) {
	setString := func(dst **string, src *string) {
		if src != nil {
			if *src == "" {
				*dst = nil
			} else {
				v := *src
				*dst = &v
			}
		}
	}

	setString(&user.Phone, req.Phone)
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth.Value
	}
	setString(&user.Department, req.Department)
	setString(&user.ProfileImage, req.ProfileImage)

	if req.Year != nil {
		user.Year = req.Year.Value
	}
	if req.Semester != nil {
		user.Semester = req.Semester.Value
	}
	setString(&user.EnrollmentNumber, req.EnrollmentNumber)
	if req.CGPA != nil {
		user.CGPA = req.CGPA.Value
	}
	if req.Skills != nil {
		user.Skills = []string(*req.Skills)
	}
	setString(&user.Resume, req.Resume)
	setString(&user.Bio, req.Bio)
	setString(&user.PortfolioURL, req.PortfolioURL)
	setString(&user.LinkedIn, req.LinkedIn)
	setString(&user.GitHub, req.GitHub)
	setString(&user.Address, req.Address)
	setString(&user.City, req.City)
	setString(&user.State, req.State)
	setString(&user.Pincode, req.Pincode)

	setString(&user.Designation, req.Designation)
	setString(&user.Qualification, req.Qualification)
	if req.Experience != nil {
		user.Experience = req.Experience.Value
	}
	setString(&user.EmployeeID, req.EmployeeID)
	if req.ResearchInterests != nil {
		user.ResearchInterests = []string(*req.ResearchInterests)
	}
	if req.Publications != nil {
		user.Publications = []string(*req.Publications)
	}
	setString(&user.Specialization, req.Specialization)
	setString(&user.OfficeRoom, req.OfficeRoom)
	setString(&user.OfficeHours, req.OfficeHours)
}
