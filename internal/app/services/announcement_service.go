package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// AnnouncementRepository is the persistence surface the announcement service needs.
type AnnouncementRepository interface {
	Create(ctx context.Context, ann *models.Announcement) error
	GetAll(ctx context.Context) ([]*models.Announcement, error)
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// AnnouncementService handles campus announcements
type AnnouncementService struct {
	announcementRepo AnnouncementRepository
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		logger:           logger,
	}
}

// CreateAnnouncement posts a new announcement on behalf of the given user
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, posterID int64, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	annType := req.Type
	if annType == "" {
		annType = models.AnnouncementGeneral
	}
	if annType != models.AnnouncementGeneral && annType != models.AnnouncementEvent {
		return nil, apperrors.NewValidationError("type", "type must be Announcement or Event")
	}

	ann := &models.Announcement{
		PostedBy: posterID,
		Title:    req.Title,
		Content:  req.Content,
		Type:     annType,
		IsUrgent: req.IsUrgent,
	}
	if req.EventDate != nil {
		ann.EventDate = req.EventDate.Value
	}

	if err := s.announcementRepo.Create(ctx, ann); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("announcementID", ann.ID).Int64("postedBy", posterID).Msg("Announcement posted")
	return ann, nil
}

// GetAnnouncements returns all announcements, newest first
func (s *AnnouncementService) GetAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.GetAll(ctx)
}

// DeleteAnnouncement removes an announcement. Only the poster or an admin
// may delete.
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id, userID int64, role models.RoleType) error {
	ann, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ann.PostedBy != userID && role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	return s.announcementRepo.Delete(ctx, id)
}
