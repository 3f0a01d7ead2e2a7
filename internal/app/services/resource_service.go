package services

import (
	"context"
	"mime/multipart"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/filestorage"
)

// ResourceRepository is the persistence surface the resource service needs.
type ResourceRepository interface {
	Create(ctx context.Context, res *models.Resource) error
	GetAll(ctx context.Context) ([]*models.Resource, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceService handles shared study resources
type ResourceService struct {
	resourceRepo ResourceRepository
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceRepo ResourceRepository, storage filestorage.FileStorage, logger zerolog.Logger) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		storage:      storage,
		logger:       logger,
	}
}

// CreateResource shares a resource. Either a file upload or an external
// fileUrl must be present; an uploaded file wins over a supplied URL.
func (s *ResourceService) CreateResource(ctx context.Context, uploaderID int64, req *dto.CreateResourceRequest, file *multipart.FileHeader) (*models.Resource, error) {
	var fileURL string
	switch {
	case file != nil:
		stored, err := s.storage.SaveFile(file, filestorage.SubPathResources)
		if err != nil {
			return nil, err
		}
		fileURL = stored
	case req.FileURL != nil && *req.FileURL != "":
		fileURL = *req.FileURL
	default:
		return nil, apperrors.NewValidationError("fileUrl", "provide a file upload or a fileUrl")
	}

	kind := req.Type
	if kind == "" {
		kind = kindFromURL(fileURL, file != nil)
	}

	res := &models.Resource{
		UploadedBy:  uploaderID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		FileURL:     fileURL,
		Type:        kind,
	}
	if err := s.resourceRepo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("resourceID", res.ID).Int64("uploadedBy", uploaderID).Msg("Resource shared")
	return res, nil
}

// GetResources returns all shared resources, newest first
func (s *ResourceService) GetResources(ctx context.Context) ([]*models.Resource, error) {
	return s.resourceRepo.GetAll(ctx)
}

// DeleteResource removes a resource. Only the uploader or an admin may
// delete; a locally stored file is removed from disk as well.
func (s *ResourceService) DeleteResource(ctx context.Context, id, userID int64, role models.RoleType) error {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.UploadedBy != userID && role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.storage.IsManaged(res.FileURL) {
		if err := s.storage.DeleteFile(res.FileURL); err != nil {
			s.logger.Warn().Err(err).Str("file", res.FileURL).Msg("Failed to remove resource file")
		}
	}
	return nil
}

// kindFromURL infers the resource kind from the file extension. External
// links without a recognized extension are treated as plain links.
func kindFromURL(fileURL string, uploaded bool) models.ResourceKind {
	switch strings.ToLower(path.Ext(fileURL)) {
	case ".pdf":
		return models.ResourcePDF
	case ".mp4":
		return models.ResourceVideo
	case ".doc", ".docx":
		return models.ResourceDocument
	}
	if uploaded {
		return models.ResourceDocument
	}
	return models.ResourceLink
}
