package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/logger"
)

// MaxUploadSize is the upload size limit in bytes.
const MaxUploadSize = 10 << 20 // 10MB

// allowedExtensions limits uploads to images, PDFs, docs, and videos.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".mp4":  true,
}

// LocalStorage stores uploaded files on the local filesystem under basePath.
// Stored references use forward slashes and are prefixed with urlPrefix so
// they can be served directly by the static file route.
type LocalStorage struct {
	basePath  string
	urlPrefix string
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}, nil
}

// ValidateUpload checks size and extension constraints for an uploaded file.
// Violations are validation errors on the "file" field; callers that know the
// request field rename it before responding.
func ValidateUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxUploadSize {
		return apperrors.NewValidationError("file",
			fmt.Sprintf("file %s exceeds the %d byte upload limit", fileHeader.Filename, MaxUploadSize))
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return apperrors.NewValidationError("file",
			fmt.Sprintf("file type %q is not allowed", ext))
	}
	return nil
}

// SaveFile validates and stores an uploaded file, returning the stored
// reference (e.g. "/uploads/profiles/<uuid>.pdf").
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	if err := ValidateUpload(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := filepath.Join(ls.basePath, subPath)
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	// Stored references always use forward slashes regardless of OS.
	stored := ls.urlPrefix + "/" + path.Join(subPath, uniqueFilename)

	logger.Info().Str("filename", fileHeader.Filename).Str("stored", stored).Msg("File saved")
	return stored, nil
}

// IsManaged reports whether the reference points into this storage.
func (ls *LocalStorage) IsManaged(filePath string) bool {
	return ls.urlPrefix != "" && strings.HasPrefix(filePath, ls.urlPrefix+"/")
}

// DeleteFile removes a stored file given its stored reference.
// Missing files are treated as already deleted.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" || !ls.IsManaged(filePath) {
		return nil
	}

	relative := strings.TrimPrefix(filePath, ls.urlPrefix+"/")
	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(relative))

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
