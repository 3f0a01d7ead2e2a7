package filestorage

import "mime/multipart"

// Well-known upload subdirectories.
const (
	SubPathProfiles  = "profiles"
	SubPathResources = "resources"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile validates and stores an uploaded file under the given
	// subdirectory, returning the stored path with forward-slash separators.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file; deleting a missing file is not an error.
	DeleteFile(filePath string) error

	// IsManaged reports whether the given reference points into this storage.
	IsManaged(filePath string) bool
}
