package filestorage

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/pkg/apperrors"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"pdf within limit", "resume.pdf", 1 << 20, false},
		{"uppercase extension", "photo.PNG", 1024, false},
		{"docx", "notes.docx", 2048, false},
		{"video", "lecture.mp4", MaxUploadSize, false},
		{"oversized", "big.pdf", MaxUploadSize + 1, true},
		{"executable", "malware.exe", 1024, true},
		{"no extension", "README", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}
			err := ValidateUpload(header)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Rejections carry the field name so the response identifies what was wrong,
// not just that something was.
func TestValidateUpload_RejectionIsFieldScoped(t *testing.T) {
	header := &multipart.FileHeader{Filename: "script.sh", Size: 128}

	err := ValidateUpload(header)

	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "file", custom.Field)
	assert.Contains(t, custom.Message, ".sh")
}

func TestLocalStorage_IsManaged(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.True(t, ls.IsManaged("/uploads/profiles/abc.png"))
	assert.False(t, ls.IsManaged("https://example.com/file.pdf"))
	assert.False(t, ls.IsManaged(""))
	assert.False(t, ls.IsManaged("/uploadsx/abc.png"))
}

func TestLocalStorage_DeleteFile_Unmanaged(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.NoError(t, ls.DeleteFile("https://example.com/external.pdf"))
	assert.NoError(t, ls.DeleteFile(""))
}

func TestLocalStorage_DeleteFile_Missing(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.NoError(t, ls.DeleteFile("/uploads/profiles/never-saved.png"))
}
