// util/storage_service.go

package util

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	om_errors "github.com/openmusic-api/openmusic/errors"
	logger "github.com/openmusic-api/openmusic/logging"
)

// Cover uploads must declare one of these content types.
var allowedCoverTypes = map[string]string{
	"image/apng": ".apng",
	"image/avif": ".avif",
	"image/gif":  ".gif",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// StorageService writes uploaded cover art to local disk and resolves stored
// filenames back to paths.
type StorageService struct {
	dir      string
	maxBytes int64
}

func NewStorageService(dir string, maxBytes int64) (*StorageService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &StorageService{dir: dir, maxBytes: maxBytes}, nil
}

// WriteCover validates the upload and stores it under a generated filename.
// Validation failures are reported before anything touches the disk.
func (s *StorageService) WriteCover(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxBytes {
		return "", om_errors.ErrCoverTooLarge
	}
	ext, ok := allowedCoverTypes[file.Header.Get("Content-Type")]
	if !ok {
		return "", om_errors.ErrInvalidCoverType
	}

	filename := uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create cover file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write cover file: %w", err)
	}

	logger.Debug("Cover stored", zap.String("filename", filename))
	return filename, nil
}

// CoverPath resolves a stored filename to its on-disk path. The filename is
// reduced to its base to keep lookups inside the upload directory.
func (s *StorageService) CoverPath(filename string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return "", om_errors.ErrAlbumNotFound
	}
	return path, nil
}
