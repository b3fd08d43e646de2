package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/repository"
)

// Upload folders, one per media owner
var UploadFolders = []string{"drivers", "cultural-tours", "luxury", "concierge", "charters"}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// UploadService stores admin media under per-collection folders
type UploadService struct {
	storage repository.ObjectStorage
	now     func() time.Time
}

func NewUploadService(storage repository.ObjectStorage) *UploadService {
	return &UploadService{storage: storage, now: time.Now}
}

// ObjectPath builds folder/<unix millis>_<sanitized name>
func ObjectPath(folder, filename string, now time.Time) (string, error) {
	valid := false
	for _, f := range UploadFolders {
		if f == folder {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("%w: %q", ErrInvalidFolder, folder)
	}

	name := unsafeFileChars.ReplaceAllString(path.Base(strings.ReplaceAll(filename, "\\", "/")), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}

	return fmt.Sprintf("%s/%d_%s", folder, now.UnixMilli(), name), nil
}

// Upload stores r and returns its public URL
func (s *UploadService) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("object storage not configured")
	}

	objectPath, err := ObjectPath(folder, filename, s.now())
	if err != nil {
		return "", err
	}

	url, err := s.storage.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectPath, err)
	}
	return url, nil
}
