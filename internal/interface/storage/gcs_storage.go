package storage

import (
	"context"
	"fmt"
	"io"

	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

const publicBaseURL = "https://storage.googleapis.com"

// GCSStorage uploads media to a Cloud Storage bucket
type GCSStorage struct {
	service *gcs.Service
	bucket  string
	logger  logger.Logger
}

// NewGCSStorage creates a storage client authorised by tokenSource
func NewGCSStorage(ctx context.Context, tokenSource oauth2.TokenSource, bucket string, logger logger.Logger) (repository.ObjectStorage, error) {
	service, err := gcs.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}

	return NewGCSStorageWithService(service, bucket, logger), nil
}

// NewGCSStorageWithService wraps an existing storage client
func NewGCSStorageWithService(service *gcs.Service, bucket string, logger logger.Logger) *GCSStorage {
	return &GCSStorage{service: service, bucket: bucket, logger: logger}
}

// Upload writes r to path and returns the object's public URL
func (s *GCSStorage) Upload(ctx context.Context, path, contentType string, r io.Reader) (string, error) {
	object := &gcs.Object{Name: path, ContentType: contentType}

	stored, err := s.service.Objects.Insert(s.bucket, object).Media(r).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}

	s.logger.Info("Object uploaded", "bucket", s.bucket, "path", stored.Name, "size", stored.Size)

	return PublicURL(s.bucket, path), nil
}

// PublicURL is the browser-facing address of an object
func PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/%s/%s", publicBaseURL, bucket, path)
}
