package storage

import (
	"context"
	"errors"
	"time"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

var _ catalogapp.ImageStorage = (*StubImageStorage)(nil)

// StubImageStorage is a placeholder ImageStorage for development and
// tests. URLs it returns are not usable for real uploads.
type StubImageStorage struct {
	BaseURL string
}

// NewStubImageStorage creates a new StubImageStorage
func NewStubImageStorage() *StubImageStorage {
	return &StubImageStorage{BaseURL: "https://storage.example.com"}
}

// GenerateUploadURL generates a stub presigned URL for uploading an image
func (s *StubImageStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	if expiresIn <= 0 {
		expiresIn = 15 * time.Minute
	}

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// PublicURL returns the URL the uploaded image would be served from
func (s *StubImageStorage) PublicURL(storageKey string) string {
	return s.BaseURL + "/" + storageKey
}
