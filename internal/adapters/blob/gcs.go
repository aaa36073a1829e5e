// Package blob persists rendered report artifacts in Google Cloud Storage.
package blob

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
)

// GCSStore uploads objects to a single bucket and returns their public
// download URLs.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore creates the store. An explicit credentials file takes
// precedence; otherwise Application Default Credentials are used (Cloud Run
// service account or GOOGLE_APPLICATION_CREDENTIALS).
func NewGCSStore(ctx context.Context, bucket, credentialsFile string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket name is required")
	}

	var (
		client *storage.Client
		err    error
	)
	if credentialsFile != "" {
		credJSON, readErr := os.ReadFile(credentialsFile)
		if readErr != nil {
			return nil, fmt.Errorf("reading gcs credentials: %w", readErr)
		}
		client, err = storage.NewClient(ctx, option.WithCredentialsJSON(credJSON))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("creating gcs client: %w", err)
	}

	return &GCSStore{client: client, bucket: bucket}, nil
}

var _ portssvc.BlobStore = (*GCSStore)(nil)

// Put uploads the bytes under objectName and returns the public URL.
func (s *GCSStore) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("writing object %s: %w", objectName, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("finalizing object %s: %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
