package services

import "context"

// BlobStore persists rendered report artifacts and returns a publicly
// fetchable URL for each object.
type BlobStore interface {
	Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// ImageFetcher retrieves an image (the shop logo) by URL. Implementations
// are best-effort with a short timeout and a size cap; callers must treat
// failure as non-fatal.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
