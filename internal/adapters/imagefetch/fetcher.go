// Package imagefetch retrieves shop logos over HTTP for report rendering.
package imagefetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
)

// Fetcher downloads images with a hard timeout and a response size cap.
// Callers treat any error as a missing logo, not a report failure.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewFetcher creates a fetcher. Zero values fall back to a 5s timeout and a
// 5MiB cap.
func NewFetcher(timeout time.Duration, maxBytes int64) *Fetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

var _ portssvc.ImageFetcher = (*Fetcher)(nil)

// Fetch downloads the image at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building logo request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching logo: unexpected status %d", resp.StatusCode)
	}

	// Read one byte past the cap to tell "exactly at the limit" from "over".
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading logo body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("logo exceeds %d byte limit", f.maxBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("logo response was empty")
	}
	return data, nil
}
