package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxSnapshotBytes caps the size of a snapshot fetched over HTTP.
const maxSnapshotBytes = 64 << 20

type urlSnapshotSource struct {
	url        string
	httpClient *http.Client
}

// NewURLSnapshotSource fetches the snapshot document over HTTP(S).
func NewURLSnapshotSource(url string, timeout time.Duration) SnapshotSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &urlSnapshotSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *urlSnapshotSource) Name() string {
	return "url:" + s.url
}

func (s *urlSnapshotSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, s.url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %d fetching snapshot", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot body: %w", err)
	}
	return body, nil
}
