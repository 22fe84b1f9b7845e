package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"docshelf/internal/domain"
	"docshelf/internal/ports"
)

// maxSnapshotBytes bounds how much of a remote snapshot is read
const maxSnapshotBytes = 64 << 20

// HTTPSource fetches a snapshot published next to the document collection
type HTTPSource struct {
	url    string
	client *http.Client
}

var _ ports.SnapshotSource = (*HTTPSource)(nil)

// NewHTTPSource creates a source fetching url. A nil client uses http.DefaultClient.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

// Location returns the URL
func (s *HTTPSource) Location() string {
	return s.url
}

// Load fetches and decodes the snapshot
func (s *HTTPSource) Load(ctx context.Context) (domain.Tree, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return domain.Tree{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Tree{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Tree{}, fmt.Errorf("fetch snapshot: unexpected status %s", resp.Status)
	}

	return Decode(io.LimitReader(resp.Body, maxSnapshotBytes), FormatFor(s.url))
}
