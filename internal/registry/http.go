package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vango-dev/termkit/internal/errors"
)

// DefaultHTTPTimeout bounds each registry request.
const DefaultHTTPTimeout = 30 * time.Second

// maxFileSize caps a single downloaded file.
const maxFileSize = 4 << 20

// HTTPSource reads a registry served over HTTP, such as one hosted by
// `termkit serve`.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource returns a Source for the registry rooted at baseURL. A
// trailing "/manifest.json" is accepted and stripped.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	base := strings.TrimSuffix(baseURL, "/manifest.json")
	return &HTTPSource{
		base:   strings.TrimSuffix(base, "/"),
		client: client,
	}
}

// ReadManifest implements Source.
func (s *HTTPSource) ReadManifest(ctx context.Context) ([]byte, error) {
	data, err := s.get(ctx, s.base+"/manifest.json")
	if err != nil {
		return nil, errors.New("E111").
			WithDetail("Could not connect to registry at " + s.base).
			WithSuggestion("Check your network connection and the registry URL in termkit.json").
			Wrap(err)
	}
	return data, nil
}

// ReadFile implements Source.
func (s *HTTPSource) ReadFile(ctx context.Context, component, file string) ([]byte, error) {
	u := s.base + "/components/" + url.PathEscape(component) + "/" + escapePath(file)
	return s.get(ctx, u)
}

func (s *HTTPSource) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("GET %s: response exceeds %d bytes", u, maxFileSize)
	}
	return data, nil
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
