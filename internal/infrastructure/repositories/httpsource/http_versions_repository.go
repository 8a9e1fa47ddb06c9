package httpsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docversions/internal/domain/entities"
	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

const repositoryName = "http"

// HTTPVersionsRepository implements repositories.VersionsRepository over HTTP(S).
type HTTPVersionsRepository struct {
	client *http.Client
}

// Option configures an HTTPVersionsRepository.
type Option func(*HTTPVersionsRepository)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *HTTPVersionsRepository) {
		r.client = client
	}
}

// NewHTTPVersionsRepository creates a repository whose requests give up after timeout.
// Zero or negative values fall back to entities.DefaultTimeout.
func NewHTTPVersionsRepository(timeout time.Duration, opts ...Option) repositories.VersionsRepository {
	if timeout <= 0 {
		timeout = entities.DefaultTimeout
	}
	r := &HTTPVersionsRepository{
		client: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *HTTPVersionsRepository) Name() string { return repositoryName }

// Fetch issues a GET for location and returns the body as text.
// Transport failures become *entities.NetworkError, any status outside
// 2xx becomes *entities.HTTPStatusError.
func (r *HTTPVersionsRepository) Fetch(ctx context.Context, location string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain, application/javascript, */*")

	logger.Debugf("[http] GET %s", location)
	resp, err := r.client.Do(req)
	if err != nil {
		return "", &entities.NetworkError{URL: location, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &entities.HTTPStatusError{
			URL:        location,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &entities.NetworkError{URL: location, Err: err}
	}
	logger.Debugf("[http] %s: %d bytes", location, len(body))

	return string(body), nil
}
