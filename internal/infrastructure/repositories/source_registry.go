package repositories

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	domainRepos "github.com/rios0rios0/docversions/internal/domain/repositories"
)

// SourceFactory is a constructor function that creates a VersionsRepository bounded by timeout.
type SourceFactory func(timeout time.Duration) domainRepos.VersionsRepository

// SourceRegistry manages the versions sources, keyed by URL scheme.
type SourceRegistry struct {
	sources map[string]SourceFactory
}

var _ domainRepos.SourceResolver = (*SourceRegistry)(nil)

// NewSourceRegistry creates an empty source registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		sources: make(map[string]SourceFactory),
	}
}

// Register adds a source factory under the given URL scheme (e.g. "https").
// The empty scheme is used for bare filesystem paths.
func (r *SourceRegistry) Register(scheme string, factory SourceFactory) {
	r.sources[strings.ToLower(scheme)] = factory
}

// Get returns the source able to fetch location.
func (r *SourceRegistry) Get(location string, timeout time.Duration) (domainRepos.VersionsRepository, error) {
	scheme := schemeOf(location)
	factory, ok := r.sources[scheme]
	if !ok {
		return nil, fmt.Errorf("unsupported versions source scheme %q in %q", scheme, location)
	}
	return factory(timeout), nil
}

// Schemes returns the list of registered schemes.
func (r *SourceRegistry) Schemes() []string {
	schemes := make([]string, 0, len(r.sources))
	for scheme := range r.sources {
		schemes = append(schemes, scheme)
	}
	return schemes
}

// schemeOf returns the lower-cased URL scheme, or "" for plain paths.
// Single-letter schemes are Windows drive letters.
func schemeOf(location string) string {
	parsed, err := url.Parse(location)
	if err != nil || len(parsed.Scheme) <= 1 {
		return ""
	}
	return strings.ToLower(parsed.Scheme)
}
