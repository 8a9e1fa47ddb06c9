//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// StubSourceResolver implements repositories.SourceResolver, always
// resolving to Repository unless GetErr is set.
type StubSourceResolver struct {
	Repository repositories.VersionsRepository
	GetErr     error

	// spy: arguments received
	Locations []string
	Timeouts  []time.Duration
}

var _ repositories.SourceResolver = (*StubSourceResolver)(nil)

func (s *StubSourceResolver) Get(location string, timeout time.Duration) (repositories.VersionsRepository, error) {
	s.Locations = append(s.Locations, location)
	s.Timeouts = append(s.Timeouts, timeout)
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.Repository, nil
}
