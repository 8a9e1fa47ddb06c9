//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// StubVersionsRepository implements repositories.VersionsRepository with a canned response.
type StubVersionsRepository struct {
	// --- identity ---
	RepositoryName string

	// --- Fetch ---
	Content          string
	FetchErr         error
	FetchedLocations []string
}

var _ repositories.VersionsRepository = (*StubVersionsRepository)(nil)

func (s *StubVersionsRepository) Name() string { return s.RepositoryName }

func (s *StubVersionsRepository) Fetch(_ context.Context, location string) (string, error) {
	s.FetchedLocations = append(s.FetchedLocations, location)
	if s.FetchErr != nil {
		return "", s.FetchErr
	}
	return s.Content, nil
}
