//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/docversions/internal/domain/commands"
	"github.com/rios0rios0/docversions/internal/domain/entities"
)

// StubPopulateCommand is a stub implementation of commands.Populate.
type StubPopulateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PopulateOptions
}

var _ commands.Populate = (*StubPopulateCommand)(nil)

func (s *StubPopulateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PopulateOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
