package commands

import (
	"context"

	"github.com/rios0rios0/docversions/internal/domain/entities"
	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) (entities.VersionList, error)
}

// ListCommand fetches and parses the versions script without touching any page.
type ListCommand struct {
	sourceResolver repositories.SourceResolver
}

// NewListCommand creates a new ListCommand.
func NewListCommand(sourceResolver repositories.SourceResolver) *ListCommand {
	return &ListCommand{sourceResolver: sourceResolver}
}

// Execute returns the published versions in display order.
func (it *ListCommand) Execute(ctx context.Context, settings *entities.Settings) (entities.VersionList, error) {
	return loadVersions(ctx, it.sourceResolver, settings.Source)
}
