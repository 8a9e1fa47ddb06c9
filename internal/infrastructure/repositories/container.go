package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/docversions/internal/domain/repositories"
	"github.com/rios0rios0/docversions/internal/infrastructure/repositories/filesource"
	"github.com/rios0rios0/docversions/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/docversions/internal/infrastructure/repositories/goquery"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register source registry with every supported scheme
	if err := container.Provide(func() *SourceRegistry {
		reg := NewSourceRegistry()
		reg.Register("http", httpVersionsRepository)
		reg.Register("https", httpVersionsRepository)
		reg.Register("file", filesource.NewFileVersionsRepository)
		reg.Register("", filesource.NewFileVersionsRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func(impl *SourceRegistry) domainRepos.SourceResolver {
		return impl
	}); err != nil {
		return err
	}

	if err := container.Provide(filesystem.NewFilesystemPageRepository); err != nil {
		return err
	}
	if err := container.Provide(goquery.NewGoqueryDropdownRepository); err != nil {
		return err
	}

	return nil
}
