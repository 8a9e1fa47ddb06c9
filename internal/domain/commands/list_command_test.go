//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docversions/internal/domain/commands"
	"github.com/rios0rios0/docversions/internal/domain/entities"
	"github.com/rios0rios0/docversions/test/domain/entitybuilders"
	"github.com/rios0rios0/docversions/test/infrastructure/repositorydoubles"
)

func TestListCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should return the versions in published order", func(t *testing.T) {
		t.Parallel()

		// given
		source := &repositorydoubles.StubVersionsRepository{
			RepositoryName: "stub",
			Content:        "var DOC_VERSIONS = [\"dev\", \"v0.2.0\", \"v0.1.0\",];",
		}
		command := commands.NewListCommand(&repositorydoubles.StubSourceResolver{Repository: source})
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		versions, err := command.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.VersionList{"dev", "v0.2.0", "v0.1.0"}, versions)
	})

	t.Run("should read the configured variable", func(t *testing.T) {
		t.Parallel()

		// given
		source := &repositorydoubles.StubVersionsRepository{
			RepositoryName: "stub",
			Content:        `var DOC_VERSIONS = ["no"]; var RELEASES = ["yes"];`,
		}
		command := commands.NewListCommand(&repositorydoubles.StubSourceResolver{Repository: source})
		settings := entitybuilders.NewSettingsBuilder().WithVariable("RELEASES").BuildSettings()

		// when
		versions, err := command.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.VersionList{"yes"}, versions)
	})

	t.Run("should resolve the configured url", func(t *testing.T) {
		t.Parallel()

		// given
		source := &repositorydoubles.StubVersionsRepository{RepositoryName: "stub", Content: `var DOC_VERSIONS = ["v1"];`}
		resolver := &repositorydoubles.StubSourceResolver{Repository: source}
		command := commands.NewListCommand(resolver)
		settings := entitybuilders.NewSettingsBuilder().WithURL("site/versions.js").BuildSettings()

		// when
		_, err := command.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"site/versions.js"}, resolver.Locations)
		assert.Equal(t, []string{"site/versions.js"}, source.FetchedLocations)
	})

	t.Run("should wrap a network error", func(t *testing.T) {
		t.Parallel()

		// given
		source := &repositorydoubles.StubVersionsRepository{
			RepositoryName: "stub",
			FetchErr:       &entities.NetworkError{URL: "https://docs.example.com/versions.js", Err: context.DeadlineExceeded},
		}
		command := commands.NewListCommand(&repositorydoubles.StubSourceResolver{Repository: source})
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		versions, err := command.Execute(context.Background(), settings)

		// then
		assert.Nil(t, versions)
		var networkErr *entities.NetworkError
		require.ErrorAs(t, err, &networkErr)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "error fetching versions")
	})
}
