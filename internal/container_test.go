//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/docversions/internal"
	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the whole application graph", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var app *internal.AppInternal
		err := container.Invoke(func(ai *internal.AppInternal) {
			app = ai
		})

		// then
		require.NoError(t, err)
		require.NotNil(t, app)
		assert.Len(t, app.GetControllers(), 2)
		assert.NotNil(t, app.GetPopulateController())
	})

	t.Run("should resolve http, https, file and bare path sources", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var resolver repositories.SourceResolver
		err := container.Invoke(func(r repositories.SourceResolver) {
			resolver = r
		})

		// then
		require.NoError(t, err)
		for location, name := range map[string]string{
			"http://example.com/versions.js":  "http",
			"https://example.com/versions.js": "http",
			"file:///srv/site/versions.js":    "file",
			"site/versions.js":                "file",
		} {
			repo, getErr := resolver.Get(location, 0)
			require.NoError(t, getErr)
			assert.Equal(t, name, repo.Name(), location)
		}
	})
}
