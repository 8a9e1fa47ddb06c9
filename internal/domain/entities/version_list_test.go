//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/docversions/internal/domain/entities"
)

func TestVersionListEntries(t *testing.T) {
	t.Parallel()

	t.Run("should interpolate each version into the href pattern in order", func(t *testing.T) {
		t.Parallel()

		// given
		versions := entities.VersionList{"a", "b", "c"}

		// when
		entries := versions.Entries(entities.DefaultHrefPattern)

		// then
		assert.Equal(t, []entities.VersionEntry{
			{Version: "a", Href: "/a/index.html"},
			{Version: "b", Href: "/b/index.html"},
			{Version: "c", Href: "/c/index.html"},
		}, entries)
	})

	t.Run("should return no entries for an empty list", func(t *testing.T) {
		t.Parallel()

		// given
		var versions entities.VersionList

		// when
		entries := versions.Entries(entities.DefaultHrefPattern)

		// then
		assert.Empty(t, entries)
	})
}

func TestVersionListLatest(t *testing.T) {
	t.Parallel()

	t.Run("should pick the highest semantic version regardless of order", func(t *testing.T) {
		t.Parallel()

		// given
		versions := entities.VersionList{"dev", "v1.2.0", "v1.10.0", "stable", "v1.9.3"}

		// when
		latest := versions.Latest()

		// then
		assert.Equal(t, "v1.10.0", latest)
	})

	t.Run("should accept labels without the v prefix and return them as written", func(t *testing.T) {
		t.Parallel()

		// given
		versions := entities.VersionList{"0.3.1", "0.12.0"}

		// when
		latest := versions.Latest()

		// then
		assert.Equal(t, "0.12.0", latest)
	})

	t.Run("should return empty when nothing is a semantic version", func(t *testing.T) {
		t.Parallel()

		// given
		versions := entities.VersionList{"dev", "stable"}

		// when
		latest := versions.Latest()

		// then
		assert.Empty(t, latest)
	})
}
