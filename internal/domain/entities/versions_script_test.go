//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docversions/internal/domain/entities"
)

func TestParseVersionsScript(t *testing.T) {
	t.Parallel()

	t.Run("should parse a single-line array in order", func(t *testing.T) {
		t.Parallel()

		// given
		content := `var DOC_VERSIONS = ["a","b","c"];`

		// when
		versions, err := entities.ParseVersionsScript(content, entities.DefaultVariable)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.VersionList{"a", "b", "c"}, versions)
	})

	t.Run("should tolerate a trailing comma before the closing bracket", func(t *testing.T) {
		t.Parallel()

		// given
		withComma := `var DOC_VERSIONS = [ "x", "y", ];`
		withoutComma := `var DOC_VERSIONS = [ "x", "y" ];`

		// when
		got, err := entities.ParseVersionsScript(withComma, entities.DefaultVariable)
		want, wantErr := entities.ParseVersionsScript(withoutComma, entities.DefaultVariable)

		// then
		require.NoError(t, err)
		require.NoError(t, wantErr)
		assert.Equal(t, entities.VersionList{"x", "y"}, got)
		assert.Equal(t, want, got)
	})

	t.Run("should parse a multi-line array like its single-line equivalent", func(t *testing.T) {
		t.Parallel()

		// given
		multiLine := "// generated\nvar DOC_VERSIONS = [\n  \"stable\",\n  \"v1.1.0\",\n  \"v1.0.0\",\n];\n"
		singleLine := `var DOC_VERSIONS = ["stable","v1.1.0","v1.0.0"];`

		// when
		got, err := entities.ParseVersionsScript(multiLine, entities.DefaultVariable)
		want, wantErr := entities.ParseVersionsScript(singleLine, entities.DefaultVariable)

		// then
		require.NoError(t, err)
		require.NoError(t, wantErr)
		assert.Equal(t, want, got)
	})

	t.Run("should return ParseError wrapping ErrVersionsNotFound when the assignment is missing", func(t *testing.T) {
		t.Parallel()

		// given
		content := `var OTHER = ["a"];`

		// when
		versions, err := entities.ParseVersionsScript(content, entities.DefaultVariable)

		// then
		require.Error(t, err)
		assert.Nil(t, versions)
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.True(t, errors.Is(err, entities.ErrVersionsNotFound))
		assert.Contains(t, err.Error(), "versions array not found")
	})

	t.Run("should return ParseError when the literal is malformed", func(t *testing.T) {
		t.Parallel()

		// given
		content := `var DOC_VERSIONS = ["a" "b"];`

		// when
		_, err := entities.ParseVersionsScript(content, entities.DefaultVariable)

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.NotErrorIs(t, err, entities.ErrVersionsNotFound)
	})

	t.Run("should return ParseError when the array holds non-string values", func(t *testing.T) {
		t.Parallel()

		// given
		content := `var DOC_VERSIONS = [{"name": "v1"}, "v2"];`

		// when
		_, err := entities.ParseVersionsScript(content, entities.DefaultVariable)

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("should return ParseError for nested arrays", func(t *testing.T) {
		t.Parallel()

		// given
		content := `var DOC_VERSIONS = [["v1"], "v2"];`

		// when
		_, err := entities.ParseVersionsScript(content, entities.DefaultVariable)

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("should return ParseError for null items", func(t *testing.T) {
		t.Parallel()

		// given
		content := `var DOC_VERSIONS = ["a", null, "b"];`

		// when
		versions, err := entities.ParseVersionsScript(content, entities.DefaultVariable)

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "item 1 is not a string")
		assert.Nil(t, versions)
	})

	t.Run("should ignore comments inside the array", func(t *testing.T) {
		t.Parallel()

		// given
		content := "var DOC_VERSIONS = [\n  \"a\", /* old */ \"b\",\n  // next\n  \"c\",\n];"

		// when
		versions, err := entities.ParseVersionsScript(content, entities.DefaultVariable)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.VersionList{"a", "b", "c"}, versions)
	})

	t.Run("should honour a custom variable name", func(t *testing.T) {
		t.Parallel()

		// given
		content := "var DOC_VERSIONS = [\"ignored\"];\nvar $RELEASES = [\"r2\", \"r1\"];"

		// when
		versions, err := entities.ParseVersionsScript(content, "$RELEASES")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.VersionList{"r2", "r1"}, versions)
	})

	t.Run("should parse an empty array", func(t *testing.T) {
		t.Parallel()

		// given
		content := `var DOC_VERSIONS = [];`

		// when
		versions, err := entities.ParseVersionsScript(content, entities.DefaultVariable)

		// then
		require.NoError(t, err)
		assert.Empty(t, versions)
	})
}

func TestNormalizeArrayLiteral(t *testing.T) {
	t.Parallel()

	t.Run("should trim whitespace and drop trailing commas", func(t *testing.T) {
		t.Parallel()

		// given
		literal := "  [\"a\", {\"k\": \"v\",},\n]  "

		// when
		result := entities.NormalizeArrayLiteral(literal)

		// then
		assert.Equal(t, `["a", {"k": "v"}]`, result)
	})

	t.Run("should leave a strict literal unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		literal := `["a","b"]`

		// when
		result := entities.NormalizeArrayLiteral(literal)

		// then
		assert.Equal(t, literal, result)
	})
}

func TestExtractArrayLiteral(t *testing.T) {
	t.Parallel()

	t.Run("should stop at the first closing assignment", func(t *testing.T) {
		t.Parallel()

		// given
		content := "var DOC_VERSIONS = [\"a\"];\nvar OTHER = [\"b\"];"

		// when
		literal, err := entities.ExtractArrayLiteral(content, entities.DefaultVariable)

		// then
		require.NoError(t, err)
		assert.Equal(t, `["a"]`, literal)
	})
}
