package filesource

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

const repositoryName = "file"

// FileVersionsRepository implements repositories.VersionsRepository for a
// versions script on the local filesystem, given as a path or file:// URL.
// Useful when the site and its versions.js are built in the same pipeline.
type FileVersionsRepository struct{}

// NewFileVersionsRepository creates a file repository. Local reads are not
// bounded, so the timeout is ignored.
func NewFileVersionsRepository(_ time.Duration) repositories.VersionsRepository {
	return &FileVersionsRepository{}
}

func (r *FileVersionsRepository) Name() string { return repositoryName }

// Fetch reads the whole file at location.
func (r *FileVersionsRepository) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := pathOf(location)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read versions file %q: %w", path, err)
	}
	return string(data), nil
}

// pathOf turns a file:// URL into a path; anything else is already a path.
func pathOf(location string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(location), "file://") {
		return location, nil
	}
	parsed, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("invalid file URL %q: %w", location, err)
	}
	if parsed.Host != "" && parsed.Host != "localhost" {
		return "", fmt.Errorf("file URL %q points to a remote host", location)
	}
	return parsed.Path, nil
}
