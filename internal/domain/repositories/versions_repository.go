package repositories

import (
	"context"
	"time"
)

// VersionsRepository fetches the raw text of a versions script.
// Implementations exist per source kind (HTTP, local file).
type VersionsRepository interface {
	// Name returns the repository identifier (e.g. "http", "file").
	Name() string

	// Fetch returns the full body of the resource at location.
	Fetch(ctx context.Context, location string) (string, error)
}

// SourceResolver picks the versions repository able to fetch a location.
type SourceResolver interface {
	Get(location string, timeout time.Duration) (VersionsRepository, error)
}
