package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// FilesystemPageRepository implements repositories.PageRepository on the local disk.
type FilesystemPageRepository struct{}

// NewFilesystemPageRepository creates a new filesystem page repository.
func NewFilesystemPageRepository() repositories.PageRepository {
	return &FilesystemPageRepository{}
}

// Expand resolves each glob pattern. A pattern matching nothing is reported
// and skipped so one stale entry does not block the remaining pages.
func (r *FilesystemPageRepository) Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var pages []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid page pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			logger.Warnf("[pages] Pattern %q matched no files", pattern)
			continue
		}

		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr != nil || info.IsDir() {
				continue
			}
			clean := filepath.Clean(match)
			if seen[clean] {
				continue
			}
			seen[clean] = true
			pages = append(pages, clean)
		}
	}

	return pages, nil
}

func (r *FilesystemPageRepository) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read page %q: %w", path, err)
	}
	return string(data), nil
}

func (r *FilesystemPageRepository) Write(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat page %q: %w", path, err)
	}
	if writeErr := os.WriteFile(path, []byte(content), info.Mode().Perm()); writeErr != nil {
		return fmt.Errorf("failed to write page %q: %w", path, writeErr)
	}
	return nil
}
