//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// SpyPageRepository implements repositories.PageRepository in memory.
// Pages holds the content of every known page; writes update it.
type SpyPageRepository struct {
	// --- Expand ---
	ExpandResult   []string // when nil, Expand echoes the patterns back
	ExpandErr      error
	ExpandPatterns [][]string

	// --- Read ---
	Pages   map[string]string // path -> content
	ReadErr error

	// --- Write ---
	WriteErr     error
	WrittenPaths []string
}

var _ repositories.PageRepository = (*SpyPageRepository)(nil)

func (s *SpyPageRepository) Expand(patterns []string) ([]string, error) {
	s.ExpandPatterns = append(s.ExpandPatterns, patterns)
	if s.ExpandErr != nil {
		return nil, s.ExpandErr
	}
	if s.ExpandResult != nil {
		return s.ExpandResult, nil
	}
	return patterns, nil
}

func (s *SpyPageRepository) Read(path string) (string, error) {
	if s.ReadErr != nil {
		return "", s.ReadErr
	}
	content, ok := s.Pages[path]
	if !ok {
		return "", fmt.Errorf("page not found: %s", path)
	}
	return content, nil
}

func (s *SpyPageRepository) Write(path, content string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if s.Pages == nil {
		s.Pages = make(map[string]string)
	}
	s.Pages[path] = content
	s.WrittenPaths = append(s.WrittenPaths, path)
	return nil
}
