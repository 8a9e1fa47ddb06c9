//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/docversions/internal/domain/entities"
	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// SpyDropdownRepository implements repositories.DropdownRepository as a configurable spy.
// Pages listed in Errors fail with the given error; the rest are returned
// with Rendered appended.
type SpyDropdownRepository struct {
	Rendered string
	Errors   map[string]error // page content -> error

	// spy: calls received
	PopulateCalls []PopulateCall
}

// PopulateCall records a single invocation of Populate.
type PopulateCall struct {
	Page     string
	Dropdown entities.DropdownSettings
	Versions entities.VersionList
}

var _ repositories.DropdownRepository = (*SpyDropdownRepository)(nil)

func (s *SpyDropdownRepository) Populate(
	page string,
	dropdown entities.DropdownSettings,
	versions entities.VersionList,
) (string, error) {
	s.PopulateCalls = append(s.PopulateCalls, PopulateCall{Page: page, Dropdown: dropdown, Versions: versions})
	if err, ok := s.Errors[page]; ok {
		return "", err
	}
	return page + s.Rendered, nil
}
