package repositories

import "github.com/rios0rios0/docversions/internal/domain/entities"

// DropdownRepository rebuilds the version dropdown inside an HTML document.
type DropdownRepository interface {
	// Populate locates the dropdown container of page, clears it and fills it
	// with one item per version, returning the re-rendered document.
	// An *entities.ElementNotFoundError is returned when the anchor or its
	// next sibling is missing.
	Populate(page string, dropdown entities.DropdownSettings, versions entities.VersionList) (string, error)
}
