package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// VersionPlaceholder is the token replaced by the version label in an href pattern.
const VersionPlaceholder = "{version}"

// VersionList is the ordered list of published documentation versions.
// The order is the display order of the dropdown.
type VersionList []string

// VersionEntry is a single dropdown item: the label and the link it points to.
type VersionEntry struct {
	Version string
	Href    string
}

// Entries builds one entry per version, in list order, interpolating each
// version into hrefPattern.
func (l VersionList) Entries(hrefPattern string) []VersionEntry {
	entries := make([]VersionEntry, 0, len(l))
	for _, version := range l {
		entries = append(entries, VersionEntry{
			Version: version,
			Href:    strings.ReplaceAll(hrefPattern, VersionPlaceholder, version),
		})
	}
	return entries
}

// Latest returns the highest semantic version in the list, or an empty string
// when no label is a valid semantic version. Labels such as "dev" or "stable"
// are ignored.
func (l VersionList) Latest() string {
	latest := ""
	for _, version := range l {
		normalized := normalizeVersion(version)
		if !semver.IsValid(normalized) {
			continue
		}
		if latest == "" || semver.Compare(normalized, normalizeVersion(latest)) > 0 {
			latest = version
		}
	}
	return latest
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
