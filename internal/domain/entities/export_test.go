package entities

// FindConfigFileIn exports findConfigFileIn for testing.
var FindConfigFileIn = findConfigFileIn //nolint:gochecknoglobals // test export
