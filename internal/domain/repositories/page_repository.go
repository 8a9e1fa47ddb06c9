package repositories

// PageRepository reads and writes the built HTML pages of a documentation site.
type PageRepository interface {
	// Expand resolves glob patterns into page paths, deduplicated and in
	// first-seen order.
	Expand(patterns []string) ([]string, error)

	Read(path string) (string, error)

	// Write replaces the content of an existing page, keeping its file mode.
	Write(path, content string) error
}
