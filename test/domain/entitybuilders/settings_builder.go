//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/docversions/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	url         string
	variable    string
	timeout     time.Duration
	anchorID    string
	hrefPattern string
	linkClass   string
	pages       []string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.applyDefaults()
	return b
}

func (b *SettingsBuilder) applyDefaults() {
	b.url = "https://docs.example.com/versions.js"
	b.variable = entities.DefaultVariable
	b.timeout = time.Second
	b.anchorID = entities.DefaultAnchorID
	b.hrefPattern = entities.DefaultHrefPattern
	b.linkClass = entities.DefaultLinkClass
	b.pages = []string{"site/index.html"}
}

// WithURL sets the versions source URL.
func (b *SettingsBuilder) WithURL(url string) *SettingsBuilder {
	b.url = url
	return b
}

// WithVariable sets the JavaScript variable name.
func (b *SettingsBuilder) WithVariable(variable string) *SettingsBuilder {
	b.variable = variable
	return b
}

// WithTimeout sets the fetch timeout.
func (b *SettingsBuilder) WithTimeout(timeout time.Duration) *SettingsBuilder {
	b.timeout = timeout
	return b
}

// WithAnchorID sets the dropdown anchor element id.
func (b *SettingsBuilder) WithAnchorID(anchorID string) *SettingsBuilder {
	b.anchorID = anchorID
	return b
}

// WithHrefPattern sets the link pattern.
func (b *SettingsBuilder) WithHrefPattern(pattern string) *SettingsBuilder {
	b.hrefPattern = pattern
	return b
}

// WithLinkClass sets the class put on every dropdown link.
func (b *SettingsBuilder) WithLinkClass(linkClass string) *SettingsBuilder {
	b.linkClass = linkClass
	return b
}

// WithPages sets the page patterns.
func (b *SettingsBuilder) WithPages(pages ...string) *SettingsBuilder {
	b.pages = pages
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Source: entities.SourceSettings{
			URL:      b.url,
			Variable: b.variable,
			Timeout:  b.timeout,
		},
		Dropdown: entities.DropdownSettings{
			AnchorID:    b.anchorID,
			HrefPattern: b.hrefPattern,
			LinkClass:   b.linkClass,
		},
		Pages: append([]string(nil), b.pages...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.applyDefaults()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		url:         b.url,
		variable:    b.variable,
		timeout:     b.timeout,
		anchorID:    b.anchorID,
		hrefPattern: b.hrefPattern,
		linkClass:   b.linkClass,
		pages:       append([]string(nil), b.pages...),
	}
}
