package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultSourceURL is the versions script published by the documentation site.
	DefaultSourceURL = "https://raw.githubusercontent.com/cadojo/DocumenterQuarto.jl/gh-pages/versions.js"
	// DefaultTimeout bounds the versions fetch.
	DefaultTimeout     = 30 * time.Second
	DefaultAnchorID    = "nav-menu-version"
	DefaultHrefPattern = "/" + VersionPlaceholder + "/index.html"
	DefaultLinkClass   = "dropdown-item"
)

// Settings is the top-level configuration for docversions.
type Settings struct {
	Source   SourceSettings   `yaml:"source"`
	Dropdown DropdownSettings `yaml:"dropdown"`
	Pages    []string         `yaml:"pages"` // Glob patterns of HTML pages to populate
}

// SourceSettings describes where the versions script lives.
type SourceSettings struct {
	URL      string        `yaml:"url"`      // http(s) URL, file:// URL or local path
	Variable string        `yaml:"variable"` // JavaScript variable holding the array
	Timeout  time.Duration `yaml:"timeout"`
}

// DropdownSettings describes how the dropdown is located and filled.
type DropdownSettings struct {
	AnchorID    string `yaml:"anchor_id"`    // the container is this element's next sibling
	HrefPattern string `yaml:"href_pattern"` // must contain {version}
	LinkClass   string `yaml:"link_class"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// identifierPattern matches a JavaScript identifier.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Source: SourceSettings{
			URL:      DefaultSourceURL,
			Variable: DefaultVariable,
			Timeout:  DefaultTimeout,
		},
		Dropdown: DropdownSettings{
			AnchorID:    DefaultAnchorID,
			HrefPattern: DefaultHrefPattern,
			LinkClass:   DefaultLinkClass,
		},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables. The result is not validated: callers apply
// their overrides first and then call ValidateSettings.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Source.URL = expandEnv(settings.Source.URL)
	for i := range settings.Pages {
		settings.Pages[i] = expandEnv(settings.Pages[i])
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	return findConfigFileIn(locations)
}

func findConfigFileIn(locations []string) (string, error) {
	patterns := []string{
		".docversions.yaml",
		".docversions.yml",
		"docversions.yaml",
		"docversions.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv expands ${VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// ValidateSettings checks for required configuration values.
func ValidateSettings(settings *Settings) error {
	if strings.TrimSpace(settings.Source.URL) == "" {
		return errors.New("source.url is required")
	}
	if !identifierPattern.MatchString(settings.Source.Variable) {
		return fmt.Errorf("source.variable %q is not a valid identifier", settings.Source.Variable)
	}
	if settings.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be positive, got %s", settings.Source.Timeout)
	}
	if settings.Dropdown.AnchorID == "" {
		return errors.New("dropdown.anchor_id is required")
	}
	if !strings.Contains(settings.Dropdown.HrefPattern, VersionPlaceholder) {
		return fmt.Errorf("dropdown.href_pattern must contain %s", VersionPlaceholder)
	}
	return nil
}
