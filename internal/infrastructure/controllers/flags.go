package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/docversions/internal/domain/entities"
)

// AddGlobalFlags registers the flags shared by every controller.
func AddGlobalFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	flags.String("url", "",
		"Versions script to read (http(s) URL, file:// URL or local path)")
	flags.Duration("timeout", 0,
		"Timeout for fetching the versions script (default 30s)")
	flags.String("anchor", "",
		"Id of the element whose next sibling is the dropdown (default nav-menu-version)")
	flags.Bool("dry-run", false,
		"Show what would be done without writing pages")
	flags.BoolP("verbose", "v", false,
		"Enable verbose output")
}

// resolveSettings loads the config file, when there is one, and applies the
// flag overrides on top of it. Validation runs once, after the overrides.
func resolveSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")

	cfgPath := configPath
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found (%v), using defaults", err)
		}
		cfgPath = found
	}

	settings := entities.NewDefaultSettings()
	if cfgPath != "" {
		logger.Infof("Using config file: %s", cfgPath)
		loaded, err := entities.NewSettings(cfgPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		settings.Source.URL, _ = flags.GetString("url")
	}
	if flags.Changed("timeout") {
		settings.Source.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("anchor") {
		settings.Dropdown.AnchorID, _ = flags.GetString("anchor")
	}

	if err := entities.ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}
