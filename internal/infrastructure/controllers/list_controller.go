package controllers

import (
	"context"
	"encoding/json"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docversions/internal/domain/commands"
	"github.com/rios0rios0/docversions/internal/domain/entities"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "Print the published documentation versions",
		Long: `Fetch the versions script and print the DOC_VERSIONS array in
display order, marking the highest semantic version as latest.`,
	}
}

// Execute prints the versions to the command output.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	output, _ := cmd.Flags().GetString("output")

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	versions, err := it.command.Execute(ctx, settings)
	if err != nil {
		logger.Errorf("List failed: %v", err)
		return
	}

	if printErr := printVersions(cmd, versions, output); printErr != nil {
		logger.Errorf("List failed: %v", printErr)
	}
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", outputText, "Output format: text or json")
}

func printVersions(cmd *cobra.Command, versions entities.VersionList, output string) error {
	out := cmd.OutOrStdout()

	switch output {
	case outputJSON:
		data, err := json.MarshalIndent(struct {
			Versions []string `json:"versions"`
			Latest   string   `json:"latest,omitempty"`
		}{Versions: versions, Latest: versions.Latest()}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode versions: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case outputText, "":
		latest := versions.Latest()
		for _, version := range versions {
			if version == latest {
				_, _ = fmt.Fprintf(out, "%s (latest)\n", version)
				continue
			}
			_, _ = fmt.Fprintln(out, version)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)", output, outputText, outputJSON)
	}
}
