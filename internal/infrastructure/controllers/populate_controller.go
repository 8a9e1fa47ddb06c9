package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docversions/internal/domain/commands"
	"github.com/rios0rios0/docversions/internal/domain/entities"
)

// PopulateController handles the "populate" subcommand and the root command with page arguments.
type PopulateController struct {
	command commands.Populate
}

// NewPopulateController creates a new PopulateController.
func NewPopulateController(command commands.Populate) *PopulateController {
	return &PopulateController{command: command}
}

// GetBind returns the Cobra command metadata for the populate controller.
func (it *PopulateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "populate [pages...]",
		Short: "Fill the version dropdown of built HTML pages",
		Long: `Fetch the versions script, extract the DOC_VERSIONS array and rebuild
the version dropdown of every given page.

Pages are glob patterns; when none are given the "pages" list of the
config file is used. A page whose dropdown cannot be found is reported
and left untouched.`,
	}
}

// Execute runs the populate mode.
func (it *PopulateController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if runErr := it.command.Execute(ctx, settings, commands.PopulateOptions{
		Pages:  args,
		DryRun: dryRun,
	}); runErr != nil {
		logger.Errorf("Populate failed: %v", runErr)
	}
}

// AddFlags has nothing to add: populate only uses the global flags.
func (it *PopulateController) AddFlags(_ *cobra.Command) {}
