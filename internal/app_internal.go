package internal

import (
	"github.com/rios0rios0/docversions/internal/domain/entities"
	"github.com/rios0rios0/docversions/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI mounts: the subcommand controllers and
// the populate controller that also backs the root command.
type AppInternal struct {
	controllers        []entities.Controller
	populateController *controllers.PopulateController
}

// NewAppInternal creates the AppInternal from the injected controllers.
func NewAppInternal(
	all *[]entities.Controller,
	populateController *controllers.PopulateController,
) *AppInternal {
	return &AppInternal{
		controllers:        *all,
		populateController: populateController,
	}
}

// GetControllers returns the controllers mounted as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetPopulateController returns the controller behind the root command.
func (it *AppInternal) GetPopulateController() *controllers.PopulateController {
	return it.populateController
}
