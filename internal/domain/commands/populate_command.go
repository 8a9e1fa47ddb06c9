package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docversions/internal/domain/entities"
	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// Populate is the interface for the populate command.
type Populate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PopulateOptions) error
}

// PopulateOptions holds runtime options for a single populate run.
type PopulateOptions struct {
	Pages  []string // If set, replaces settings.Pages (CLI arguments)
	DryRun bool
}

// PopulateCommand fills the version dropdown of every page:
// fetch versions -> parse -> rebuild the dropdown -> write the page.
type PopulateCommand struct {
	sourceResolver     repositories.SourceResolver
	pageRepository     repositories.PageRepository
	dropdownRepository repositories.DropdownRepository
}

// NewPopulateCommand creates a new PopulateCommand.
func NewPopulateCommand(
	sourceResolver repositories.SourceResolver,
	pageRepository repositories.PageRepository,
	dropdownRepository repositories.DropdownRepository,
) *PopulateCommand {
	return &PopulateCommand{
		sourceResolver:     sourceResolver,
		pageRepository:     pageRepository,
		dropdownRepository: dropdownRepository,
	}
}

// Execute runs one populate cycle. A fetch or parse failure stops the run
// before any page is touched; a page failure is logged and the next page
// is processed.
func (it *PopulateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts PopulateOptions,
) error {
	patterns := opts.Pages
	if len(patterns) == 0 {
		patterns = settings.Pages
	}
	if len(patterns) == 0 {
		return errors.New("no pages to populate; pass page paths or set pages in the config file")
	}

	pages, err := it.pageRepository.Expand(patterns)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no pages matched %v", patterns)
	}

	versions, err := loadVersions(ctx, it.sourceResolver, settings.Source)
	if err != nil {
		return err
	}

	failed := 0
	for _, page := range pages {
		if pageErr := it.populatePage(page, settings.Dropdown, versions, opts.DryRun); pageErr != nil {
			logger.Errorf("[populate] %s: %v", page, pageErr)
			failed++
		}
	}

	logger.Infof("[populate] %d/%d pages populated with %d versions", len(pages)-failed, len(pages), len(versions))
	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(pages))
	}
	return nil
}

// populatePage rewrites a single page. The page is only written once the
// dropdown has been rebuilt, so a failure leaves it untouched.
func (it *PopulateCommand) populatePage(
	page string,
	dropdown entities.DropdownSettings,
	versions entities.VersionList,
	dryRun bool,
) error {
	content, err := it.pageRepository.Read(page)
	if err != nil {
		return err
	}

	populated, err := it.dropdownRepository.Populate(content, dropdown, versions)
	if err != nil {
		return err
	}

	if dryRun {
		logger.Infof("[populate] [DRY RUN] Would populate %s with %d versions", page, len(versions))
		return nil
	}

	if writeErr := it.pageRepository.Write(page, populated); writeErr != nil {
		return writeErr
	}
	logger.Infof("[populate] Dropdown populated: %s (%d versions)", page, len(versions))
	return nil
}
