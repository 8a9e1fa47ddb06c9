package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docversions/internal/domain/entities"
	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// loadVersions fetches the versions script and extracts its array.
// The whole fetch, body included, is bounded by source.Timeout.
func loadVersions(
	ctx context.Context,
	resolver repositories.SourceResolver,
	source entities.SourceSettings,
) (entities.VersionList, error) {
	repo, err := resolver.Get(source.URL, source.Timeout)
	if err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, source.Timeout)
	defer cancel()

	logger.Debugf("[%s] Fetching versions from %s", repo.Name(), source.URL)
	content, err := repo.Fetch(fetchCtx, source.URL)
	if err != nil {
		return nil, fmt.Errorf("error fetching versions: %w", err)
	}

	versions, err := entities.ParseVersionsScript(content, source.Variable)
	if err != nil {
		var parseErr *entities.ParseError
		if errors.As(err, &parseErr) && parseErr.Source == "" {
			parseErr.Source = source.URL
		}
		return nil, err
	}

	logger.Infof("%s loaded: %v", source.Variable, []string(versions))
	return versions, nil
}
