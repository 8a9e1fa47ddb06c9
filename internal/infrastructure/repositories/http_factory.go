package repositories

import (
	"time"

	domainRepos "github.com/rios0rios0/docversions/internal/domain/repositories"
	"github.com/rios0rios0/docversions/internal/infrastructure/repositories/httpsource"
)

// httpVersionsRepository adapts the variadic HTTP constructor to SourceFactory.
func httpVersionsRepository(timeout time.Duration) domainRepos.VersionsRepository {
	return httpsource.NewHTTPVersionsRepository(timeout)
}
