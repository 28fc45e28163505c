package pgsql

import (
	portsrepo "github.com/SscSPs/workspace_storefront/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the postgres repositories. cache is the redis
// backed CacheProvider; postgres holds everything else.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cache portsrepo.CacheProvider) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:       newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo:   newPgxExchangeRateRepository(dbPool),
		UserPreferenceRepo: newPgxUserPreferenceRepository(dbPool),
		Cache:              cache,
	}
}
