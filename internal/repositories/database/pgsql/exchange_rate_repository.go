package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_storefront/internal/core/ports/repositories"
	"github.com/SscSPs/workspace_storefront/internal/models"
	"github.com/SscSPs/workspace_storefront/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository stores one current rate per ISO code.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `exchange_rate_id, iso_code, current_rate, symbol, created_at, created_by, last_updated_at, last_updated_by`

// SaveExchangeRate inserts the rate or, when the ISO code already has one,
// replaces its value and symbol. The original ID and creation audit are kept.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)
	modelRate.IsoCode = strings.ToUpper(modelRate.IsoCode)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT exchange_rate_id FROM exchange_rates WHERE iso_code = $1 FOR UPDATE`,
		modelRate.IsoCode,
	).Scan(&existingID)

	switch {
	case err == nil:
		_, err = tx.Exec(ctx, `
			UPDATE exchange_rates
			SET current_rate = $1, symbol = $2, last_updated_at = $3, last_updated_by = $4
			WHERE exchange_rate_id = $5`,
			modelRate.CurrentRate, modelRate.Symbol, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy, existingID,
		)
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx, `
			INSERT INTO exchange_rates (`+exchangeRateColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			modelRate.ExchangeRateID, modelRate.IsoCode, modelRate.CurrentRate, modelRate.Symbol,
			modelRate.CreatedAt, modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to save exchange rate for %s: %w", modelRate.IsoCode, err)
	}

	return r.Commit(ctx, tx)
}

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.IsoCode, &m.CurrentRate, &m.Symbol,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindExchangeRateByIsoCode retrieves the current rate for an ISO code.
func (r *PgxExchangeRateRepository) FindExchangeRateByIsoCode(ctx context.Context, isoCode string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE iso_code = $1;`

	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, strings.ToUpper(isoCode)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no exchange rate for %s", apperrors.ErrNotFound, isoCode)
		}
		return nil, fmt.Errorf("failed to find exchange rate for %s: %w", isoCode, err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListExchangeRates retrieves every current rate ordered by ISO code.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates ORDER BY iso_code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	return mapping.ToDomainRateTable(modelRates), nil
}
