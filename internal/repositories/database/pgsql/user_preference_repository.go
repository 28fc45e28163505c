package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_storefront/internal/core/ports/repositories"
	"github.com/SscSPs/workspace_storefront/internal/models"
	"github.com/SscSPs/workspace_storefront/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserPreferenceRepository stores profile currency preferences. The rate
// table lives in a jsonb column.
type PgxUserPreferenceRepository struct {
	BaseRepository
}

func newPgxUserPreferenceRepository(pool *pgxpool.Pool) portsrepo.UserPreferenceRepositoryFacade {
	return &PgxUserPreferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserPreferenceRepositoryFacade = (*PgxUserPreferenceRepository)(nil)

// SaveUserPreference upserts the user's preference.
func (r *PgxUserPreferenceRepository) SaveUserPreference(ctx context.Context, pref domain.UserPreference) error {
	modelPref, err := mapping.ToModelUserPreference(pref)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_preferences (user_id, currency_code, rates, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			currency_code = EXCLUDED.currency_code,
			rates = EXCLUDED.rates,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.Pool.Exec(ctx, query,
		modelPref.UserID,
		modelPref.CurrencyCode,
		modelPref.Rates,
		modelPref.CreatedAt,
		modelPref.CreatedBy,
		modelPref.LastUpdatedAt,
		modelPref.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save preference for user %s: %w", modelPref.UserID, err)
	}
	return nil
}

// FindUserPreference retrieves the stored preference of a user.
func (r *PgxUserPreferenceRepository) FindUserPreference(ctx context.Context, userID string) (*domain.UserPreference, error) {
	query := `
		SELECT user_id, currency_code, rates, created_at, created_by, last_updated_at, last_updated_by
		FROM user_preferences
		WHERE user_id = $1;
	`
	var m models.UserPreference
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.CurrencyCode,
		&m.Rates,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preference for user %s: %w", userID, err)
	}

	pref, err := mapping.ToDomainUserPreference(m)
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
