package repositories

import (
	"context"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
)

// UserPreferenceReader defines read operations for stored profile preferences
type UserPreferenceReader interface {
	// FindUserPreference returns apperrors.ErrNotFound when the user has none.
	FindUserPreference(ctx context.Context, userID string) (*domain.UserPreference, error)
}

// UserPreferenceWriter defines write operations for stored profile preferences
type UserPreferenceWriter interface {
	// SaveUserPreference inserts or replaces the user's preference.
	SaveUserPreference(ctx context.Context, pref domain.UserPreference) error
}

// UserPreferenceRepositoryFacade combines all user preference repository interfaces
type UserPreferenceRepositoryFacade interface {
	UserPreferenceReader
	UserPreferenceWriter
}
