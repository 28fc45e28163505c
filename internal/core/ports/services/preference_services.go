package services

import (
	"context"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/dto"
)

// PreferenceReaderSvc resolves a viewer's currency preference.
type PreferenceReaderSvc interface {
	// Resolve looks at the user's profile first, then the device cache, and
	// falls back to no conversion.
	Resolve(ctx context.Context, q domain.PreferenceQuery) (domain.Preferences, error)
}

// PreferenceWriterSvc stores currency preferences.
type PreferenceWriterSvc interface {
	SaveUserPreference(ctx context.Context, userID string, req dto.SavePreferenceRequest) (domain.Preferences, error)
	SaveDevicePreference(ctx context.Context, deviceID string, req dto.SavePreferenceRequest) (domain.Preferences, error)
}

// PreferenceSvcFacade combines all preference service interfaces
type PreferenceSvcFacade interface {
	PreferenceReaderSvc
	PreferenceWriterSvc
}
