package repositories

import (
	"context"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
)

// DevicePreferenceCache stores the currency preference of anonymous devices.
type DevicePreferenceCache interface {
	// GetDevicePreference reports false when nothing is cached for the device.
	GetDevicePreference(ctx context.Context, deviceID string) (domain.Preferences, bool, error)
	SetDevicePreference(ctx context.Context, deviceID, currencyCode string, rates domain.RateTable) error
}

// RateTableCache holds the marketplace's current rate table.
type RateTableCache interface {
	// GetRateTable reports false on a cache miss.
	GetRateTable(ctx context.Context) (domain.RateTable, bool, error)
	SetRateTable(ctx context.Context, table domain.RateTable) error
	InvalidateRateTable(ctx context.Context) error
}

// CacheProvider groups the redis backed caches.
type CacheProvider interface {
	DevicePreferenceCache
	RateTableCache
	Ping(ctx context.Context) error
}
