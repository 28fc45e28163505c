package handlers_test

import (
	"context"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_storefront/internal/core/ports/services"
	"github.com/SscSPs/workspace_storefront/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, isoCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, isoCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) RateTable(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockExchangeRateService) BaseCurrency(ctx context.Context) domain.Currency {
	args := m.Called(ctx)
	return args.Get(0).(domain.Currency)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) RefreshRateCache(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock PreferenceService ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) Resolve(ctx context.Context, q domain.PreferenceQuery) (domain.Preferences, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func (m *MockPreferenceService) SaveUserPreference(ctx context.Context, userID string, req dto.SavePreferenceRequest) (domain.Preferences, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func (m *MockPreferenceService) SaveDevicePreference(ctx context.Context, deviceID string, req dto.SavePreferenceRequest) (domain.Preferences, error) {
	args := m.Called(ctx, deviceID, req)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

var _ portssvc.PreferenceSvcFacade = (*MockPreferenceService)(nil)

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) ConvertAmount(ctx context.Context, viewer domain.PreferenceQuery, req dto.ConvertRequest) (*dto.ConvertResponse, error) {
	args := m.Called(ctx, viewer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConvertResponse), args.Error(1)
}

func (m *MockPricingService) ListingPrice(ctx context.Context, viewer domain.PreferenceQuery, listing domain.Listing) (*dto.ListingPriceResponse, error) {
	args := m.Called(ctx, viewer, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListingPriceResponse), args.Error(1)
}

func (m *MockPricingService) BookingDuration(ctx context.Context, req dto.DurationRequest) (*dto.DurationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DurationResponse), args.Error(1)
}

func (m *MockPricingService) Breakdown(ctx context.Context, viewer domain.PreferenceQuery, req dto.BreakdownRequest) (*dto.BreakdownResponse, error) {
	args := m.Called(ctx, viewer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BreakdownResponse), args.Error(1)
}

func (m *MockPricingService) EstimateBreakdown(ctx context.Context, viewer domain.PreferenceQuery, req dto.EstimateBreakdownRequest) (*dto.BreakdownResponse, error) {
	args := m.Called(ctx, viewer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BreakdownResponse), args.Error(1)
}

var _ portssvc.PricingSvcFacade = (*MockPricingService)(nil)
