package services_test

import (
	"context"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRateByIsoCode(ctx context.Context, isoCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, isoCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock UserPreferenceRepository ---
type MockUserPreferenceRepository struct {
	mock.Mock
}

func (m *MockUserPreferenceRepository) FindUserPreference(ctx context.Context, userID string) (*domain.UserPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreference), args.Error(1)
}

func (m *MockUserPreferenceRepository) SaveUserPreference(ctx context.Context, pref domain.UserPreference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

// --- Mock Cache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetDevicePreference(ctx context.Context, deviceID string) (domain.Preferences, bool, error) {
	args := m.Called(ctx, deviceID)
	return args.Get(0).(domain.Preferences), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetDevicePreference(ctx context.Context, deviceID, currencyCode string, rates domain.RateTable) error {
	args := m.Called(ctx, deviceID, currencyCode, rates)
	return args.Error(0)
}

func (m *MockCache) GetRateTable(ctx context.Context) (domain.RateTable, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(domain.RateTable), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetRateTable(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockCache) InvalidateRateTable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock ExchangeRate reader service ---
type MockRateReaderSvc struct {
	mock.Mock
}

func (m *MockRateReaderSvc) GetExchangeRate(ctx context.Context, isoCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, isoCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateReaderSvc) RateTable(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockRateReaderSvc) BaseCurrency(ctx context.Context) domain.Currency {
	args := m.Called(ctx)
	return args.Get(0).(domain.Currency)
}

// --- Mock Preference reader service ---
type MockPreferenceReaderSvc struct {
	mock.Mock
}

func (m *MockPreferenceReaderSvc) Resolve(ctx context.Context, q domain.PreferenceQuery) (domain.Preferences, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Preferences), args.Error(1)
}
