package services

import (
	"context"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the current rate of the base currency into isoCode.
	GetExchangeRate(ctx context.Context, isoCode string) (*domain.ExchangeRate, error)

	// RateTable returns the marketplace's current rate table, served from cache when warm.
	RateTable(ctx context.Context) (domain.RateTable, error)

	// BaseCurrency returns the currency every rate is relative to.
	BaseCurrency(ctx context.Context) domain.Currency
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists the current rate for a currency.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error)

	// RefreshRateCache reloads the cached rate table from the database.
	RefreshRateCache(ctx context.Context) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
