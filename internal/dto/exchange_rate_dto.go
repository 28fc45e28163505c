package dto

import (
	"time"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest sets the current rate of the base currency into IsoCode.
type CreateExchangeRateRequest struct {
	IsoCode     string          `json:"iso_code" binding:"required,iso4217"`
	CurrentRate decimal.Decimal `json:"current_rate"`
	Symbol      string          `json:"symbol"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	IsoCode        string          `json:"iso_code"`
	CurrentRate    decimal.Decimal `json:"current_rate"`
	Symbol         string          `json:"symbol"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// RateTableResponse is the marketplace rate table relative to its base currency.
type RateTableResponse struct {
	BaseCurrency string                 `json:"baseCurrency"`
	Rates        []ExchangeRateResponse `json:"rates"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		IsoCode:        rate.IsoCode,
		CurrentRate:    rate.CurrentRate,
		Symbol:         rate.Symbol,
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
		LastUpdatedAt:  rate.LastUpdatedAt,
		LastUpdatedBy:  rate.LastUpdatedBy,
	}
}

// ToRateTableResponse converts a rate table to its response.
func ToRateTableResponse(base string, table domain.RateTable) RateTableResponse {
	responses := make([]ExchangeRateResponse, len(table))
	for i := range table {
		responses[i] = ToExchangeRateResponse(&table[i])
	}
	return RateTableResponse{BaseCurrency: base, Rates: responses}
}
