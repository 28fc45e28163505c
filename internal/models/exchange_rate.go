package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate stores how many units of IsoCode one unit of the marketplace
// base currency is worth. There is at most one row per ISO code.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID" db:"exchange_rate_id"` // Primary Key (UUID)
	IsoCode        string          `json:"isoCode" db:"iso_code"`                // FK -> Currency.currencyCode
	CurrentRate    decimal.Decimal `json:"currentRate" db:"current_rate"`
	Symbol         string          `json:"symbol" db:"symbol"`
	AuditFields
}
