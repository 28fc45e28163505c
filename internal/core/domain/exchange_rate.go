package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts one major unit of the marketplace base currency into
// CurrentRate major units of IsoCode.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID,omitempty"`
	IsoCode        string          `json:"iso_code"`
	CurrentRate    decimal.Decimal `json:"current_rate"`
	Symbol         string          `json:"symbol"`
	AuditFields    `json:"-"`
}

// RateTable is the list of rates a viewer's amounts may be converted with.
type RateTable []ExchangeRate

// Lookup finds the rate for an ISO code. Codes are compared case-insensitively.
func (t RateTable) Lookup(isoCode string) (ExchangeRate, bool) {
	for _, r := range t {
		if strings.EqualFold(r.IsoCode, isoCode) {
			return r, true
		}
	}
	return ExchangeRate{}, false
}
