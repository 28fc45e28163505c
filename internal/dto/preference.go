package dto

import (
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateEntry is one entry of a client supplied rate table.
type RateEntry struct {
	IsoCode     string          `json:"iso_code" binding:"required,iso4217"`
	CurrentRate decimal.Decimal `json:"current_rate"`
	Symbol      string          `json:"symbol"`
}

// SavePreferenceRequest stores a viewer's display currency. When Rates is
// omitted the current marketplace rate table is stored with it.
type SavePreferenceRequest struct {
	CurrencyCode string      `json:"currencyCode" binding:"required,iso4217"`
	Rates        []RateEntry `json:"rates" binding:"omitempty,dive"`
}

// PreferenceResponse is the resolved preference of a viewer.
type PreferenceResponse struct {
	Currency string      `json:"currency"`
	Source   string      `json:"source"`
	Rates    []RateEntry `json:"rates"`
}

// ToRateTable converts request entries to a domain rate table.
func ToRateTable(entries []RateEntry) domain.RateTable {
	if entries == nil {
		return nil
	}
	table := make(domain.RateTable, len(entries))
	for i, e := range entries {
		table[i] = domain.ExchangeRate{IsoCode: e.IsoCode, CurrentRate: e.CurrentRate, Symbol: e.Symbol}
	}
	return table
}

// ToPreferenceResponse converts resolved preferences to a response.
func ToPreferenceResponse(p domain.Preferences) PreferenceResponse {
	rates := make([]RateEntry, len(p.Rates))
	for i, r := range p.Rates {
		rates[i] = RateEntry{IsoCode: r.IsoCode, CurrentRate: r.CurrentRate, Symbol: r.Symbol}
	}
	return PreferenceResponse{Currency: p.Currency, Source: string(p.Source), Rates: rates}
}
