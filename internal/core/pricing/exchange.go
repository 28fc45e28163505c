package pricing

import (
	"strings"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/utils/currency"
)

// ConversionOutcome describes how a single amount was rendered.
type ConversionOutcome string

const (
	OutcomeConverted ConversionOutcome = "converted"
	OutcomeFallback  ConversionOutcome = "fallback"
	OutcomeError     ConversionOutcome = "error"
)

// displayPlaces is the precision of converted amounts.
const displayPlaces = 2

// Convert renders baseMinor (an amount in the marketplace base currency) in the
// target currency using rates. When rates has no usable entry for target, the
// unconverted base-currency string is returned.
func Convert(baseMinor int64, base domain.Currency, target string, rates domain.RateTable) (string, error) {
	s, _, err := convert(baseMinor, base, target, rates)
	return s, err
}

func convert(baseMinor int64, base domain.Currency, target string, rates domain.RateTable) (string, ConversionOutcome, error) {
	amount := domain.NewMoney(baseMinor, base.CurrencyCode)
	baseStr, err := currency.Format(amount, base.Symbol)
	if err != nil {
		return "", OutcomeError, err
	}
	if target == "" || strings.EqualFold(target, base.CurrencyCode) {
		return baseStr, OutcomeFallback, nil
	}
	rate, ok := rates.Lookup(target)
	if !ok || !rate.CurrentRate.IsPositive() {
		return baseStr, OutcomeFallback, nil
	}
	major, err := currency.ToMajorDecimal(amount)
	if err != nil {
		return "", OutcomeError, err
	}
	symbol := rate.Symbol
	if symbol == "" {
		symbol = currency.SymbolFor(rate.IsoCode)
	}
	converted := major.Mul(rate.CurrentRate).Round(displayPlaces)
	return currency.FormatMajor(converted, symbol, displayPlaces), OutcomeConverted, nil
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithObserver reports the outcome of every formatted amount, for metrics.
func WithObserver(fn func(ConversionOutcome)) ConverterOption {
	return func(c *Converter) {
		c.observe = fn
	}
}

// Converter formats amounts for one viewer. It is bound to a single resolved
// Preferences value so that every amount of a breakdown uses the same rate.
type Converter struct {
	base    domain.Currency
	prefs   domain.Preferences
	observe func(ConversionOutcome)
}

// NewConverter binds base currency and viewer preferences.
func NewConverter(base domain.Currency, prefs domain.Preferences, opts ...ConverterOption) *Converter {
	c := &Converter{base: base, prefs: prefs}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Base returns the marketplace base currency.
func (c *Converter) Base() domain.Currency {
	return c.base
}

// Preferences returns the preferences the converter was bound to.
func (c *Converter) Preferences() domain.Preferences {
	return c.prefs
}

// Format renders m for display. Amounts in the base currency are converted to the
// preferred currency when a rate exists; amounts in any other currency are shown
// unconverted in their own currency. m itself is never modified.
func (c *Converter) Format(m domain.Money) (string, error) {
	var (
		s       string
		outcome ConversionOutcome
		err     error
	)
	if strings.EqualFold(m.Currency(), c.base.CurrencyCode) {
		s, outcome, err = convert(m.Amount(), c.base, c.prefs.Currency, c.prefs.Rates)
	} else {
		outcome = OutcomeFallback
		s, err = currency.Format(m, "")
		if err != nil {
			outcome = OutcomeError
		}
	}
	if c.observe != nil {
		c.observe(outcome)
	}
	return s, err
}
