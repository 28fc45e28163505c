package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is an immutable amount in minor units (cents for USD) of a single currency.
// Every operation returns a new value; there are no setters.
type Money struct {
	amount   int64
	currency string
}

// NewMoney builds a Money value. The currency code is normalised to upper case.
func NewMoney(amount int64, currency string) Money {
	return Money{amount: amount, currency: strings.ToUpper(currency)}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return NewMoney(0, currency)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 { return m.amount }

// Currency returns the ISO 4217 code.
func (m Money) Currency() string { return m.currency }

func (m Money) IsZero() bool     { return m.amount == 0 }
func (m Money) IsPositive() bool { return m.amount > 0 }
func (m Money) IsNegative() bool { return m.amount < 0 }

// Decimal returns the minor-unit amount as a decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.amount)
}

func (m Money) checkCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s and %s", apperrors.ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}

// Add returns m + other. Both amounts must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount+other.amount, m.currency), nil
}

// Sub returns m - other. Both amounts must share a currency.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount-other.amount, m.currency), nil
}

// Neg returns -m.
func (m Money) Neg() Money {
	return NewMoney(-m.amount, m.currency)
}

// Abs returns |m|.
func (m Money) Abs() Money {
	if m.amount < 0 {
		return m.Neg()
	}
	return m
}

// MulDecimal multiplies the amount by factor and rounds half away from zero to
// whole minor units.
func (m Money) MulDecimal(factor decimal.Decimal) Money {
	total := m.Decimal().Mul(factor).Round(0)
	return NewMoney(total.IntPart(), m.currency)
}

// Sum adds amounts that all share currency. An empty list sums to zero.
func Sum(currency string, amounts ...Money) (Money, error) {
	total := Zero(currency)
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

type moneyJSON struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON renders Money as {"amount": 1050, "currency": "USD"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount, Currency: m.currency})
}

// UnmarshalJSON accepts the shape produced by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: invalid money value: %v", apperrors.ErrValidation, err)
	}
	*m = NewMoney(raw.Amount, raw.Currency)
	return nil
}
