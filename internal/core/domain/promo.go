package domain

import (
	"fmt"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Promo is a percentage coupon attached to a transaction.
type Promo struct {
	Code  string          `json:"code"`
	Value decimal.Decimal `json:"value"` // Percentage, 10 means 10%
}

var hundred = decimal.NewFromInt(100)

// Validate requires 0 < Value <= 100.
func (p Promo) Validate() error {
	if !p.Value.IsPositive() || p.Value.GreaterThan(hundred) {
		return fmt.Errorf("%w: promo value must be between 0 and 100, got %s", apperrors.ErrValidation, p.Value)
	}
	return nil
}

// Discount returns total * Value / 100 as a new Money value.
func (p Promo) Discount(total Money) Money {
	return total.MulDecimal(p.Value.Div(hundred))
}
