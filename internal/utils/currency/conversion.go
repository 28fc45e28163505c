// Package currency converts between major-unit decimal input ("10.50") and
// minor-unit integer amounts (1050), and formats amounts for display.
package currency

import (
	"fmt"
	"strings"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
)

// MaxSafeInteger is the largest minor-unit amount the storefront can represent
// exactly (2^53 - 1).
const MaxSafeInteger int64 = 1<<53 - 1

var maxSafe = decimal.NewFromInt(MaxSafeInteger)

// DivisorFor returns the minor-unit divisor of an ISO 4217 code: 100 for USD,
// 1 for JPY, 1000 for KWD.
func DivisorFor(code string) (int64, error) {
	unit, err := xcurrency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return 0, fmt.Errorf("%w: no minor-unit divisor configured for currency %q", apperrors.ErrValidation, code)
	}
	scale, _ := xcurrency.Standard.Rounding(unit)
	divisor := int64(1)
	for i := 0; i < scale; i++ {
		divisor *= 10
	}
	return divisor, nil
}

// PrecisionFor returns the number of minor-unit digits of an ISO 4217 code.
func PrecisionFor(code string) (int, error) {
	divisor, err := DivisorFor(code)
	if err != nil {
		return 0, err
	}
	return precisionOf(divisor)
}

func precisionOf(divisor int64) (int, error) {
	if divisor <= 0 {
		return 0, fmt.Errorf("%w: divisor must be a positive power of ten, got %d", apperrors.ErrValidation, divisor)
	}
	places := 0
	for d := divisor; d > 1; d /= 10 {
		if d%10 != 0 {
			return 0, fmt.Errorf("%w: divisor must be a positive power of ten, got %d", apperrors.ErrValidation, divisor)
		}
		places++
	}
	return places, nil
}

// ensureDotSeparator turns "10,50" into "10.50".
func ensureDotSeparator(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}

func parseMajor(valueMajor string) (decimal.Decimal, error) {
	normalized := ensureDotSeparator(valueMajor)
	if normalized == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is empty", apperrors.ErrValidation)
	}
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", apperrors.ErrValidation, valueMajor)
	}
	return value, nil
}

// ToSubUnit converts a major-unit decimal string into minor units. "10.50" with
// divisor 100 becomes 1050. Comma and dot separators are both accepted. The
// result must be a non-negative safe integer; fractional minor units are rejected.
func ToSubUnit(valueMajor string, divisor int64) (int64, error) {
	value, err := parseMajor(valueMajor)
	if err != nil {
		return 0, err
	}
	return toSubUnit(value, divisor)
}

// ToSubUnitFloat is ToSubUnit for numeric input.
func ToSubUnitFloat(valueMajor float64, divisor int64) (int64, error) {
	return toSubUnit(decimal.NewFromFloat(valueMajor), divisor)
}

func toSubUnit(value decimal.Decimal, divisor int64) (int64, error) {
	if _, err := precisionOf(divisor); err != nil {
		return 0, err
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("%w: amount %s is negative", apperrors.ErrValidation, value)
	}
	sub := value.Mul(decimal.NewFromInt(divisor))
	if sub.GreaterThan(maxSafe) {
		return 0, fmt.Errorf("%w: unsafe number %s exceeds the safe integer range", apperrors.ErrValidation, sub)
	}
	if !sub.IsInteger() {
		return 0, fmt.Errorf("%w: value %s is not divisible into minor units of 1/%d", apperrors.ErrValidation, value, divisor)
	}
	return sub.IntPart(), nil
}

// ToMajorDecimal converts a Money value back into major units.
func ToMajorDecimal(m domain.Money) (decimal.Decimal, error) {
	divisor, err := DivisorFor(m.Currency())
	if err != nil {
		return decimal.Zero, err
	}
	return m.Decimal().Div(decimal.NewFromInt(divisor)), nil
}

// ToMajorNumber converts a Money value into a float64 in major units, for
// display-only callers.
func ToMajorNumber(m domain.Money) (float64, error) {
	major, err := ToMajorDecimal(m)
	if err != nil {
		return 0, err
	}
	f, _ := major.Float64()
	return f, nil
}

// TruncateToPrecision cuts typed input down to the precision the divisor
// supports, without rounding: "10.555" becomes "10.55" for divisor 100.
// Incomplete input with a trailing separator ("10,") and input that already
// fits are returned unchanged. Comma input keeps its comma.
func TruncateToPrecision(valueMajor string, divisor int64) (string, error) {
	trimmed := strings.TrimSpace(valueMajor)
	if strings.HasSuffix(trimmed, ",") || strings.HasSuffix(trimmed, ".") {
		return valueMajor, nil
	}
	if _, err := precisionOf(divisor); err != nil {
		return "", err
	}
	value, err := parseMajor(trimmed)
	if err != nil {
		return "", err
	}
	div := decimal.NewFromInt(divisor)
	sub := value.Mul(div)
	if sub.IsInteger() {
		return valueMajor, nil
	}
	truncated := sub.Truncate(0).Div(div).String()
	if strings.Contains(trimmed, ",") {
		truncated = strings.ReplaceAll(truncated, ".", ",")
	}
	return truncated, nil
}
