package currency

import (
	"strings"
	"unicode"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbolPrinter = message.NewPrinter(language.English)

// SymbolFor returns the English CLDR symbol of code ("$", "€", "A$"). Codes
// without a symbol render as "CODE ".
func SymbolFor(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return code + " "
	}
	symbol := symbolPrinter.Sprint(xcurrency.Symbol(unit))
	if isLetters(symbol) {
		return symbol + " "
	}
	return symbol
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// FormatMajor renders a major-unit amount as symbol + fixed decimals. Negative
// amounts keep the minus in front of the symbol: -$20.00.
func FormatMajor(amount decimal.Decimal, symbol string, places int32) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(places)
	}
	return symbol + amount.StringFixed(places)
}

// Format renders a Money value in its own currency with the given symbol.
// An empty symbol falls back to SymbolFor.
func Format(m domain.Money, symbol string) (string, error) {
	precision, err := PrecisionFor(m.Currency())
	if err != nil {
		return "", err
	}
	major, err := ToMajorDecimal(m)
	if err != nil {
		return "", err
	}
	if symbol == "" {
		symbol = SymbolFor(m.Currency())
	}
	return FormatMajor(major, symbol, int32(precision)), nil
}
