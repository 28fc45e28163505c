package domain

// Currency represents a display currency supported by the storefront.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int    `json:"precision"`    // Minor-unit digits, 2 for USD, 0 for JPY
	AuditFields
}
