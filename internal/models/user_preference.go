package models

// UserPreference is a signed-in user's stored currency preference. Rates holds
// the jsonb encoded rate table the user last saw.
type UserPreference struct {
	UserID       string `json:"userID" db:"user_id"`
	CurrencyCode string `json:"currencyCode" db:"currency_code"`
	Rates        []byte `json:"rates" db:"rates"`
	AuditFields
}
