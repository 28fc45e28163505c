package domain

// PreferenceSource records where a viewer's currency preference came from.
type PreferenceSource string

const (
	PreferenceFromUser   PreferenceSource = "user"
	PreferenceFromDevice PreferenceSource = "device"
	PreferenceNone       PreferenceSource = "none"
)

// Preferences is the viewer's display currency and the rate table to convert
// with. It is resolved once per computation and read-only afterwards.
type Preferences struct {
	Currency string           `json:"currency"`
	Rates    RateTable        `json:"rates"`
	Source   PreferenceSource `json:"source"`
}

// NoConversion is the preference used when nothing is stored for the viewer.
func NoConversion() Preferences {
	return Preferences{Source: PreferenceNone}
}

// Rate returns the rate for the preferred currency, if the table has one.
func (p Preferences) Rate() (ExchangeRate, bool) {
	if p.Currency == "" {
		return ExchangeRate{}, false
	}
	return p.Rates.Lookup(p.Currency)
}

// UserPreference is a stored profile preference of a signed-in user.
type UserPreference struct {
	UserID       string    `json:"userID"`
	CurrencyCode string    `json:"currencyCode"`
	Rates        RateTable `json:"rates"`
	AuditFields
}

// PreferenceQuery identifies the viewer whose preference should be resolved.
// Either field may be empty.
type PreferenceQuery struct {
	UserID   string
	DeviceID string
}
