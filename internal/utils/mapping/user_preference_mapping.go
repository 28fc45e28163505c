package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/models"
)

// ToModelUserPreference converts a domain UserPreference to its row, encoding
// the rate table as JSON.
func ToModelUserPreference(d domain.UserPreference) (models.UserPreference, error) {
	rates := d.Rates
	if rates == nil {
		rates = domain.RateTable{}
	}
	encoded, err := json.Marshal(rates)
	if err != nil {
		return models.UserPreference{}, fmt.Errorf("failed to encode rate table for user %s: %w", d.UserID, err)
	}
	return models.UserPreference{
		UserID:       d.UserID,
		CurrencyCode: d.CurrencyCode,
		Rates:        encoded,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainUserPreference converts a row back to a domain UserPreference.
func ToDomainUserPreference(m models.UserPreference) (domain.UserPreference, error) {
	var rates domain.RateTable
	if len(m.Rates) > 0 {
		if err := json.Unmarshal(m.Rates, &rates); err != nil {
			return domain.UserPreference{}, fmt.Errorf("failed to decode rate table for user %s: %w", m.UserID, err)
		}
	}
	return domain.UserPreference{
		UserID:       m.UserID,
		CurrencyCode: m.CurrencyCode,
		Rates:        rates,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}, nil
}
