package mapping

import (
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		IsoCode:        d.IsoCode,
		CurrentRate:    d.CurrentRate,
		Symbol:         d.Symbol,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		IsoCode:        m.IsoCode,
		CurrentRate:    m.CurrentRate,
		Symbol:         m.Symbol,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRateTable converts model rows into a rate table.
func ToDomainRateTable(ms []models.ExchangeRate) domain.RateTable {
	table := make(domain.RateTable, len(ms))
	for i, m := range ms {
		table[i] = ToDomainExchangeRate(m)
	}
	return table
}
