package services

import (
	portsrepo "github.com/SscSPs/workspace_storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_storefront/internal/core/ports/services"
	"github.com/SscSPs/workspace_storefront/internal/obs"
	"github.com/SscSPs/workspace_storefront/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, metrics *obs.PricingMetrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	rateOptions := []ExchangeRateOption{WithRateMetrics(metrics)}
	var deviceCache portsrepo.DevicePreferenceCache
	if repos.Cache != nil {
		rateOptions = append(rateOptions, WithRateTableCache(repos.Cache))
		deviceCache = repos.Cache
	}
	container.ExchangeRate = NewExchangeRateService(
		repos.ExchangeRateRepo,
		repos.CurrencyRepo,
		cfg.BaseCurrency,
		rateOptions...,
	)

	container.Preference = NewPreferenceService(
		repos.UserPreferenceRepo,
		deviceCache,
		container.ExchangeRate,
		metrics,
	)

	container.Pricing = NewPricingService(
		container.Preference,
		container.ExchangeRate,
		WithCommissions(cfg.CustomerCommissionPercent, cfg.ProviderCommissionPercent),
		WithPricingMetrics(metrics),
	)

	return container
}
