package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_storefront/internal/core/ports/services"
	"github.com/SscSPs/workspace_storefront/internal/dto"
	"github.com/SscSPs/workspace_storefront/internal/obs"
	currencyutil "github.com/SscSPs/workspace_storefront/internal/utils/currency"
	"github.com/google/uuid"
)

// exchangeRateService keeps one current rate per currency, relative to the
// marketplace base currency.
type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	cache        portsrepo.RateTableCache
	metrics      *obs.PricingMetrics
	baseCurrency string
}

// ExchangeRateOption is a functional option for configuring the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithRateTableCache serves RateTable from cache. Without it every call reads the database.
func WithRateTableCache(cache portsrepo.RateTableCache) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.cache = cache
	}
}

// WithRateMetrics records cache refresh results.
func WithRateMetrics(m *obs.PricingMetrics) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.metrics = m
	}
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	baseCurrency string,
	options ...ExchangeRateOption,
) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		baseCurrency: strings.ToUpper(baseCurrency),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error) {
	isoCode := strings.ToUpper(req.IsoCode)

	if !req.CurrentRate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if isoCode == s.baseCurrency {
		return nil, fmt.Errorf("%w: %s is the base currency", apperrors.ErrValidation, isoCode)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, isoCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, isoCode)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", isoCode, err)
	}

	symbol := req.Symbol
	if symbol == "" {
		symbol = currency.Symbol
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		IsoCode:        isoCode,
		CurrentRate:    req.CurrentRate,
		Symbol:         symbol,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("iso_code", isoCode))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateRateTable(ctx); err != nil {
			s.LogWarn(ctx, err, "Failed to invalidate rate table cache")
		}
	}

	// An existing rate keeps its id and creation audit, so read back what was stored.
	saved, err := s.rateRepo.FindExchangeRateByIsoCode(ctx, isoCode)
	if err != nil {
		return nil, fmt.Errorf("failed to read saved exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate saved",
		slog.String("iso_code", isoCode),
		slog.String("current_rate", req.CurrentRate.String()))
	return saved, nil
}

func (s *exchangeRateService) GetExchangeRate(ctx context.Context, isoCode string) (*domain.ExchangeRate, error) {
	isoCode = strings.ToUpper(isoCode)
	if len(isoCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindExchangeRateByIsoCode(ctx, isoCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// RateTable reads through the cache. Cache failures are logged and the
// database is used instead.
func (s *exchangeRateService) RateTable(ctx context.Context) (domain.RateTable, error) {
	if s.cache != nil {
		table, ok, err := s.cache.GetRateTable(ctx)
		if err != nil {
			s.LogWarn(ctx, err, "Failed to read rate table cache")
		} else if ok {
			return table, nil
		}
	}

	table, err := s.loadRateTable(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRateTable(ctx, table); err != nil {
			s.LogWarn(ctx, err, "Failed to store rate table cache")
		}
	}
	return table, nil
}

func (s *exchangeRateService) loadRateTable(ctx context.Context) (domain.RateTable, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}
	if rates == nil {
		return domain.RateTable{}, nil
	}
	return domain.RateTable(rates), nil
}

// BaseCurrency returns the stored base currency, or one derived from its ISO
// code when it has not been registered.
func (s *exchangeRateService) BaseCurrency(ctx context.Context) domain.Currency {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, s.baseCurrency)
	if err == nil && currency != nil {
		return *currency
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, err, "Failed to load base currency", slog.String("currency_code", s.baseCurrency))
	}

	precision, perr := currencyutil.PrecisionFor(s.baseCurrency)
	if perr != nil {
		precision = 2
	}
	return domain.Currency{
		CurrencyCode: s.baseCurrency,
		Symbol:       currencyutil.SymbolFor(s.baseCurrency),
		Name:         s.baseCurrency,
		Precision:    precision,
	}
}

// RefreshRateCache replaces the cached rate table with the database contents.
func (s *exchangeRateService) RefreshRateCache(ctx context.Context) (err error) {
	defer func() { s.metrics.ObserveRateRefresh(err) }()

	table, err := s.loadRateTable(ctx)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	if err = s.cache.SetRateTable(ctx, table); err != nil {
		s.LogError(ctx, err, "Failed to refresh rate table cache")
		return fmt.Errorf("failed to refresh rate table cache: %w", err)
	}

	s.LogDebug(ctx, "Rate table cache refreshed", slog.Int("rates", len(table)))
	return nil
}
