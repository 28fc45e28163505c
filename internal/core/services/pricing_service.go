package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_storefront/internal/core/ports/services"
	"github.com/SscSPs/workspace_storefront/internal/core/pricing"
	"github.com/SscSPs/workspace_storefront/internal/dto"
	"github.com/SscSPs/workspace_storefront/internal/obs"
	currencyutil "github.com/SscSPs/workspace_storefront/internal/utils/currency"
	"github.com/shopspring/decimal"
)

type pricingService struct {
	BaseService
	preferences portssvc.PreferenceReaderSvc
	rates       portssvc.ExchangeRateReaderSvc
	metrics     *obs.PricingMetrics

	customerCommission decimal.Decimal
	providerCommission decimal.Decimal
	newID              func() string
}

// PricingOption is a functional option for configuring the pricing service
type PricingOption func(*pricingService)

// WithCommissions sets the marketplace commission percentages used for estimates.
func WithCommissions(customerPercent, providerPercent decimal.Decimal) PricingOption {
	return func(s *pricingService) {
		s.customerCommission = customerPercent
		s.providerCommission = providerPercent
	}
}

// WithPricingMetrics counts conversions and breakdowns.
func WithPricingMetrics(m *obs.PricingMetrics) PricingOption {
	return func(s *pricingService) {
		s.metrics = m
	}
}

// WithEstimateIDs replaces the id generator of estimated transactions.
func WithEstimateIDs(newID func() string) PricingOption {
	return func(s *pricingService) {
		s.newID = newID
	}
}

// NewPricingService creates the service behind the storefront's price displays.
func NewPricingService(
	preferences portssvc.PreferenceReaderSvc,
	rates portssvc.ExchangeRateReaderSvc,
	options ...PricingOption,
) portssvc.PricingSvcFacade {
	svc := &pricingService{
		preferences: preferences,
		rates:       rates,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// converterFor resolves the viewer's preference once. Every amount of a single
// response goes through the returned converter.
func (s *pricingService) converterFor(ctx context.Context, viewer domain.PreferenceQuery) (*pricing.Converter, error) {
	prefs, err := s.preferences.Resolve(ctx, viewer)
	if err != nil {
		return nil, err
	}
	base := s.rates.BaseCurrency(ctx)
	return pricing.NewConverter(base, prefs, pricing.WithObserver(func(o pricing.ConversionOutcome) {
		s.metrics.ObserveConversion(string(o))
	})), nil
}

func (s *pricingService) ConvertAmount(ctx context.Context, viewer domain.PreferenceQuery, req dto.ConvertRequest) (*dto.ConvertResponse, error) {
	conv, err := s.converterFor(ctx, viewer)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(req.Currency)
	if code == "" {
		code = conv.Base().CurrencyCode
	}

	var amount domain.Money
	switch {
	case req.Amount != nil && req.AmountMajor != "":
		return nil, fmt.Errorf("%w: give either amount or amountMajor, not both", apperrors.ErrValidation)
	case req.Amount != nil:
		amount = domain.NewMoney(*req.Amount, code)
	case req.AmountMajor != "":
		divisor, err := currencyutil.DivisorFor(code)
		if err != nil {
			return nil, err
		}
		minor, err := currencyutil.ToSubUnit(req.AmountMajor, divisor)
		if err != nil {
			return nil, err
		}
		amount = domain.NewMoney(minor, code)
	default:
		return nil, fmt.Errorf("%w: amount or amountMajor is required", apperrors.ErrValidation)
	}

	formatted, err := conv.Format(amount)
	if err != nil {
		return nil, err
	}

	prefs := conv.Preferences()
	return &dto.ConvertResponse{
		Amount:          amount,
		Formatted:       formatted,
		DisplayCurrency: prefs.Currency,
		Source:          string(prefs.Source),
	}, nil
}

func (s *pricingService) ListingPrice(ctx context.Context, viewer domain.PreferenceQuery, listing domain.Listing) (*dto.ListingPriceResponse, error) {
	price := pricing.DisplayPrice(listing)
	if price == nil {
		return &dto.ListingPriceResponse{}, nil
	}

	conv, err := s.converterFor(ctx, viewer)
	if err != nil {
		return nil, err
	}
	formatted, err := conv.Format(*price)
	if err != nil {
		return nil, err
	}
	return &dto.ListingPriceResponse{Price: price, Formatted: formatted}, nil
}

func (s *pricingService) BookingDuration(ctx context.Context, req dto.DurationRequest) (*dto.DurationResponse, error) {
	period := domain.RentalPeriod(req.RentalPeriod)
	end := req.End
	if period == domain.Monthly && req.Months > 0 {
		end = pricing.MonthlyEndDate(req.Start, req.Months)
	}
	booking := domain.Booking{Start: req.Start, End: end}

	units, err := pricing.BookingUnits(period, booking)
	if err != nil {
		s.LogDebug(ctx, "Booking duration rejected",
			slog.String("rental_period", req.RentalPeriod),
			slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.DurationResponse{
		Units:       units,
		UnitsLabel:  pricing.FormatUnits(period, units),
		PeriodLabel: pricing.FormatBookingPeriod(period, booking),
		End:         end,
	}, nil
}

func (s *pricingService) Breakdown(ctx context.Context, viewer domain.PreferenceQuery, req dto.BreakdownRequest) (*dto.BreakdownResponse, error) {
	role := domain.Role(req.Role)
	resp, err := s.breakdown(ctx, viewer, pricing.BreakdownInput{
		Transaction:  req.Transaction,
		Role:         role,
		RentalPeriod: domain.RentalPeriod(req.RentalPeriod),
		Promo:        req.Promo.ToPromo(),
	})
	s.metrics.ObserveBreakdown(string(role), "transaction", err)
	if err != nil {
		s.LogError(ctx, err, "Failed to build breakdown", slog.String("transaction_id", req.Transaction.ID))
		return nil, err
	}
	return resp, nil
}

func (s *pricingService) EstimateBreakdown(ctx context.Context, viewer domain.PreferenceQuery, req dto.EstimateBreakdownRequest) (*dto.BreakdownResponse, error) {
	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleCustomer
	}

	resp, err := s.estimate(ctx, viewer, role, req)
	s.metrics.ObserveBreakdown(string(role), "estimate", err)
	if err != nil {
		s.LogDebug(ctx, "Estimate rejected",
			slog.String("listing_id", req.Listing.ID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return resp, nil
}

func (s *pricingService) estimate(ctx context.Context, viewer domain.PreferenceQuery, role domain.Role, req dto.EstimateBreakdownRequest) (*dto.BreakdownResponse, error) {
	workspaces := make(map[domain.WorkspaceType]int, len(req.Workspaces))
	for k, v := range req.Workspaces {
		workspaces[domain.WorkspaceType(k)] = v
	}
	period := domain.RentalPeriod(req.RentalPeriod)

	tx, err := pricing.EstimateTransaction(pricing.EstimateParams{
		Listing:                   req.Listing,
		RentalPeriod:              period,
		Booking:                   domain.Booking{Start: req.Start, End: req.End},
		Workspaces:                workspaces,
		CustomerCommissionPercent: s.customerCommission,
		ProviderCommissionPercent: s.providerCommission,
		NewID:                     s.newID,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.breakdown(ctx, viewer, pricing.BreakdownInput{
		Transaction:  tx,
		Role:         role,
		RentalPeriod: period,
		Promo:        req.Promo.ToPromo(),
	})
	if err != nil {
		return nil, err
	}
	resp.Transaction = &tx
	return resp, nil
}

func (s *pricingService) breakdown(ctx context.Context, viewer domain.PreferenceQuery, in pricing.BreakdownInput) (*dto.BreakdownResponse, error) {
	conv, err := s.converterFor(ctx, viewer)
	if err != nil {
		return nil, err
	}
	b, err := pricing.BuildBreakdown(in, conv)
	if err != nil {
		return nil, err
	}
	resp := dto.ToBreakdownResponse(b, conv.Preferences())
	return &resp, nil
}
