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
)

// preferenceService resolves viewer preferences: the profile of a signed-in
// user wins over the device cache, and nothing stored means no conversion.
type preferenceService struct {
	BaseService
	prefRepo    portsrepo.UserPreferenceRepositoryFacade
	deviceCache portsrepo.DevicePreferenceCache
	rates       portssvc.ExchangeRateReaderSvc
	metrics     *obs.PricingMetrics
}

// NewPreferenceService creates the preference service. metrics may be nil.
func NewPreferenceService(
	prefRepo portsrepo.UserPreferenceRepositoryFacade,
	deviceCache portsrepo.DevicePreferenceCache,
	rates portssvc.ExchangeRateReaderSvc,
	metrics *obs.PricingMetrics,
) portssvc.PreferenceSvcFacade {
	return &preferenceService{
		prefRepo:    prefRepo,
		deviceCache: deviceCache,
		rates:       rates,
		metrics:     metrics,
	}
}

var _ portssvc.PreferenceSvcFacade = (*preferenceService)(nil)

func (s *preferenceService) Resolve(ctx context.Context, q domain.PreferenceQuery) (domain.Preferences, error) {
	prefs, err := s.resolve(ctx, q)
	if err != nil {
		return domain.Preferences{}, err
	}
	s.metrics.ObservePreference(string(prefs.Source))
	return prefs, nil
}

func (s *preferenceService) resolve(ctx context.Context, q domain.PreferenceQuery) (domain.Preferences, error) {
	if q.UserID != "" {
		stored, err := s.prefRepo.FindUserPreference(ctx, q.UserID)
		switch {
		case err == nil:
			return domain.Preferences{
				Currency: stored.CurrencyCode,
				Rates:    stored.Rates,
				Source:   domain.PreferenceFromUser,
			}, nil
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to load user preference", slog.String("user_id", q.UserID))
			return domain.Preferences{}, fmt.Errorf("failed to resolve preference: %w", err)
		}
	}

	if q.DeviceID != "" && s.deviceCache != nil {
		prefs, ok, err := s.deviceCache.GetDevicePreference(ctx, q.DeviceID)
		if err != nil {
			s.LogWarn(ctx, err, "Failed to read device preference", slog.String("device_id", q.DeviceID))
		} else if ok {
			return prefs, nil
		}
	}

	return domain.NoConversion(), nil
}

// preparePreference validates the code and picks the rate table to store:
// the client's own table when given, else the current marketplace table.
func (s *preferenceService) preparePreference(ctx context.Context, req dto.SavePreferenceRequest) (string, domain.RateTable, error) {
	code := strings.ToUpper(req.CurrencyCode)
	if _, err := currencyutil.DivisorFor(code); err != nil {
		return "", nil, err
	}

	if req.Rates != nil {
		table := dto.ToRateTable(req.Rates)
		for i := range table {
			table[i].IsoCode = strings.ToUpper(table[i].IsoCode)
			if !table[i].CurrentRate.IsPositive() {
				return "", nil, fmt.Errorf("%w: rate for %s must be positive", apperrors.ErrValidation, table[i].IsoCode)
			}
		}
		return code, table, nil
	}

	table, err := s.rates.RateTable(ctx)
	if err != nil {
		return "", nil, err
	}
	return code, table, nil
}

func (s *preferenceService) SaveUserPreference(ctx context.Context, userID string, req dto.SavePreferenceRequest) (domain.Preferences, error) {
	if userID == "" {
		return domain.Preferences{}, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	code, table, err := s.preparePreference(ctx, req)
	if err != nil {
		return domain.Preferences{}, err
	}

	now := time.Now()
	pref := domain.UserPreference{
		UserID:       userID,
		CurrencyCode: code,
		Rates:        table,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.prefRepo.SaveUserPreference(ctx, pref); err != nil {
		s.LogError(ctx, err, "Failed to save user preference", slog.String("user_id", userID))
		return domain.Preferences{}, fmt.Errorf("failed to save user preference: %w", err)
	}

	s.LogInfo(ctx, "User preference saved",
		slog.String("user_id", userID),
		slog.String("currency_code", code))
	return domain.Preferences{Currency: code, Rates: table, Source: domain.PreferenceFromUser}, nil
}

func (s *preferenceService) SaveDevicePreference(ctx context.Context, deviceID string, req dto.SavePreferenceRequest) (domain.Preferences, error) {
	if deviceID == "" {
		return domain.Preferences{}, fmt.Errorf("%w: device id is required", apperrors.ErrValidation)
	}
	if s.deviceCache == nil {
		return domain.Preferences{}, errors.New("device preference cache is not configured")
	}
	code, table, err := s.preparePreference(ctx, req)
	if err != nil {
		return domain.Preferences{}, err
	}

	if err := s.deviceCache.SetDevicePreference(ctx, deviceID, code, table); err != nil {
		s.LogError(ctx, err, "Failed to save device preference", slog.String("device_id", deviceID))
		return domain.Preferences{}, fmt.Errorf("failed to save device preference: %w", err)
	}

	s.LogDebug(ctx, "Device preference saved",
		slog.String("device_id", deviceID),
		slog.String("currency_code", code))
	return domain.Preferences{Currency: code, Rates: table, Source: domain.PreferenceFromDevice}, nil
}
