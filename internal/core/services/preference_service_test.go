package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_storefront/internal/core/ports/services"
	"github.com/SscSPs/workspace_storefront/internal/core/services"
	"github.com/SscSPs/workspace_storefront/internal/dto"
	"github.com/SscSPs/workspace_storefront/internal/obs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PreferenceServiceTestSuite struct {
	suite.Suite
	prefRepo *MockUserPreferenceRepository
	cache    *MockCache
	rates    *MockRateReaderSvc
	metrics  *obs.PricingMetrics
	service  portssvc.PreferenceSvcFacade
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.prefRepo = new(MockUserPreferenceRepository)
	suite.cache = new(MockCache)
	suite.rates = new(MockRateReaderSvc)
	suite.metrics = obs.NewPricingMetrics("test", prometheus.NewRegistry())
	suite.service = services.NewPreferenceService(suite.prefRepo, suite.cache, suite.rates, suite.metrics)
}

func (suite *PreferenceServiceTestSuite) resolutions(source domain.PreferenceSource) float64 {
	return testutil.ToFloat64(suite.metrics.PreferenceResolutions.WithLabelValues(string(source)))
}

func (suite *PreferenceServiceTestSuite) TestResolve_UserWinsOverDevice() {
	ctx := context.Background()
	stored := &domain.UserPreference{UserID: "user-1", CurrencyCode: "EUR", Rates: domain.RateTable{eurRate()}}
	suite.prefRepo.On("FindUserPreference", ctx, "user-1").Return(stored, nil).Once()

	prefs, err := suite.service.Resolve(ctx, domain.PreferenceQuery{UserID: "user-1", DeviceID: "device-1"})

	suite.Require().NoError(err)
	suite.Equal("EUR", prefs.Currency)
	suite.Equal(domain.PreferenceFromUser, prefs.Source)
	suite.cache.AssertNotCalled(suite.T(), "GetDevicePreference", mock.Anything, mock.Anything)
	suite.Equal(float64(1), suite.resolutions(domain.PreferenceFromUser))
}

func (suite *PreferenceServiceTestSuite) TestResolve_FallsBackToDevice() {
	ctx := context.Background()
	devicePrefs := domain.Preferences{Currency: "GBP", Source: domain.PreferenceFromDevice}
	suite.prefRepo.On("FindUserPreference", ctx, "user-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.cache.On("GetDevicePreference", ctx, "device-1").Return(devicePrefs, true, nil).Once()

	prefs, err := suite.service.Resolve(ctx, domain.PreferenceQuery{UserID: "user-1", DeviceID: "device-1"})

	suite.Require().NoError(err)
	suite.Equal(devicePrefs, prefs)
	suite.Equal(float64(1), suite.resolutions(domain.PreferenceFromDevice))
}

func (suite *PreferenceServiceTestSuite) TestResolve_NothingStored() {
	ctx := context.Background()
	suite.cache.On("GetDevicePreference", ctx, "device-1").Return(domain.Preferences{}, false, nil).Once()

	prefs, err := suite.service.Resolve(ctx, domain.PreferenceQuery{DeviceID: "device-1"})

	suite.Require().NoError(err)
	suite.Equal(domain.NoConversion(), prefs)
	suite.Equal(float64(1), suite.resolutions(domain.PreferenceNone))
}

func (suite *PreferenceServiceTestSuite) TestResolve_Anonymous() {
	prefs, err := suite.service.Resolve(context.Background(), domain.PreferenceQuery{})

	suite.Require().NoError(err)
	suite.Equal(domain.PreferenceNone, prefs.Source)
	suite.prefRepo.AssertNotCalled(suite.T(), "FindUserPreference", mock.Anything, mock.Anything)
}

func (suite *PreferenceServiceTestSuite) TestResolve_DeviceCacheErrorIsIgnored() {
	ctx := context.Background()
	suite.cache.On("GetDevicePreference", ctx, "device-1").
		Return(domain.Preferences{}, false, errors.New("redis down")).Once()

	prefs, err := suite.service.Resolve(ctx, domain.PreferenceQuery{DeviceID: "device-1"})

	suite.Require().NoError(err)
	suite.Equal(domain.PreferenceNone, prefs.Source)
}

func (suite *PreferenceServiceTestSuite) TestResolve_RepositoryError() {
	ctx := context.Background()
	suite.prefRepo.On("FindUserPreference", ctx, "user-1").Return(nil, errors.New("connection reset")).Once()

	_, err := suite.service.Resolve(ctx, domain.PreferenceQuery{UserID: "user-1"})

	suite.Error(err)
}

func (suite *PreferenceServiceTestSuite) TestSaveUserPreference_SnapshotsMarketplaceRates() {
	ctx := context.Background()
	table := domain.RateTable{eurRate()}
	suite.rates.On("RateTable", ctx).Return(table, nil).Once()
	suite.prefRepo.On("SaveUserPreference", ctx, mock.MatchedBy(func(p domain.UserPreference) bool {
		return p.UserID == "user-1" && p.CurrencyCode == "EUR" && len(p.Rates) == 1 && p.CreatedBy == "user-1"
	})).Return(nil).Once()

	prefs, err := suite.service.SaveUserPreference(ctx, "user-1", dto.SavePreferenceRequest{CurrencyCode: "eur"})

	suite.Require().NoError(err)
	suite.Equal("EUR", prefs.Currency)
	suite.Equal(table, prefs.Rates)
	suite.Equal(domain.PreferenceFromUser, prefs.Source)
	suite.prefRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestSaveUserPreference_ClientRates() {
	ctx := context.Background()
	req := dto.SavePreferenceRequest{
		CurrencyCode: "GBP",
		Rates:        []dto.RateEntry{{IsoCode: "gbp", CurrentRate: decimal.RequireFromString("0.79"), Symbol: "£"}},
	}
	suite.prefRepo.On("SaveUserPreference", ctx, mock.AnythingOfType("domain.UserPreference")).Return(nil).Once()

	prefs, err := suite.service.SaveUserPreference(ctx, "user-1", req)

	suite.Require().NoError(err)
	rate, ok := prefs.Rate()
	suite.Require().True(ok)
	suite.Equal("GBP", rate.IsoCode)
	suite.rates.AssertNotCalled(suite.T(), "RateTable", mock.Anything)
}

func (suite *PreferenceServiceTestSuite) TestSaveUserPreference_RejectsNonPositiveRate() {
	req := dto.SavePreferenceRequest{
		CurrencyCode: "GBP",
		Rates:        []dto.RateEntry{{IsoCode: "GBP", CurrentRate: decimal.Zero}},
	}

	_, err := suite.service.SaveUserPreference(context.Background(), "user-1", req)

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.prefRepo.AssertNotCalled(suite.T(), "SaveUserPreference", mock.Anything, mock.Anything)
}

func (suite *PreferenceServiceTestSuite) TestSaveDevicePreference() {
	ctx := context.Background()
	table := domain.RateTable{eurRate()}
	suite.rates.On("RateTable", ctx).Return(table, nil).Once()
	suite.cache.On("SetDevicePreference", ctx, "device-1", "EUR", table).Return(nil).Once()

	prefs, err := suite.service.SaveDevicePreference(ctx, "device-1", dto.SavePreferenceRequest{CurrencyCode: "EUR"})

	suite.Require().NoError(err)
	suite.Equal(domain.PreferenceFromDevice, prefs.Source)
	suite.cache.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestSaveDevicePreference_MissingDevice() {
	_, err := suite.service.SaveDevicePreference(context.Background(), "", dto.SavePreferenceRequest{CurrencyCode: "EUR"})
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func TestPreferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}
