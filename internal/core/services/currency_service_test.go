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
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateCurrencyRequest{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "JPY" && c.Precision == 0 && c.CreatedBy == creatorID && c.LastUpdatedBy == creatorID
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("JPY", currency.CurrencyCode)
	suite.Equal("¥", currency.Symbol)
	suite.Equal(0, currency.Precision)
	suite.False(currency.CreatedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_PrecisionFromISO() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "KWD", Symbol: "KD", Name: "Kuwaiti Dinar"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, "operator")
	suite.Require().NoError(err)
	suite.Equal(3, currency.Precision)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_UnknownCode() {
	req := dto.CreateCurrencyRequest{CurrencyCode: "ZZZ", Symbol: "Z", Name: "Nothing"}

	currency, err := suite.service.CreateCurrency(context.Background(), req, "operator")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, "operator")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "eur")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Error() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, dbErr).Once()

	_, err := suite.service.ListCurrencies(ctx)

	suite.Require().Error(err)
	suite.True(errors.Is(err, dbErr))
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
