package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workspace_storefront/internal/core/ports/services"
	"github.com/SscSPs/workspace_storefront/internal/dto"
	"github.com/SscSPs/workspace_storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:isoCode", h.getExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Set the current exchange rate of a currency
// @Description Stores how many units of the currency one unit of the base currency buys. Replaces any previous rate.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string true "Operator user ID"
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Warn("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorID), slog.String("iso_code", req.IsoCode))

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate saved", slog.String("exchange_rate_id", rate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary Get the marketplace rate table
// @Description Lists every current rate relative to the base currency
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	table, err := h.exchangeRateService.RateTable(ctx)
	if err != nil {
		respondError(c, logger, err, "Failed to list exchange rates")
		return
	}

	base := h.exchangeRateService.BaseCurrency(ctx)
	c.JSON(http.StatusOK, dto.ToRateTableResponse(base.CurrencyCode, table))
}

// getExchangeRate godoc
// @Summary Get the current exchange rate of a currency
// @Tags exchange rates
// @Produce  json
// @Param   isoCode path string true "ISO 4217 code" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{isoCode} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	isoCode := c.Param("isoCode")
	logger = logger.With(slog.String("iso_code", isoCode))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), isoCode)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
