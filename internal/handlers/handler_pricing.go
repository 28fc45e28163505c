package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workspace_storefront/internal/core/ports/services"
	"github.com/SscSPs/workspace_storefront/internal/dto"
	"github.com/SscSPs/workspace_storefront/internal/middleware"
	"github.com/SscSPs/workspace_storefront/internal/utils"
	"github.com/gin-gonic/gin"
)

// pricingHandler serves the price computations of the storefront.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
	posthog        *utils.PosthogClientWrapper
}

func newPricingHandler(ps portssvc.PricingSvcFacade, posthog *utils.PosthogClientWrapper) *pricingHandler {
	return &pricingHandler{pricingService: ps, posthog: posthog}
}

// registerPricingRoutes registers the pricing computation routes.
func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade, posthog *utils.PosthogClientWrapper) {
	h := newPricingHandler(pricingService, posthog)

	pricing := rg.Group("/pricing")
	{
		pricing.POST("/convert", h.convert)
		pricing.POST("/listing-price", h.listingPrice)
		pricing.POST("/duration", h.duration)
		pricing.POST("/breakdown", h.breakdown)
		pricing.POST("/breakdown/estimate", h.estimateBreakdown)
	}
}

// convert godoc
// @Summary Format an amount in the viewer's currency
// @Description Base currency amounts are converted with the viewer's rate; other currencies are shown as is
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string false "Signed-in user ID"
// @Param   X-Device-ID header string false "Device ID"
// @Param   request body dto.ConvertRequest true "Amount"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Router /pricing/convert [post]
func (h *pricingHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.pricingService.ConvertAmount(c.Request.Context(), middleware.GetViewerFromContext(c), req)
	if err != nil {
		respondError(c, logger, err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listingPrice godoc
// @Summary Card price of a listing
// @Description Lowest active price of the listing, falling back to its legacy price. Price is null when nothing should be shown.
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.ListingPriceRequest true "Listing"
// @Success 200 {object} dto.ListingPriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute listing price"
// @Router /pricing/listing-price [post]
func (h *pricingHandler) listingPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ListingPriceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.pricingService.ListingPrice(c.Request.Context(), middleware.GetViewerFromContext(c), req.Listing)
	if err != nil {
		respondError(c, logger.With(slog.String("listing_id", req.Listing.ID)), err, "Failed to compute listing price")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// duration godoc
// @Summary Billable quantity of a booking
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.DurationRequest true "Booking"
// @Success 200 {object} dto.DurationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Invalid duration, with messageKey"
// @Router /pricing/duration [post]
func (h *pricingHandler) duration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DurationRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.pricingService.BookingDuration(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to compute booking duration")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// breakdown godoc
// @Summary Breakdown of a transaction
// @Description Ordered, labelled rows of a transaction as seen by one role, in the viewer's currency
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.BreakdownRequest true "Transaction"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to build breakdown"
// @Router /pricing/breakdown [post]
func (h *pricingHandler) breakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BreakdownRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.pricingService.Breakdown(c.Request.Context(), middleware.GetViewerFromContext(c), req)
	if err != nil {
		respondError(c, logger.With(slog.String("transaction_id", req.Transaction.ID)), err, "Failed to build breakdown")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// estimateBreakdown godoc
// @Summary Breakdown of a booking before it is requested
// @Description Builds an estimated transaction from the listing and the booking form, then its breakdown
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.EstimateBreakdownRequest true "Booking form"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Invalid duration, with messageKey"
// @Failure 500 {object} map[string]string "Failed to estimate breakdown"
// @Router /pricing/breakdown/estimate [post]
func (h *pricingHandler) estimateBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EstimateBreakdownRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.pricingService.EstimateBreakdown(c.Request.Context(), middleware.GetViewerFromContext(c), req)
	if err != nil {
		respondError(c, logger.With(slog.String("listing_id", req.Listing.ID)), err, "Failed to estimate breakdown")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "booking_estimate_viewed", map[string]any{
		"listing_id":       req.Listing.ID,
		"rental_period":    req.RentalPeriod,
		"role":             resp.Role,
		"display_currency": resp.DisplayCurrency,
	})
	c.JSON(http.StatusOK, resp)
}
