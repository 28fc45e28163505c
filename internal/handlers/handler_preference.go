package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workspace_storefront/internal/core/ports/services"
	"github.com/SscSPs/workspace_storefront/internal/dto"
	"github.com/SscSPs/workspace_storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferenceHandler handles the viewer's display currency.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvcFacade
}

func newPreferenceHandler(ps portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{preferenceService: ps}
}

// registerPreferenceRoutes registers routes related to currency preferences.
func registerPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.PreferenceSvcFacade) {
	h := newPreferenceHandler(preferenceService)

	preferences := rg.Group("/preferences")
	{
		preferences.GET("", h.getPreference)
		preferences.PUT("/users/:userID", h.saveUserPreference)
		preferences.PUT("/devices/:deviceID", h.saveDevicePreference)
	}
}

// getPreference godoc
// @Summary Resolve the viewer's currency preference
// @Description Profile preference of the user first, then the device's, else no conversion
// @Tags preferences
// @Produce  json
// @Param   X-User-ID header string false "Signed-in user ID"
// @Param   X-Device-ID header string false "Device ID"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 500 {object} map[string]string "Failed to resolve preference"
// @Router /preferences [get]
func (h *preferenceHandler) getPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	prefs, err := h.preferenceService.Resolve(c.Request.Context(), middleware.GetViewerFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to resolve preference")
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(prefs))
}

// saveUserPreference godoc
// @Summary Store a user's display currency
// @Description Rates default to the current marketplace rate table
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string true "Must match userID"
// @Param   userID path string true "User ID"
// @Param   preference body dto.SavePreferenceRequest true "Preference"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to save preference"
// @Router /preferences/users/{userID} [put]
func (h *preferenceHandler) saveUserPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	if viewerID, ok := middleware.GetUserIDFromContext(c); !ok || viewerID != userID {
		logger.Warn("Viewer may not change another user's preference", slog.String("user_id", userID))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req dto.SavePreferenceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	prefs, err := h.preferenceService.SaveUserPreference(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger.With(slog.String("user_id", userID)), err, "Failed to save preference")
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(prefs))
}

// saveDevicePreference godoc
// @Summary Store an anonymous device's display currency
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   X-Device-ID header string true "Must match deviceID"
// @Param   deviceID path string true "Device ID"
// @Param   preference body dto.SavePreferenceRequest true "Preference"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to save preference"
// @Router /preferences/devices/{deviceID} [put]
func (h *preferenceHandler) saveDevicePreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	deviceID := c.Param("deviceID")

	if viewerDevice, ok := middleware.GetDeviceIDFromContext(c); !ok || viewerDevice != deviceID {
		logger.Warn("Viewer may not change another device's preference", slog.String("device_id", deviceID))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req dto.SavePreferenceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	prefs, err := h.preferenceService.SaveDevicePreference(c.Request.Context(), deviceID, req)
	if err != nil {
		respondError(c, logger.With(slog.String("device_id", deviceID)), err, "Failed to save preference")
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(prefs))
}
