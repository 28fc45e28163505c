package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP responses. failMsg is shown for
// unexpected errors, whose details stay in the log.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	var durationErr *apperrors.DurationError
	switch {
	case errors.As(err, &durationErr):
		logger.Info("Invalid booking duration", slog.String("message_key", durationErr.MessageKey))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": durationErr.Error(), "messageKey": durationErr.MessageKey})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrCurrencyMismatch):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
