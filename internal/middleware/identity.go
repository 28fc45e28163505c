package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Headers identifying the viewer. They are identity hints, not credentials.
const (
	UserIDHeader   = "X-User-ID"
	DeviceIDHeader = "X-Device-ID"
)

// ViewerIDTag is the binding tag for viewer identifiers. It must be registered
// with gin's validator before ViewerIdentityMiddleware handles a request.
const ViewerIDTag = "viewer_id"

type viewerHeaders struct {
	UserID   string `header:"X-User-ID" binding:"omitempty,max=128,viewer_id"`
	DeviceID string `header:"X-Device-ID" binding:"omitempty,max=128,viewer_id"`
}

var headerForField = map[string]string{
	"UserID":   UserIDHeader,
	"DeviceID": DeviceIDHeader,
}

// IsViewerID accepts letters, digits, '-' and '_'.
func IsViewerID(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// ViewerIdentityMiddleware reads the viewer's user and device identifiers from
// the request headers and stores them in the Gin and request contexts.
// Malformed identifiers are rejected with 400.
func ViewerIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		var viewer viewerHeaders
		if err := c.ShouldBindHeader(&viewer); err != nil {
			header := "viewer identity header"
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				header = headerForField[verrs[0].StructField()]
			}
			logger.Warn("Malformed viewer identifier", slog.String("header", header), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": header + " is malformed"})
			return
		}

		ctx := c.Request.Context()
		if viewer.UserID != "" {
			c.Set(string(userIDKey), viewer.UserID)
			ctx = context.WithValue(ctx, userIDKey, viewer.UserID)
		}
		if viewer.DeviceID != "" {
			c.Set(string(deviceIDKey), viewer.DeviceID)
			ctx = context.WithValue(ctx, deviceIDKey, viewer.DeviceID)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
