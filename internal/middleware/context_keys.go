package middleware

import (
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Keys used to store the viewer's identity in the Gin context.
const (
	userIDKey   = contextKey("userID")
	deviceIDKey = contextKey("deviceID")
)

// GetUserIDFromContext retrieves the viewer's user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetDeviceIDFromContext retrieves the viewer's device ID from the Gin context.
func GetDeviceIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, deviceIDKey)
}

// GetViewerFromContext returns the identity used to resolve currency preferences.
func GetViewerFromContext(c *gin.Context) domain.PreferenceQuery {
	userID, _ := GetUserIDFromContext(c)
	deviceID, _ := GetDeviceIDFromContext(c)
	return domain.PreferenceQuery{UserID: userID, DeviceID: deviceID}
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	val, exists := c.Get(string(key))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(key).(string); ok && v != "" {
			return v, true
		}
		return "", false
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
