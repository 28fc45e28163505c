package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/workspace_storefront/internal/obs"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latencies per matched route.
func MetricsMiddleware(m *obs.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		m.InFlight.Inc()
		start := time.Now()
		c.Next()
		m.InFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.ReqTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.ReqDur.WithLabelValues(c.Request.Method, route).Observe(obs.DurationMillis(time.Since(start)))
	}
}
