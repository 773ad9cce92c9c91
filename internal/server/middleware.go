package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gridbill/gridbill/internal/observability/metrics"
)

// MetricsMiddleware records request counts and latency per matched route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		status := strconv.Itoa(c.Writer.Status())
		metrics.ObserveHTTPRequest(c.Request.Method, route, status, time.Since(start))
	}
}
