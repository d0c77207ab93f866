package middleware

import (
	"strconv"
	"time"

	"deskbooker/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts, latency and in-flight gauge
// per route. The templated route path is used as the label, not the raw
// URL, so path cardinality stays bounded.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestsInFlight.Inc()

		c.Next()

		m.RequestsInFlight.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.RequestsTotal.WithLabelValues(method, path, status).Inc()
		m.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
