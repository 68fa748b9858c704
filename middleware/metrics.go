package middleware

import (
	"strconv"
	"time"

	"findmylocal/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency by matched route.
func MetricsMiddleware(metrics *utils.MetricsManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestLatency.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
