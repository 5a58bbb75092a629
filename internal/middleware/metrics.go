package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/student-portal-api/internal/service"
)

// Metrics records method/path/status/duration for every request via the
// metrics service. A nil service disables collection.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
