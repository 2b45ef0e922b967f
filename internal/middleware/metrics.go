package middleware

import (
	"strconv"
	"time"

	"github.com/haierkeys/note-crud-service/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 记录请求数与耗时，未匹配路由统一记为 unmatched
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
