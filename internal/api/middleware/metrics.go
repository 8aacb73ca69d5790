package middleware

import (
	"strconv"

	"github.com/cloud-ru/rou-lease-go/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics считает HTTP запросы по шаблону маршрута и коду ответа
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.APICalls.WithLabelValues("http", route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
