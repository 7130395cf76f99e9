package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chernotour_http_requests_total",
		Help: "Total number of handled HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chernotour_http_request_duration_seconds",
		Help:    "HTTP request processing time in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Middleware собирает счетчик и гистограмму по каждому запросу
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath пустой для незарегистрированных роутов
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(
			c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler отдает метрики в формате Prometheus
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
