package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SuggestionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_suggestions_generated_total",
			Help: "Suggestions generated by the rule engine, per rule type",
		},
		[]string{"rule_type"},
	)

	ReappearanceCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_suggestion_reappearances_total",
			Help: "Dismissed suggestions resurfaced after cooldown, per rule type",
		},
		[]string{"rule_type"},
	)

	RuleFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_rule_failures_total",
			Help: "Rules that panicked during evaluation, per rule type",
		},
		[]string{"rule_type"},
	)

	EvaluationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_evaluation_duration_seconds",
			Help:    "Duration of a full per-athlete evaluation run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SuggestionCounter)
	prometheus.MustRegister(ReappearanceCounter)
	prometheus.MustRegister(RuleFailureCounter)
	prometheus.MustRegister(EvaluationDuration)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
