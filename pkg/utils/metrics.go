package utils

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are declared with plain prometheus instead of promauto so that
// registration stays explicit in InitMetrics.
var (
	// RequestCounter tracks the total number of HTTP requests.
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sorumat_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// ResponseTime measures HTTP response times.
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sorumat_http_response_time_seconds",
		Help:    "HTTP response time in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// ApiCallCounter tracks calls to external APIs (Gemini, identity provider).
	ApiCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sorumat_api_calls_total",
		Help: "Total number of external API calls",
	}, []string{"api", "status"})

	// ApiResponseTime measures external API response times.
	ApiResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sorumat_api_response_time_seconds",
		Help:    "External API response time in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"api"})

	// OcrProcessingTime measures the duration of one OCR pass.
	OcrProcessingTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sorumat_ocr_processing_time_seconds",
		Help:    "OCR processing time in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 3, 4, 5, 7.5, 10, 15, 20, 30},
	})

	// ErrorCounter tracks errors per service and type.
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sorumat_error_total",
		Help: "Total number of errors",
	}, []string{"service", "type"})

	// ServerMetric carries the periodic load/health/capacity gauges.
	ServerMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sorumat_server_metric",
		Help: "Server state gauges (load, healthy, capacity)",
	}, []string{"server", "metric"})
)

// InitMetrics registers all metrics on the default registry.
func InitMetrics() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(ApiCallCounter)
	prometheus.MustRegister(ApiResponseTime)
	prometheus.MustRegister(OcrProcessingTime)
	prometheus.MustRegister(ErrorCounter)
	prometheus.MustRegister(ServerMetric)
}

// RecordRequest records one handled HTTP request.
func RecordRequest(method, path string, status int, duration float64) {
	statusLabel := strconv.Itoa(status)
	RequestCounter.WithLabelValues(method, path, statusLabel).Inc()
	ResponseTime.WithLabelValues(method, path, statusLabel).Observe(duration)
}

// RecordApiCall records one external API call.
func RecordApiCall(apiName string, statusCode int, duration float64) {
	status := "success"
	if statusCode < 200 || statusCode >= 400 {
		status = "error"
	}
	ApiCallCounter.WithLabelValues(apiName, status).Inc()
	ApiResponseTime.WithLabelValues(apiName).Observe(duration)
}

// RecordError counts one error occurrence.
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// RecordOcrProcessingTime records the duration of one OCR pass.
func RecordOcrProcessingTime(duration float64) {
	OcrProcessingTime.Observe(duration)
}

// UpdateServerMetric sets one server state gauge.
func UpdateServerMetric(server, metric string, value float64) {
	ServerMetric.WithLabelValues(server, metric).Set(value)
}
