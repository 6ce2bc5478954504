package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the gateway.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	speechTotal     prometheus.Counter
	scanTotal       prometheus.Counter
	routeTotal      prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	speechTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "speech_utterances_total",
		Help: "Total utterances queued on the speech engine",
	})

	scanTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ocr_scans_total",
		Help: "Total completed document scans",
	})

	routeTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "navigation_routes_total",
		Help: "Total navigation routes computed",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, speechTotal, scanTotal, routeTotal, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		speechTotal:     speechTotal,
		scanTotal:       scanTotal,
		routeTotal:      routeTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordUtterance counts a queued speech utterance.
func (m *MetricsService) RecordUtterance() {
	if m == nil {
		return
	}
	m.speechTotal.Inc()
}

// RecordScan counts a completed document scan.
func (m *MetricsService) RecordScan() {
	if m == nil {
		return
	}
	m.scanTotal.Inc()
}

// RecordRoute counts a computed navigation route.
func (m *MetricsService) RecordRoute() {
	if m == nil {
		return
	}
	m.routeTotal.Inc()
}
