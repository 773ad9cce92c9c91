// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "gridbill_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	costComputeTotal   *prometheus.CounterVec
	costComputeLatency *prometheus.HistogramVec

	importRowsTotal *prometheus.CounterVec
)

// Init registers the instruments. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		costComputeTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cost_compute_total",
				Help: "Total cost computations by result",
			},
			[]string{"result"},
		)
		costComputeLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "cost_compute_latency_seconds",
				Help:    "Cost computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		importRowsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "import_rows_total",
				Help: "Total CSV import rows by kind and outcome",
			},
			[]string{"kind", "outcome"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			costComputeTotal,
			costComputeLatency,
			importRowsTotal,
		)
	})
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, route, status).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// ObserveCostCompute records one cost computation.
func ObserveCostCompute(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if costComputeTotal != nil {
		costComputeTotal.WithLabelValues(result).Inc()
	}
	if costComputeLatency != nil {
		costComputeLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// AddImportRows increments import row counters by count.
func AddImportRows(kind, outcome string, count int) {
	if count <= 0 {
		return
	}
	if importRowsTotal != nil {
		importRowsTotal.WithLabelValues(kind, outcome).Add(float64(count))
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError

	ImportKindMeter = "meter"
	ImportKindSolar = "solar"

	ImportOutcomeImported = "imported"
	ImportOutcomeSkipped  = "skipped"
)
