package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// ItemOperationsTotal counts successful writes by operation
	// (created, updated, deleted).
	ItemOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "virtual_items",
			Name:      "operations_total",
			Help:      "Total virtual item writes by operation",
		},
		[]string{"operation"},
	)

	ImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "virtual_items",
			Name:      "import_rows_total",
			Help:      "CSV rows processed by import, by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordRequest records metrics for a completed HTTP request.
func RecordRequest(method, endpoint, status string, durationSeconds float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSeconds)
}

func RecordItemCreated() { ItemOperationsTotal.WithLabelValues("created").Inc() }
func RecordItemUpdated() { ItemOperationsTotal.WithLabelValues("updated").Inc() }
func RecordItemDeleted() { ItemOperationsTotal.WithLabelValues("deleted").Inc() }

// RecordImport records the outcome of one import run.
func RecordImport(imported, skipped int) {
	ImportRowsTotal.WithLabelValues("imported").Add(float64(imported))
	ImportRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
}
