package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates the service's prometheus metrics
type Collector struct {
	registry            *prometheus.Registry
	ledgerOperations    *prometheus.CounterVec
	operationDuration   *prometheus.HistogramVec
	flaggedTransactions *prometheus.CounterVec
	rescanDuration      prometheus.Histogram
	rescanScanned       prometheus.Gauge
	rescanFlagged       prometheus.Gauge
}

// NewCollector creates a collector with its own registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		ledgerOperations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total number of ledger operations by type and outcome",
		}, []string{"type", "status"}),
		operationDuration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Time taken to complete a ledger operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),
		flaggedTransactions: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "fraud_flagged_transactions_total",
			Help: "Total number of transactions flagged, by detection source",
		}, []string{"source"}),
		rescanDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "fraud_rescan_duration_seconds",
			Help:    "Time taken by a batch fraud rescan",
			Buckets: prometheus.DefBuckets,
		}),
		rescanScanned: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "fraud_rescan_scanned_senders",
			Help: "Distinct senders scanned by the last batch rescan",
		}),
		rescanFlagged: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "fraud_rescan_newly_flagged",
			Help: "Records newly flagged by the last batch rescan",
		}),
	}
}

// RecordOperation records one ledger operation outcome
func (m *Collector) RecordOperation(opType, status string, duration time.Duration) {
	m.ledgerOperations.WithLabelValues(opType, status).Inc()
	m.operationDuration.WithLabelValues(opType).Observe(duration.Seconds())
}

// RecordFlagged records a flagged transaction by detection source
func (m *Collector) RecordFlagged(source string) {
	m.flaggedTransactions.WithLabelValues(source).Inc()
}

// RecordRescan records the outcome of a batch rescan
func (m *Collector) RecordRescan(scannedSenders, newlyFlagged int, duration time.Duration) {
	m.rescanDuration.Observe(duration.Seconds())
	m.rescanScanned.Set(float64(scannedSenders))
	m.rescanFlagged.Set(float64(newlyFlagged))
}

// Handler returns the /metrics HTTP handler for this collector's registry
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
