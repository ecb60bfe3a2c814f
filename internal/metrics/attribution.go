// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinbase_attributor",
		Subsystem: "decoder",
		Name:      "scripts_total",
		Help:      "Count of decoded input scripts.",
	}, []string{"source", "status"})

	attributionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinbase_attributor",
		Subsystem: "matcher",
		Name:      "attributions_total",
		Help:      "Count of attribution outcomes by the view that matched.",
	}, []string{"source", "view"})

	poolTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinbase_attributor",
		Subsystem: "matcher",
		Name:      "pool_records_total",
		Help:      "Count of records attributed to each pool.",
	}, []string{"source", "pool"})

	exportTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinbase_attributor",
		Subsystem: "export",
		Name:      "writes_total",
		Help:      "Count of export attempts per sink.",
	}, []string{"source", "sink", "status"})

	exportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinbase_attributor",
		Subsystem: "export",
		Name:      "write_duration_seconds",
		Help:      "Duration of writing one export file.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "sink", "status"})

	runTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinbase_attributor",
		Subsystem: "pipeline",
		Name:      "runs_total",
		Help:      "Count of pipeline runs.",
	}, []string{"source", "status"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinbase_attributor",
		Subsystem: "pipeline",
		Name:      "run_duration_seconds",
		Help:      "Duration of a full pipeline run.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 0.1s..~3.4m
	}, []string{"source", "status"})

	runRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "coinbase_attributor",
		Subsystem: "pipeline",
		Name:      "records",
		Help:      "Number of records processed by the last run.",
	}, []string{"source"})
)

// Attribution tracks metrics for the attribution pipeline.
type Attribution struct {
	source string
}

// NewAttribution constructs an Attribution collector labeled with the input source.
func NewAttribution(source string) *Attribution {
	if source == "" {
		source = "unknown"
	}
	return &Attribution{source: source}
}

// ObserveRecord records the decode and attribution outcome of one record.
func (m Attribution) ObserveRecord(rec model.TransactionRecord) {
	status := "success"
	if rec.Decoded.Failed() {
		status = "error"
	}
	decodeTotal.WithLabelValues(m.source, status).Inc()

	view := rec.Attribution.View
	if view == "" {
		view = model.ViewNone
	}
	attributionTotal.WithLabelValues(m.source, string(view)).Inc()
	if rec.Attribution.Matched() {
		poolTotal.WithLabelValues(m.source, rec.Attribution.PoolName).Inc()
	}
}

// ObserveExport records one sink write outcome and duration.
func (m Attribution) ObserveExport(sink string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	exportTotal.WithLabelValues(m.source, sink, status).Inc()
	exportDuration.WithLabelValues(m.source, sink, status).Observe(time.Since(started).Seconds())
}

// ObserveRun records a full run outcome.
func (m Attribution) ObserveRun(err error, records int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	runTotal.WithLabelValues(m.source, status).Inc()
	runDuration.WithLabelValues(m.source, status).Observe(time.Since(started).Seconds())
	runRecords.WithLabelValues(m.source).Set(float64(records))
}
