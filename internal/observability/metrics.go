package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the extraction pipeline.
type Metrics struct {
	CyclesTotal   prometheus.Counter
	CycleDuration prometheus.Histogram
	PipelineReady prometheus.Gauge

	// Per-zone extraction metrics.
	ZonesProcessed *prometheus.CounterVec   // labels: zone, status={ok,fetch_error,zone_not_found,period_not_found}
	FetchDuration  *prometheus.HistogramVec // labels: zone

	// Output metrics.
	RecordsWritten   prometheus.Counter
	RecordsPublished *prometheus.CounterVec // labels: status={ok,error}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "marine",
			Name:      "cycles_total",
			Help:      "Total completed extraction cycles.",
		}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "marine",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of a complete fetch-extract-write cycle.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		PipelineReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "marine",
			Name:      "pipeline_ready",
			Help:      "1 once the pipeline has completed a cycle, 0 before and after shutdown.",
		}),
		ZonesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marine",
			Name:      "zones_processed_total",
			Help:      "Zone extractions by zone ID and outcome.",
		}, []string{"zone", "status"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "marine",
			Name:      "fetch_request_duration_seconds",
			Help:      "Bulletin fetch duration in seconds by zone.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"zone"}),
		RecordsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "marine",
			Name:      "records_written_total",
			Help:      "Total forecast records written to CSV.",
		}),
		RecordsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marine",
			Name:      "records_published_total",
			Help:      "Forecast records published to Kafka by outcome.",
		}, []string{"status"}),
	}

	prometheus.MustRegister(
		m.CyclesTotal,
		m.CycleDuration,
		m.PipelineReady,
		m.ZonesProcessed,
		m.FetchDuration,
		m.RecordsWritten,
		m.RecordsPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CyclesTotal:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "marine", Name: "cycles_total"}),
		CycleDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "marine", Name: "cycle_duration_seconds"}),
		PipelineReady:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "marine", Name: "pipeline_ready"}),
		ZonesProcessed:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "marine", Name: "zones_processed_total"}, []string{"zone", "status"}),
		FetchDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "marine", Name: "fetch_request_duration_seconds"}, []string{"zone"}),
		RecordsWritten:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "marine", Name: "records_written_total"}),
		RecordsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "marine", Name: "records_published_total"}, []string{"status"}),
	}
}
