package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// scraping pipeline.
type Metrics struct {
	EntriesConsumed prometheus.Counter
	RecordsProduced prometheus.Counter
	EntriesSkipped  *prometheus.CounterVec // labels: reason={missing_title,not_relevant,error}
	FeedErrors      prometheus.Counter
	SinkErrors      *prometheus.CounterVec // labels: sink={csv,json,kafka}
	PipelineRunning prometheus.Gauge
	RunDuration     prometheus.Histogram

	// Extraction quality metrics.
	DateFallbacks    prometheus.Counter
	UnknownLocations prometheus.Counter
	ExtractErrors    prometheus.Counter
	EntityCache      *prometheus.CounterVec // labels: result={hit,miss}
	GazetteerEntries prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		EntriesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "entries_consumed_total",
			Help:      "Total feed entries handed to the record assembler.",
		}),
		RecordsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "records_produced_total",
			Help:      "Total output records assembled.",
		}),
		EntriesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "entries_skipped_total",
			Help:      "Feed entries skipped, by reason.",
		}, []string{"reason"}),
		FeedErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "feed_errors_total",
			Help:      "Feed fetches that failed entirely.",
		}),
		SinkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "sink_errors_total",
			Help:      "Envelope writes that failed, by sink.",
		}, []string{"sink"}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "news_etl",
			Name:      "pipeline_running",
			Help:      "1 while a scrape pass is executing, 0 otherwise.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "news_etl",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete scrape pass across all feeds.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		DateFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "date_fallbacks_total",
			Help:      "Records whose pubDate could not be parsed and kept the raw value.",
		}),
		UnknownLocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "unknown_locations_total",
			Help:      "Records that resolved to the Unknown location sentinel.",
		}),
		ExtractErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "entity_extract_errors_total",
			Help:      "Entity extraction calls that failed and degraded to no candidates.",
		}),
		EntityCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "news_etl",
			Name:      "entity_cache_total",
			Help:      "Entity extraction cache lookups, by result.",
		}, []string{"result"}),
		GazetteerEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "news_etl",
			Name:      "gazetteer_entries",
			Help:      "Distinct place names loaded into the gazetteer.",
		}),
	}

	prometheus.MustRegister(
		m.EntriesConsumed,
		m.RecordsProduced,
		m.EntriesSkipped,
		m.FeedErrors,
		m.SinkErrors,
		m.PipelineRunning,
		m.RunDuration,
		m.DateFallbacks,
		m.UnknownLocations,
		m.ExtractErrors,
		m.EntityCache,
		m.GazetteerEntries,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		EntriesConsumed:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "news_etl", Name: "entries_consumed_total"}),
		RecordsProduced:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "news_etl", Name: "records_produced_total"}),
		EntriesSkipped:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "news_etl", Name: "entries_skipped_total"}, []string{"reason"}),
		FeedErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "news_etl", Name: "feed_errors_total"}),
		SinkErrors:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "news_etl", Name: "sink_errors_total"}, []string{"sink"}),
		PipelineRunning:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "news_etl", Name: "pipeline_running"}),
		RunDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "news_etl", Name: "run_duration_seconds"}),
		DateFallbacks:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "news_etl", Name: "date_fallbacks_total"}),
		UnknownLocations: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "news_etl", Name: "unknown_locations_total"}),
		ExtractErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "news_etl", Name: "entity_extract_errors_total"}),
		EntityCache:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "news_etl", Name: "entity_cache_total"}, []string{"result"}),
		GazetteerEntries: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "news_etl", Name: "gazetteer_entries"}),
	}
}
