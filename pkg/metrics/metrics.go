// Package metrics defines the Prometheus collectors for an indexing and
// search run and exports them in the node-exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for one run. Each Metrics owns its
// registry so independent runs, and tests, never collide.
type Metrics struct {
	Registry           *prometheus.Registry
	DocsIndexedTotal   prometheus.Counter
	DocsFailedTotal    prometheus.Counter
	WordsIndexedTotal  prometheus.Counter
	IndexWords         prometheus.Gauge
	SearchQueriesTotal *prometheus.CounterVec
	SearchLatency      *prometheus.HistogramVec
	SearchResultsCount prometheus.Histogram
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		DocsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordindex_docs_indexed_total",
				Help: "Total documents added to the index.",
			},
		),
		DocsFailedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordindex_docs_failed_total",
				Help: "Total documents that could not be read or parsed.",
			},
		),
		WordsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordindex_words_indexed_total",
				Help: "Total word occurrences added to the index.",
			},
		),
		IndexWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordindex_index_words",
				Help: "Number of distinct words in the index.",
			},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordindex_search_queries_total",
				Help: "Total query lines by search mode and outcome (hit, zero_result, duplicate, empty).",
			},
			[]string{"mode", "result_type"},
		),
		SearchLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordindex_search_latency_seconds",
				Help:    "Search latency in seconds.",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"mode"},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordindex_search_results_count",
				Help:    "Number of ranked results per distinct query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
			},
		),
	}

	m.Registry.MustRegister(
		m.DocsIndexedTotal,
		m.DocsFailedTotal,
		m.WordsIndexedTotal,
		m.IndexWords,
		m.SearchQueriesTotal,
		m.SearchLatency,
		m.SearchResultsCount,
	)

	return m
}

// WriteTextfile atomically writes the current metric values to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
