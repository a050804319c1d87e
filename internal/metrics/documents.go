// Package metrics exposes folio's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Zachkp/folio/internal/loader"
)

var (
	// DocumentLoadStatus is 0 pending, 1 loaded, 2 failed.
	DocumentLoadStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "folio",
			Name:      "document_load_status",
			Help:      "Load status per document set (0 pending, 1 loaded, 2 failed)",
		},
		[]string{"document"},
	)

	DocumentLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "folio",
			Name:      "document_load_duration_seconds",
			Help:      "Time taken to fetch and decode a document set",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		},
		[]string{"document", "status"},
	)

	FilterResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "folio",
			Name:      "filter_results",
			Help:      "Number of records returned per filter action",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"view", "action"},
	)
)

func init() {
	prometheus.MustRegister(DocumentLoadStatus)
	prometheus.MustRegister(DocumentLoadDuration)
	prometheus.MustRegister(FilterResults)
}

// Recorder feeds loader and filter outcomes into the collectors.
type Recorder struct{}

// ObserveLoad implements loader.Observer.
func (Recorder) ObserveLoad(name string, status loader.Status, took time.Duration) {
	DocumentLoadStatus.WithLabelValues(name).Set(float64(status))
	DocumentLoadDuration.WithLabelValues(name, status.String()).Observe(took.Seconds())
}

// ObserveResults records the size of a filtered list.
func (Recorder) ObserveResults(view, action string, n int) {
	FilterResults.WithLabelValues(view, action).Observe(float64(n))
}

// MarkPending publishes the pending status for a document set before its load starts.
func MarkPending(name string) {
	DocumentLoadStatus.WithLabelValues(name).Set(float64(loader.Pending))
}

