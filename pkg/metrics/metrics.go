// Package metrics exposes Prometheus instruments for catalog loads.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "glazekb"

// Recorder publishes dataset load results on its own registry.
type Recorder struct {
	Registry *prometheus.Registry

	loads    *prometheus.CounterVec
	records  *prometheus.GaugeVec
	loading  prometheus.Gauge
	duration prometheus.Histogram
}

// NewRecorder creates a recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset decode attempts by kind and result.",
		}, []string{"kind", "result"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Records held per dataset after the last load.",
		}, []string{"kind"}),
		loading: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_loading",
			Help:      "1 while a catalog load is running.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_load_seconds",
			Help:      "Wall time of full catalog loads.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	r.Registry.MustRegister(r.loads, r.records, r.loading, r.duration)
	return r
}

func (r *Recorder) LoadStarted() {
	r.loading.Set(1)
}

func (r *Recorder) LoadFinished(elapsed time.Duration) {
	r.loading.Set(0)
	r.duration.Observe(elapsed.Seconds())
}

// DatasetLoaded records one dataset's outcome. result is "ok" on success.
func (r *Recorder) DatasetLoaded(kind, result string, count int) {
	r.loads.WithLabelValues(kind, result).Inc()
	r.records.WithLabelValues(kind).Set(float64(count))
}
