package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal    *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickergate_fetches_total",
				Help: "Total number of upstream fetches by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickergate_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		upstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tickergate_upstream_duration_seconds",
				Help:    "Duration of upstream provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// RecordFetch records one upstream fetch outcome ("ok" or "error").
func (r *Recorder) RecordFetch(method, outcome string) {
	r.fetchesTotal.WithLabelValues(method, outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordUpstreamLatency records provider call latency in seconds.
func (r *Recorder) RecordUpstreamLatency(method string, seconds float64) {
	r.upstreamLatency.WithLabelValues(method).Observe(seconds)
}
