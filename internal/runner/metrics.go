package runner

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the runner's Prometheus collectors:
//   - argo_ta_bars_loaded_total        bars read from the source
//   - argo_ta_compute_seconds{indicator} compute duration per indicator
//   - argo_ta_indicator_failures_total{indicator}
//
// They live on a private registry so several runners can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	barsLoaded     prometheus.Counter
	computeSeconds *prometheus.HistogramVec
	failures       *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		barsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "argo_ta_bars_loaded_total",
			Help: "Bars loaded from the data source",
		}),
		computeSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "argo_ta_compute_seconds",
			Help:    "Indicator compute duration",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"indicator"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "argo_ta_indicator_failures_total",
			Help: "Indicator configure or compute failures",
		}, []string{"indicator"}),
	}

	m.Registry.MustRegister(m.barsLoaded, m.computeSeconds, m.failures)

	return m
}
