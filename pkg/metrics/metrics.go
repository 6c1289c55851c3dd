// Package metrics exposes Prometheus collectors for probe and batch
// activity, plus an optional /metrics exporter.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	probeSignals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainscout_probe_signals_total",
			Help: "Probe outcomes by probe name and signal value.",
		},
		[]string{"probe", "signal"},
	)

	probeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "domainscout_probe_duration_seconds",
			Help:    "Probe round-trip time by probe name.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"probe"},
	)

	classifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainscout_classifications_total",
			Help: "Final classifications by value.",
		},
		[]string{"classification"},
	)
)

func init() {
	prometheus.MustRegister(probeSignals, probeDuration, classifications)
}

// ObserveProbe records one probe outcome.
func ObserveProbe(probe, signal string, elapsed time.Duration) {
	probeSignals.WithLabelValues(probe, signal).Inc()
	probeDuration.WithLabelValues(probe).Observe(elapsed.Seconds())
}

// ObserveClassification records one final verdict.
func ObserveClassification(classification string) {
	classifications.WithLabelValues(classification).Inc()
}

// Serve starts the Prometheus exporter on addr. Blocks; run it in a
// goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
