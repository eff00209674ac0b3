// Package metrics exports Prometheus metrics for the summarizer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing,
// which keeps tests and the CLI free of registry setup.
type Metrics struct {
	registry *prometheus.Registry

	submissions       *prometheus.CounterVec
	generationLatency *prometheus.HistogramVec
	reportChars       prometheus.Histogram
	activeSessions    prometheus.GaugeFunc
}

// New registers the collectors on a fresh registry. sessions reports the
// number of live sessions at scrape time.
func New(sessions func() int) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{registry: registry}

	m.submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "medsum",
			Name:      "submissions_total",
			Help:      "Report submissions by outcome (succeeded or the failure kind)",
		},
		[]string{"source", "outcome"},
	)

	m.generationLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "medsum",
			Name:      "generation_latency_seconds",
			Help:      "Time spent waiting for the model endpoint",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"status"},
	)

	m.reportChars = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "medsum",
			Name:      "report_chars",
			Help:      "Characters in validated report text",
			Buckets:   prometheus.ExponentialBuckets(50, 2, 11),
		},
	)

	if sessions == nil {
		sessions = func() int { return 0 }
	}
	m.activeSessions = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "medsum",
			Name:      "active_sessions",
			Help:      "Number of live interactive sessions",
		},
		func() float64 { return float64(sessions()) },
	)

	registry.MustRegister(m.submissions, m.generationLatency, m.reportChars, m.activeSessions)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSubmission counts a finished submission.
func (m *Metrics) ObserveSubmission(source, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(source, outcome).Inc()
}

// ObserveGeneration records one endpoint call.
func (m *Metrics) ObserveGeneration(d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.generationLatency.WithLabelValues(status).Observe(d.Seconds())
}

// ObserveReportChars records the size of a report that passed validation.
func (m *Metrics) ObserveReportChars(n int) {
	if m == nil {
		return
	}
	m.reportChars.Observe(float64(n))
}
