// Package metrics exposes Prometheus collectors for marker submissions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	MetricSubmissions        = "lightmap_submissions_total"
	MetricSubmissionRetries  = "lightmap_submission_retries_total"
	MetricSubmissionDuration = "lightmap_submission_duration_seconds"
	MetricEventPublishErrors = "lightmap_event_publish_errors_total"
	MetricImportRows         = "lightmap_import_rows_total"
)

// Submission outcomes, used as the "outcome" label.
const (
	OutcomeCreated = "created"
	OutcomeMerged  = "merged"
	OutcomeFailed  = "failed"
)

// Metrics holds the lightmap collectors. A nil *Metrics records nothing.
type Metrics struct {
	submissions        *prometheus.CounterVec
	submissionRetries  prometheus.Counter
	submissionDuration *prometheus.HistogramVec
	eventPublishErrors prometheus.Counter
	importRows         *prometheus.CounterVec
}

// NewMetrics creates unregistered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricSubmissions,
			Help: "Total number of observation submissions by outcome",
		}, []string{"outcome"}),
		submissionRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricSubmissionRetries,
			Help: "Total number of submissions retried after a concurrent write",
		}),
		submissionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricSubmissionDuration,
			Help:    "Histogram of submission latency in seconds, including lock wait and retries",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"outcome"}),
		eventPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricEventPublishErrors,
			Help: "Total number of marker events that could not be published",
		}),
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricImportRows,
			Help: "Total number of imported CSV rows by result",
		}, []string{"result"}),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

// Collectors returns all Prometheus collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.submissions,
		m.submissionRetries,
		m.submissionDuration,
		m.eventPublishErrors,
		m.importRows,
	}
}

// ObserveSubmission records one finished submission.
func (m *Metrics) ObserveSubmission(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.submissions.WithLabelValues(outcome).Inc()
	m.submissionDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// IncSubmissionRetries counts a retried submission attempt.
func (m *Metrics) IncSubmissionRetries() {
	if m == nil {
		return
	}

	m.submissionRetries.Inc()
}

// IncEventPublishErrors counts a dropped marker event.
func (m *Metrics) IncEventPublishErrors() {
	if m == nil {
		return
	}

	m.eventPublishErrors.Inc()
}

// IncImportRows counts an imported row by result.
func (m *Metrics) IncImportRows(result string) {
	if m == nil {
		return
	}

	m.importRows.WithLabelValues(result).Inc()
}
