package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveSubmission(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.ObserveSubmission(OutcomeCreated, 10*time.Millisecond)
	m.ObserveSubmission(OutcomeMerged, 5*time.Millisecond)
	m.ObserveSubmission(OutcomeMerged, 5*time.Millisecond)
	m.IncSubmissionRetries()

	assert.InDelta(t, 1, testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeCreated)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeMerged)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.submissionRetries), 0)
}

func TestMetrics_RegisterTwiceFails(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	assert.Error(t, m.Register(reg))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSubmission(OutcomeFailed, time.Second)
		m.IncSubmissionRetries()
		m.IncEventPublishErrors()
		m.IncImportRows("skipped")
	})
}
