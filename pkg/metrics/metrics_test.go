package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDomainCounters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "studio")

	m.ObserveRescheduleTransition("approved")
	m.ObserveRescheduleTransition("approved")
	m.ObserveCapacityRejection("create_trial_booking")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RescheduleTransitions.WithLabelValues("approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CapacityRejections.WithLabelValues("create_trial_booking")))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRescheduleTransition("rejected")
		m.ObserveCapacityRejection("use_credit")
	})
}
