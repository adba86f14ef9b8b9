package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestCounter.WithLabelValues("/tasks/start", "GET", "200"))

	ObserveRequest("/tasks/start", "GET", "200", 0.01)
	ObserveRequest("/tasks/start", "GET", "200", 0.02)

	after := testutil.ToFloat64(RequestCounter.WithLabelValues("/tasks/start", "GET", "200"))
	assert.Equal(t, before+2, after)
	assert.Equal(t, 1, testutil.CollectAndCount(RequestDuration, "taskstarter_request_duration_seconds"))
}
