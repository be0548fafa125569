package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveSearch("found", 12, 3*time.Millisecond)
	m.ObserveSearch("found", 40, time.Millisecond)
	m.ObserveSearch("budget_exhausted", 50000, 80*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("budget_exhausted")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.searchExpansions))
}

func TestObserveHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveHTTP("POST", "/api/findpath", 200, 5*time.Millisecond)
	m.ObserveHTTP("POST", "/api/findpath", 404, 2*time.Millisecond)
	m.ObserveHTTP("POST", "/api/findpath", 200, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/findpath", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/findpath", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpRequests))
}

func TestNewMetricsRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}
