package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "navigatorx"

// Metrics. prometheus collectors for the http api and the path search
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	searches         *prometheus.CounterVec
	searchExpansions prometheus.Histogram
	searchDuration   prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of http requests by method, path and status code.",
		}, []string{"method", "path", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of http requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_searches_total",
			Help:      "Number of A* path searches by outcome.",
		}, []string{"outcome"}),
		searchExpansions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_search_expansions",
			Help:      "Vertices expanded by a single A* path search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_search_duration_seconds",
			Help:      "Duration of a single A* path search.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.searches, m.searchExpansions, m.searchDuration)
	return m
}

func (m *Metrics) ObserveSearch(outcome string, expansions int, elapsed time.Duration) {
	m.searches.WithLabelValues(outcome).Inc()
	m.searchExpansions.Observe(float64(expansions))
	m.searchDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
