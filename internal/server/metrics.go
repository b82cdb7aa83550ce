package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests     *prometheus.CounterVec
	readDuration prometheus.Histogram
}

var sharedMetrics = &metrics{
	requests: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logdeck",
		Name:      "api_requests_total",
		Help:      "API requests by route.",
	}, []string{"route"}),
	readDuration: promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "logdeck",
		Name:      "log_read_seconds",
		Help:      "Wall time of one log window or tail read.",
		Buckets:   prometheus.DefBuckets,
	}),
}

// newMetrics returns the process-wide metrics set. Prometheus registers
// collectors globally, so construction is shared.
func newMetrics() *metrics {
	return sharedMetrics
}

func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.requests.WithLabelValues(route).Inc()
		next(w, r)
	}
}

// observeRead records the duration of one file read pass.
func (s *Server) observeRead(start time.Time) {
	s.metrics.readDuration.Observe(time.Since(start).Seconds())
}
