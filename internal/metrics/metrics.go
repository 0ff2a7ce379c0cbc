package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Audit trail
	ResolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "audit_resolve_duration_seconds",
			Help:    "Duration of one audit trail resolution pass.",
			Buckets: prometheus.DefBuckets,
		},
	)
	EntriesResolved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_entries_resolved_total",
			Help: "Total audit entries resolved",
		},
	)
	LookupFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_lookup_failures_total",
			Help: "Batched lookups that failed and were skipped",
		},
		[]string{"kind"},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(ResolveDuration)
		prometheus.MustRegister(EntriesResolved)
		prometheus.MustRegister(LookupFailures)
	})
}
