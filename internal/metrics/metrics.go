package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// SearchDuration records how long an exhaustive route-split search took.
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "braess_search_duration_seconds",
			Help:    "Duration of exhaustive route-split searches in seconds.",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
	// AssignmentsEvaluated counts assignments scored across all searches.
	AssignmentsEvaluated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "braess_assignments_evaluated_total", Help: "Route assignments scored by the search."},
	)
	// ReportLookups counts report store lookups by store and outcome (hit, miss, error).
	ReportLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "braess_report_lookups_total", Help: "Report store lookups by store and outcome."},
		[]string{"store", "outcome"},
	)
)

var regOnce sync.Once

// Register adds every collector to Registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(SearchDuration)
		Registry.MustRegister(AssignmentsEvaluated)
		Registry.MustRegister(ReportLookups)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
