package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	workflowRequestsTotal  *prometheus.CounterVec
	workflowLatencySeconds *prometheus.HistogramVec
	workflowErrorsTotal    *prometheus.CounterVec
	transitionsTotal       *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors for the approval
// workflow.
func RegisterMetrics() {
	registerOnce.Do(func() {
		workflowRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gatepass_requests_total",
			Help: "Total number of workflow API requests served.",
		}, []string{"method", "route", "status"})

		workflowLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gatepass_latency_seconds",
			Help:    "Latency distribution for workflow API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		workflowErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gatepass_errors_total",
			Help: "Total number of error responses returned by workflow endpoints.",
		}, []string{"method", "route", "status"})

		transitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gatepass_transitions_total",
			Help: "Leave request status transitions by resulting status.",
		}, []string{"status"})

		prometheus.MustRegister(workflowRequestsTotal, workflowLatencySeconds, workflowErrorsTotal, transitionsTotal)
	})
}

// WorkflowRequests exposes the counter for workflow requests.
func WorkflowRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return workflowRequestsTotal
}

// WorkflowLatency exposes the latency histogram for workflow requests.
func WorkflowLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return workflowLatencySeconds
}

// WorkflowErrors exposes the counter for workflow error responses.
func WorkflowErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return workflowErrorsTotal
}

// Transitions exposes the counter for observed status transitions.
func Transitions() *prometheus.CounterVec {
	RegisterMetrics()
	return transitionsTotal
}
