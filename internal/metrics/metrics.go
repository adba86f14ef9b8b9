package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskstarter_requests_total",
		Help: "Anzahl der HTTP-Anfragen.",
	}, []string{"handler", "method", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taskstarter_request_duration_seconds",
		Help:    "Dauer der HTTP-Anfragen in Sekunden.",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler", "method"})

	TasksEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskstarter_tasks_enqueued_total",
		Help: "Anzahl erfolgreich eingereihter Tasks.",
	}, []string{"queue", "task"})

	EnqueueFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskstarter_enqueue_failures_total",
		Help: "Anzahl fehlgeschlagener Einreihungen.",
	}, []string{"queue", "task"})

	// TasksProcessed zählt die Ergebnisse im Worker, status ist "ok" oder "error".
	TasksProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskstarter_tasks_processed_total",
		Help: "Anzahl vom Worker verarbeiteter Tasks.",
	}, []string{"task", "status"})
)

func ObserveRequest(handler, method, status string, seconds float64) {
	RequestCounter.WithLabelValues(handler, method, status).Inc()
	RequestDuration.WithLabelValues(handler, method).Observe(seconds)
}
