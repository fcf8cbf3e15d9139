package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
	resultPanic = "panic"
)

var (
	TaskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walt_background_task_runs_total",
			Help: "Background task executions by result",
		},
		[]string{"task", "result"},
	)

	TaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "walt_background_task_duration_seconds",
			Help:    "Duration of background task executions",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"task"},
	)
)
