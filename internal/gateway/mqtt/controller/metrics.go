package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NudgeRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locker_nudge_retries_total",
			Help: "Total number of command-pending publishes that needed a retry",
		},
		[]string{"result"},
	)

	NudgePublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "locker_nudge_publish_duration_seconds",
			Help:    "Duration of command-pending publishes including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"result"},
	)
)
