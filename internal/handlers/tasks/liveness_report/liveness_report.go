package liveness_report

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"locker-service/internal/entities"
	"locker-service/pkg/logger"
)

var LockersByLiveness = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "locker_liveness_lockers",
		Help: "Number of lockers per derived liveness status",
	},
	[]string{"status"},
)

type Service interface {
	LivenessReport(ctx context.Context) (map[entities.LivenessStatus]int, error)
}

// LivenessReport periodically recomputes liveness for every locker and
// publishes the counts as gauges.
type LivenessReport struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	gauge    *prometheus.GaugeVec
}

func NewLivenessReport(log logger.Logger, service Service, interval time.Duration) *LivenessReport {
	return &LivenessReport{
		log:      log,
		service:  service,
		interval: interval,
		gauge:    LockersByLiveness,
	}
}

func (l *LivenessReport) TTL() time.Duration {
	return l.interval
}

func (l *LivenessReport) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	report, err := l.service.LivenessReport(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("liveness report: %w", err)
	}

	for status, count := range report {
		l.gauge.WithLabelValues(status.String()).Set(float64(count))
	}

	if offline := report[entities.LivenessOffline]; offline > 0 {
		l.log.With(
			logger.NewField("offline_lockers", offline),
		).Warn("lockers offline")
	}
	return nil
}

func (l *LivenessReport) Info() string {
	return "liveness report"
}
