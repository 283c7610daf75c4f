// Package liveness derives locker online/offline status from the last
// heartbeat. The derivation happens on read; nothing sweeps stale lockers.
package liveness

import (
	"time"

	"locker-service/internal/entities"
)

const DefaultWindow = 2 * time.Minute

type Monitor struct {
	window time.Duration
	now    func() time.Time
}

func New(window time.Duration) *Monitor {
	return NewWithClock(window, time.Now)
}

func NewWithClock(window time.Duration, now func() time.Time) *Monitor {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Monitor{
		window: window,
		now:    now,
	}
}

func (m *Monitor) Now() time.Time {
	return m.now().UTC()
}

func (m *Monitor) Window() time.Duration {
	return m.window
}

// Status is online while now-lastHeartbeat is within the window, offline
// after it, unknown when no heartbeat was ever recorded.
func (m *Monitor) Status(lastHeartbeat *time.Time) entities.LivenessStatus {
	return m.StatusAt(lastHeartbeat, m.Now())
}

func (m *Monitor) StatusAt(lastHeartbeat *time.Time, now time.Time) entities.LivenessStatus {
	if lastHeartbeat == nil || lastHeartbeat.IsZero() {
		return entities.LivenessUnknown
	}
	if now.Sub(*lastHeartbeat) <= m.window {
		return entities.LivenessOnline
	}
	return entities.LivenessOffline
}
