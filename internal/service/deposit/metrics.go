package deposit

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"locker-service/internal/entities"
)

var depositsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "locker_deposits_total",
		Help: "Deposit attempts by outcome",
	},
	[]string{"outcome"},
)

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, entities.ErrNoMatchingPendingShipment):
		return "no_match"
	case errors.Is(err, entities.ErrLockerNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrInvalidState):
		return "invalid_state"
	default:
		return "error"
	}
}
