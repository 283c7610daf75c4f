package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal counts 429 answers. scope is "global" for the
// token bucket and "locker" for the per-locker attempt limit.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "locker_http_rate_limited_total",
		Help: "Requests rejected with 429 by a rate limiter",
	},
	[]string{"method", "route", "scope"},
)
