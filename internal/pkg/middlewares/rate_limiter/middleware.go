package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"locker-service/internal/pkg/middlewares/metrics"
	"locker-service/pkg/logger"
)

const tooManyRequestsBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// Middleware applies one process wide bucket to every request.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.Allow() {
				reject(w, r, log, "global", strconv.Itoa(rateLimiterQPS))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LockerMiddleware limits controller attempts per {lockerId}. A limiter
// failure lets the request through.
func LockerMiddleware(log handlerLogger, limit int, limiter KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lockerID := mux.Vars(r)["lockerId"]
			if lockerID == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := limiter.Allow(r.Context(), lockerID)
			if err != nil {
				log.With(
					logger.NewField("locker_id", lockerID),
					logger.NewField("error", err),
				).Warn("locker attempt limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				reject(w, r, log.With(logger.NewField("locker_id", lockerID)), "locker", strconv.Itoa(limit))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, log handlerLogger, scope, limit string) {
	route := metrics.RouteTemplate(r)

	log.With(
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
		logger.NewField("route", route),
		logger.NewField("scope", scope),
		logger.NewField("remote_addr", r.RemoteAddr),
	).Warn("rate limit exceeded")

	RateLimitExceededTotal.WithLabelValues(r.Method, route, scope).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Limit", limit)
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	if _, err := w.Write([]byte(tooManyRequestsBody)); err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write rate limit response")
	}
}
