package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware bounds every request context by d. Repository calls and
// transactions started by handlers inherit the deadline.
func Middleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
