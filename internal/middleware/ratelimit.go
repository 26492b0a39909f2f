package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles a route group with a shared token bucket.
// Used on the geocoding search route so one client can't burn through the
// external geocoder's quota.
func RateLimitMiddleware(rps rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rps, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too many requests, slow down", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
