package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds every request with a deadline so a stalled database or
// cache call surfaces as a 503 instead of hanging the client.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
