package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds each request's context with the given deadline.
// Database calls inherit the deadline through the context, so an
// operation stuck waiting on the pool or the server fails with
// context.DeadlineExceeded instead of hanging indefinitely; the store
// layer surfaces that as a 503.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
