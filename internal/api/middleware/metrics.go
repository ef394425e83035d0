package middleware

import (
	"net/http"
	"strconv"
	"time"

	"credit-engine/internal/infrastructure/monitoring"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MetricsMiddleware records request counts and latencies per route pattern.
// The chi route pattern is used instead of the raw URL so that
// /api/customers/42 and /api/customers/43 share one label value.
func MetricsMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = r.URL.Path
			}
			monitoring.RecordHTTPRequest(r.Method, path, strconv.Itoa(ww.Status()), time.Since(start))
		})
	}
}
