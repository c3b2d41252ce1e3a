package metrics

import (
	"net/http"
	"strconv"
	"time"

	"randstring/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// New records request counts and latencies by chi route pattern. Paths listed in skip
// (for example the scrape endpoint itself) pass through unrecorded.
func New(skip ...string) func(next http.Handler) http.Handler {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skipped[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				routePattern := "unknown"
				if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
					routePattern = rctx.RoutePattern()
				}

				metrics.HTTPRequestsTotal.WithLabelValues(
					r.Method,
					routePattern,
					strconv.Itoa(ww.Status()),
				).Inc()

				metrics.HTTPRequestDuration.WithLabelValues(
					r.Method,
					routePattern,
				).Observe(time.Since(start).Seconds())
			}()

			next.ServeHTTP(ww, r)
		}

		return http.HandlerFunc(fn)
	}
}
