package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// unmatchedRoute labels requests no registered pattern matched, keeping
// raw paths out of metric labels.
const unmatchedRoute = "unmatched"

// Metrics records the count and latency of every request by method,
// matched route and status.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			r, meta := withMeta(r)
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			rec.RecordHTTPRequest(r.Method, meta.routeOr(unmatchedRoute), sw.status, time.Since(start))
		})
	}
}
