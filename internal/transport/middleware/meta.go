package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestMeta collects facts discovered deeper in the stack (matched route,
// authenticated user) so outer middleware can report them after the
// handler returns. A request is served on one goroutine, so no locking.
type requestMeta struct {
	route  string
	userID uuid.UUID
}

type metaKey struct{}

// withMeta returns r carrying a requestMeta, reusing one installed by an
// outer middleware.
func withMeta(r *http.Request) (*http.Request, *requestMeta) {
	if m := metaFrom(r.Context()); m != nil {
		return r, m
	}
	m := &requestMeta{}
	return r.WithContext(context.WithValue(r.Context(), metaKey{}, m)), m
}

func metaFrom(ctx context.Context) *requestMeta {
	m, _ := ctx.Value(metaKey{}).(*requestMeta)
	return m
}

// TagRoute records the ServeMux pattern that matched the request. Wrap
// each registered handler with it; the pattern is only visible below the
// mux.
func TagRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m := metaFrom(r.Context()); m != nil {
			m.route = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}

func (m *requestMeta) routeOr(fallback string) string {
	if m.route == "" {
		return fallback
	}
	return m.route
}
