package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/pkg/ctxutil"
)

// Client-facing messages of the authentication gate.
const (
	MsgNoToken     = "Not authorized, no token"
	MsgTokenFailed = "Not authorized, token failed"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

// RequireAuth rejects requests without a valid bearer token with 401 and
// otherwise attaches the resolved user ID to the request context.
func RequireAuth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, MsgNoToken)
				return
			}

			user, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected",
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("error", err.Error()))
				writeError(w, http.StatusUnauthorized, MsgTokenFailed)
				return
			}

			if m := metaFrom(r.Context()); m != nil {
				m.userID = user.ID
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), user.ID)))
		})
	}
}

// extractBearerToken returns the credentials of an "Authorization: Bearer"
// header. The scheme is matched case-insensitively.
func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
