package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/pkg/ctxutil"
)

// Client-facing messages for domain errors.
const (
	msgInternal           = "Internal server error"
	msgDuplicateEmail     = "User with this email already exists"
	msgEmailInUse         = "Email is already in use"
	msgDuplicateUsername  = "Username is already taken"
	msgInvalidCredentials = "Invalid email or password"
	msgUnauthorized       = "Not authorized"
	msgUpstream           = "Failed to fetch podcasts from iTunes"
	msgPodcastNotFound    = "Podcast not found"
)

// errorMessages overrides the default text for sentinel errors whose
// message depends on the operation, e.g. which podcast action was refused.
type errorMessages struct {
	notFound  string
	forbidden string
}

// writeDomainError maps err onto the HTTP status table and writes the
// failure envelope. Unmapped errors are logged and answered with 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msgs errorMessages) {
	var ve *domain.ValidationError
	var ae *domain.ArgumentError

	switch {
	case errors.As(err, &ve):
		fields := make([]fieldErrorDTO, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			fields = append(fields, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: ve.Messages(),
			Errors:  fields,
		})
	case errors.As(err, &ae):
		writeError(w, http.StatusBadRequest, ae.Message)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEmailInUse):
		writeError(w, http.StatusBadRequest, msgEmailInUse)
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, msgDuplicateEmail)
	case errors.Is(err, domain.ErrDuplicateUsername):
		writeError(w, http.StatusBadRequest, msgDuplicateUsername)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, orDefault(msgs.forbidden, "Forbidden"))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, orDefault(msgs.notFound, "Not found"))
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		log.WarnContext(r.Context(), "upstream unavailable",
			append(ctxutil.LogAttrs(r.Context()), slog.String("error", err.Error()))...)
		writeError(w, http.StatusBadGateway, msgUpstream)
	default:
		log.ErrorContext(r.Context(), "internal error",
			append(ctxutil.LogAttrs(r.Context()), slog.String("error", err.Error()))...)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
