package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/podshelf-backend/internal/config"
	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/internal/metrics"
	"github.com/heartmarshall/podshelf-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Logger   *slog.Logger
	Auth     authService
	Tokens   tokenValidator
	Users    userService
	Podcasts podcastService
	DB       pinger
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	CORS     config.CORSConfig
	Version  string
}

// NewRouter registers every route and wraps the mux with the shared
// middleware stack.
func NewRouter(d Deps) http.Handler {
	authH := NewAuthHandler(d.Auth, d.Logger)
	userH := NewUserHandler(d.Users, d.Logger)
	podcastH := NewPodcastHandler(d.Podcasts, d.Logger)
	healthH := NewHealthHandler(d.DB, d.Version)

	mux := http.NewServeMux()
	public := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.TagRoute(h))
	}
	protected := middleware.RequireAuth(d.Tokens, d.Logger)
	private := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.TagRoute(protected(h)))
	}

	public("GET /live", healthH.Live)
	public("GET /ready", healthH.Ready)
	public("GET /health", healthH.Health)
	mux.Handle("GET /metrics", middleware.TagRoute(metrics.Handler(d.Gatherer)))

	public("POST /api/auth/register", authH.Register)
	public("POST /api/auth/login", authH.Login)

	private("GET /api/users/profile", userH.GetProfile)
	private("PUT /api/users/profile", userH.UpdateProfile)

	private("POST /api/podcasts", podcastH.Create)
	private("GET /api/podcasts", podcastH.List)
	private("GET /api/podcasts/search/itunes", podcastH.Search)
	private("GET /api/podcasts/{id}", podcastH.Get)
	private("PUT /api/podcasts/{id}", podcastH.Update)
	private("DELETE /api/podcasts/{id}", podcastH.Delete)

	mux.HandleFunc("/", notFound)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)(mux)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("Not Found - %s", r.URL.RequestURI()))
}
