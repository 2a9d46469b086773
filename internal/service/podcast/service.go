package podcast

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/podshelf-backend/internal/config"
	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type podcastRepo interface {
	Create(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Podcast, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Podcast, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *domain.PodcastStatus) ([]domain.Podcast, error)
	Update(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type catalog interface {
	SearchPodcasts(ctx context.Context, term string, limit int) ([]domain.CatalogPodcast, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages the authenticated user's podcast library and proxies
// catalog searches. Every item operation checks ownership against the
// user ID carried in ctx.
type Service struct {
	log      *slog.Logger
	podcasts podcastRepo
	tx       txManager
	catalog  catalog
	cfg      config.CatalogConfig
}

// NewService creates a new podcast service.
func NewService(
	logger *slog.Logger,
	podcasts podcastRepo,
	tx txManager,
	catalog catalog,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "podcast"),
		podcasts: podcasts,
		tx:       tx,
		catalog:  catalog,
		cfg:      cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// parseID treats a malformed identifier as a missing item.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("podcast %q: %w", raw, domain.ErrNotFound)
	}
	return id, nil
}

// loadOwned fetches the item with load and checks that userID owns it.
// Existence is checked before ownership.
func (s *Service) loadOwned(
	ctx context.Context,
	userID uuid.UUID,
	rawID string,
	action string,
	load func(context.Context, uuid.UUID) (*domain.Podcast, error),
) (*domain.Podcast, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p, err := load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.IsOwnedBy(userID) {
		s.log.WarnContext(ctx, "forbidden podcast access",
			slog.String("action", action),
			slog.String("user_id", userID.String()),
			slog.String("podcast_id", id.String()))
		return nil, fmt.Errorf("%s podcast %s: %w", action, id, domain.ErrForbidden)
	}

	return p, nil
}

func requireUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
