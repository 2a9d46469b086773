package podcast

import (
	"context"
	"fmt"

	"github.com/heartmarshall/podshelf-backend/internal/config"
	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

const defaultSearchLimit = 10

// Search queries the external catalog. Nothing is persisted.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.CatalogPodcast, error) {
	term := domain.NormalizeSearchTerm(input.Term)
	if term == "" {
		return nil, domain.NewArgumentError("Search term is required")
	}

	limit := s.cfg.DefaultLimit
	if limit == 0 {
		limit = defaultSearchLimit
	}
	// limit=0 means "use the default", matching a missing parameter.
	if input.Limit != nil && *input.Limit != 0 {
		limit = *input.Limit
	}
	if limit < 1 || limit > config.MaxCatalogLimit {
		return nil, domain.NewArgumentError(fmt.Sprintf("Limit must be between 1 and %d", config.MaxCatalogLimit))
	}

	results, err := s.catalog.SearchPodcasts(ctx, term, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog search failed", "error", err)
		return nil, fmt.Errorf("podcast.Search: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	return results, nil
}
