package podcast

import (
	"context"
	"fmt"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// Get returns one podcast. Fails with ErrNotFound when the id is unknown or
// malformed, and ErrForbidden when another user owns it.
func (s *Service) Get(ctx context.Context, id string) (*domain.Podcast, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.loadOwned(ctx, userID, id, "access", s.podcasts.GetByID)
	if err != nil {
		return nil, fmt.Errorf("podcast.Get: %w", err)
	}

	return p, nil
}
