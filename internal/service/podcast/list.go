package podcast

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// List returns the authenticated user's podcasts, newest first. A non-empty
// status restricts the result to that status.
func (s *Service) List(ctx context.Context, status string) ([]domain.Podcast, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	var filter *domain.PodcastStatus
	if status = strings.TrimSpace(status); status != "" {
		st := domain.PodcastStatus(status)
		if !st.IsValid() {
			return nil, domain.NewValidationError("status", statusMessage)
		}
		filter = &st
	}

	items, err := s.podcasts.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("podcast.List: %w", err)
	}

	return items, nil
}
