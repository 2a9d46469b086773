package podcast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// Create saves a new podcast owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Podcast, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	// Step 3: Build and persist
	status := domain.DefaultPodcastStatus
	if input.Status != "" {
		status = domain.PodcastStatus(input.Status)
	}

	var rating *int
	if input.Rating != nil {
		r := int(*input.Rating)
		rating = &r
	}

	now := time.Now().UTC()
	created, err := s.podcasts.Create(ctx, &domain.Podcast{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Rating:      rating,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("podcast.Create: %w", err)
	}

	s.log.InfoContext(ctx, "podcast created",
		slog.String("user_id", userID.String()),
		slog.String("podcast_id", created.ID.String()))

	return created, nil
}
