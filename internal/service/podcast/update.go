package podcast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// Update applies a partial update to a podcast the user owns. The row is
// locked for the duration of the check and the write.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*domain.Podcast, error) {
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

	// Step 3: Lock, check ownership, write
	var updated *domain.Podcast
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadOwned(txCtx, userID, id, "update", s.podcasts.GetByIDForUpdate)
		if err != nil {
			return err
		}

		next := input.changes().Apply(*current)
		next.UpdatedAt = time.Now().UTC()

		updated, err = s.podcasts.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("podcast.Update: %w", txErr)
	}

	s.log.InfoContext(ctx, "podcast updated",
		slog.String("user_id", userID.String()),
		slog.String("podcast_id", updated.ID.String()))

	return updated, nil
}
