package podcast

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a podcast the user owns. Deleting twice yields ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.loadOwned(txCtx, userID, id, "delete", s.podcasts.GetByIDForUpdate)
		if err != nil {
			return err
		}

		if err := s.podcasts.Delete(txCtx, p.ID); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("podcast.Delete: %w", txErr)
	}

	s.log.InfoContext(ctx, "podcast deleted",
		slog.String("user_id", userID.String()),
		slog.String("podcast_id", id))

	return nil
}
