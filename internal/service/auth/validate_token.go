package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// ValidateToken verifies token and resolves the identity it names.
// Returns ErrUnauthorized if the token is invalid or expired, or if the user
// no longer exists.
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("auth.ValidateToken: %w: %v", domain.ErrUnauthorized, err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.ValidateToken: %w: user %s no longer exists", domain.ErrUnauthorized, userID)
		}
		return nil, fmt.Errorf("auth.ValidateToken: %w", err)
	}

	return user, nil
}
