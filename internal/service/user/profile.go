package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile changes the authenticated user's username and/or email.
// Returns ErrEmailInUse or ErrDuplicateUsername when the new value belongs
// to another account. Unchanged values are not re-checked.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if input.Email != nil {
		email := domain.NormalizeEmail(*input.Email)
		input.Email = &email
	}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		input.Username = &username
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Load current profile
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	// Step 4: Keep only real changes and check they are free, email first
	var changes domain.ProfileChanges
	if input.Email != nil && *input.Email != current.Email {
		if err := s.ensureFree(ctx, userID, *input.Email, s.users.GetByEmail, domain.ErrEmailInUse); err != nil {
			return nil, err
		}
		changes.Email = input.Email
	}
	if input.Username != nil && *input.Username != current.Username {
		if err := s.ensureFree(ctx, userID, *input.Username, s.users.GetByUsername, domain.ErrDuplicateUsername); err != nil {
			return nil, err
		}
		changes.Username = input.Username
	}

	if changes.IsEmpty() {
		return current, nil
	}

	// Step 5: Persist
	user, err := s.users.UpdateProfile(ctx, userID, changes)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, fmt.Errorf("user.UpdateProfile: %w", domain.ErrEmailInUse)
		}
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("email_changed", changes.Email != nil),
		slog.Bool("username_changed", changes.Username != nil))

	return user, nil
}

func (s *Service) ensureFree(
	ctx context.Context,
	self uuid.UUID,
	value string,
	lookup func(context.Context, string) (*domain.User, error),
	taken error,
) error {
	other, err := lookup(ctx, value)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("user.UpdateProfile check: %w", err)
	case other.ID != self:
		return fmt.Errorf("user.UpdateProfile: %w", taken)
	}
	return nil
}
