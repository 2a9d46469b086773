package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// Login authenticates a user with email + password and issues a token.
// Returns ErrInvalidCredentials both when the email is unknown and when the
// password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user and stored hash by email
	user, hash, err := s.users.GetCredentials(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(input.Password))
			s.log.WarnContext(ctx, "login failed", slog.String("reason", "unknown email"))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		s.log.WarnContext(ctx, "login failed",
			slog.String("reason", "password mismatch"),
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrInvalidCredentials
	}

	// Step 4: Issue token
	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
