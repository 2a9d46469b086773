package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// Register creates a new user with email + password credentials and issues a token.
// Returns ErrDuplicateEmail or ErrDuplicateUsername if either is already
// taken; email is checked first.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Uniqueness pre-checks. The unique indexes stay the final arbiter
	// for concurrent registrations.
	if err := s.ensureFree(ctx, input.Email, input.Username); err != nil {
		return nil, err
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 4: Create user
	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}, string(hash))
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 5: Issue token
	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

func (s *Service) ensureFree(ctx context.Context, email, username string) error {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return fmt.Errorf("auth.Register: %w", domain.ErrDuplicateEmail)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.Register check email: %w", err)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return fmt.Errorf("auth.Register: %w", domain.ErrDuplicateUsername)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.Register check username: %w", err)
	}

	return nil
}
