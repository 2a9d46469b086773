package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/podshelf-backend/internal/config"
	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// userRepo defines the credential store interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetCredentials(ctx context.Context, email string) (*domain.User, string, error)
	Create(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error)
}

// tokenCodec defines the token issuing/verification interface needed by auth service.
type tokenCodec interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// Service implements registration, login and token validation.
type Service struct {
	log       *slog.Logger
	users     userRepo
	tokens    tokenCodec
	hashCost  int
	dummyHash []byte
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenCodec,
	cfg config.AuthConfig,
) (*Service, error) {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	// Compared against when no user matches, so a missing email costs the
	// same bcrypt round as a wrong password.
	dummy, err := bcrypt.GenerateFromPassword([]byte("podshelf-no-such-user"), cost)
	if err != nil {
		return nil, fmt.Errorf("auth.NewService: %w", err)
	}

	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		tokens:    tokens,
		hashCost:  cost,
		dummyHash: dummy,
	}, nil
}

// issue builds the AuthResult for user.
func (s *Service) issue(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
