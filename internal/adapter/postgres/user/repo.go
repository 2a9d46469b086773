// Package user implements the credential store using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/podshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// Unique index names from the users table.
const (
	ConstraintEmail    = "users_email_key"
	ConstraintUsername = "users_username_key"
)

var uniqueConstraints = []postgres.UniqueConstraint{
	{Name: ConstraintEmail, Err: domain.ErrDuplicateEmail},
	{Name: ConstraintUsername, Err: domain.ErrDuplicateUsername},
}

const userColumns = `id, username, email, created_at, updated_at`

const (
	queryGetByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	queryGetByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	queryGetByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	queryGetCredentials = `SELECT ` + userColumns + `, password_hash FROM users WHERE email = $1`

	queryCreate = `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, queryGetByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, queryGetByEmail, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, queryGetByUsername, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// GetCredentials returns the user with the given email together with its
// stored password hash.
func (r *Repo) GetCredentials(ctx context.Context, email string) (*domain.User, string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		u    domain.User
		hash string
	)
	err := q.QueryRow(ctx, queryGetCredentials, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt, &hash)
	if err != nil {
		return nil, "", postgres.MapError(err, "user", email)
	}
	return &u, hash, nil
}

// Create inserts a new user with its password hash and returns the persisted
// domain.User. A unique violation maps to domain.ErrDuplicateEmail or
// domain.ErrDuplicateUsername.
func (r *Repo) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanUser(q.QueryRow(ctx, queryCreate,
		u.ID, u.Username, u.Email, passwordHash, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID, uniqueConstraints...)
	}
	return created, nil
}

// UpdateProfile applies the non-nil fields of changes and bumps updated_at.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, changes domain.ProfileChanges) (*domain.User, error) {
	if changes.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	upd := postgres.Builder().
		Update("users").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)
	if changes.Username != nil {
		upd = upd.Set("username", *changes.Username)
	}
	if changes.Email != nil {
		upd = upd.Set("email", *changes.Email)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id, uniqueConstraints...)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
