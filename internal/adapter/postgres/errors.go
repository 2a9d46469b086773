package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// UniqueConstraint binds a unique index name to the domain error reported
// when an insert or update violates it.
type UniqueConstraint struct {
	Name string
	Err  error
}

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row in the message (an id, an email). A unique violation on one of the
// given constraints maps to that constraint's error; any other unique
// violation maps to domain.ErrAlreadyExists.
// context.DeadlineExceeded and context.Canceled are not mapped; they pass through.
func MapError(err error, entity string, key any, unique ...UniqueConstraint) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			for _, c := range unique {
				if c.Name == pgErr.ConstraintName {
					return fmt.Errorf("%s %v: %w", entity, key, c.Err)
				}
			}
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
