package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves the
// credential store and the auth service, so it has no field here.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileChanges describes a partial profile update. Nil fields are left
// untouched.
type ProfileChanges struct {
	Username *string
	Email    *string
}

// IsEmpty reports whether no field is set.
func (c ProfileChanges) IsEmpty() bool {
	return c.Username == nil && c.Email == nil
}
