package auth

import (
	"unicode/utf8"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// Field bounds shared with the profile service.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 30
	PasswordMinLen = 6
	// PasswordMaxLen is the bcrypt input limit in bytes.
	PasswordMaxLen = 72
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, ValidateUsername(i.Username, true)...)

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	} else if !domain.IsValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Please provide a valid email"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	} else if utf8.RuneCountInString(i.Password) < PasswordMinLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	} else if len(i.Password) > PasswordMaxLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password cannot exceed 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	} else if !domain.IsValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Please provide a valid email"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidateUsername checks the username length rules. With required=false an
// empty value is reported as too short rather than missing; partial updates
// use that form for a username that is present but blank.
func ValidateUsername(username string, required bool) []domain.FieldError {
	n := utf8.RuneCountInString(username)
	switch {
	case n == 0 && required:
		return []domain.FieldError{{Field: "username", Message: "Username is required"}}
	case n < UsernameMinLen:
		return []domain.FieldError{{Field: "username", Message: "Username must be at least 3 characters"}}
	case n > UsernameMaxLen:
		return []domain.FieldError{{Field: "username", Message: "Username cannot exceed 30 characters"}}
	}
	return nil
}
