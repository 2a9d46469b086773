package user

import (
	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/internal/service/auth"
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Username *string
	Email    *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	if i.Username == nil && i.Email == nil {
		return domain.NewValidationError("body", "Please provide username or email to update")
	}

	var errs []domain.FieldError

	if i.Username != nil {
		errs = append(errs, auth.ValidateUsername(*i.Username, false)...)
	}

	if i.Email != nil && !domain.IsValidEmail(*i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Please provide a valid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
