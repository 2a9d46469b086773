package podcast

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

// Field bounds.
const (
	MaxTitleLen       = 255
	MaxAuthorLen      = 255
	MaxDescriptionLen = 5000
	MaxImageURLLen    = 2048
)

const statusMessage = "Status must be listening, completed, or wishlist"

// CreateInput holds parameters for saving a podcast. Rating is a float so
// that non-integer JSON numbers reach validation.
type CreateInput struct {
	Title       string
	Author      string
	Description string
	ImageURL    string
	Rating      *float64
	Status      string
}

func (i *CreateInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Author = strings.TrimSpace(i.Author)
	i.Description = strings.TrimSpace(i.Description)
	i.ImageURL = strings.TrimSpace(i.ImageURL)
	i.Status = strings.TrimSpace(i.Status)
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateText("title", "Title", i.Title, MaxTitleLen, "Title is required")...)
	errs = append(errs, validateText("author", "Author", i.Author, MaxAuthorLen, "Author is required")...)
	errs = append(errs, validateDescription(i.Description)...)
	errs = append(errs, validateImageURL(i.ImageURL)...)
	if i.Rating != nil {
		errs = append(errs, validateRating(*i.Rating)...)
	}
	if i.Status != "" && !domain.PodcastStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: statusMessage})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial update. Nil fields are left unchanged.
// RatingSet distinguishes an explicit null rating (clear) from an absent
// one.
type UpdateInput struct {
	Title       *string
	Author      *string
	Description *string
	ImageURL    *string
	Rating      *float64
	RatingSet   bool
	Status      *string
}

func (i *UpdateInput) normalize() {
	i.Title = trimPtr(i.Title)
	i.Author = trimPtr(i.Author)
	i.Description = trimPtr(i.Description)
	i.ImageURL = trimPtr(i.ImageURL)
	i.Status = trimPtr(i.Status)
	if i.Rating != nil {
		i.RatingSet = true
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		errs = append(errs, validateText("title", "Title", *i.Title, MaxTitleLen, "Title cannot be empty")...)
	}
	if i.Author != nil {
		errs = append(errs, validateText("author", "Author", *i.Author, MaxAuthorLen, "Author cannot be empty")...)
	}
	if i.Description != nil {
		errs = append(errs, validateDescription(*i.Description)...)
	}
	if i.ImageURL != nil {
		errs = append(errs, validateImageURL(*i.ImageURL)...)
	}
	if i.Rating != nil {
		errs = append(errs, validateRating(*i.Rating)...)
	}
	if i.Status != nil && !domain.PodcastStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: statusMessage})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// changes converts a validated input into domain changes.
func (i UpdateInput) changes() domain.PodcastChanges {
	c := domain.PodcastChanges{
		Title:       i.Title,
		Author:      i.Author,
		Description: i.Description,
		ImageURL:    i.ImageURL,
	}
	if i.RatingSet {
		if i.Rating == nil {
			c.ClearRating = true
		} else {
			r := int(*i.Rating)
			c.Rating = &r
		}
	}
	if i.Status != nil {
		st := domain.PodcastStatus(*i.Status)
		c.Status = &st
	}
	return c
}

// SearchInput holds parameters for a catalog search. A nil Limit means the
// configured default.
type SearchInput struct {
	Term  string
	Limit *int
}

// ---------------------------------------------------------------------------
// Field rules
// ---------------------------------------------------------------------------

func validateText(field, label, v string, maxLen int, emptyMsg string) []domain.FieldError {
	switch {
	case v == "":
		return []domain.FieldError{{Field: field, Message: emptyMsg}}
	case utf8.RuneCountInString(v) > maxLen:
		return []domain.FieldError{{Field: field, Message: label + " cannot exceed " + strconv.Itoa(maxLen) + " characters"}}
	}
	return nil
}

func validateDescription(v string) []domain.FieldError {
	if utf8.RuneCountInString(v) > MaxDescriptionLen {
		return []domain.FieldError{{Field: "description", Message: "Description cannot exceed 5000 characters"}}
	}
	return nil
}

func validateImageURL(v string) []domain.FieldError {
	switch {
	case v == "":
		return nil
	case len(v) > MaxImageURLLen:
		return []domain.FieldError{{Field: "imageUrl", Message: "Image URL cannot exceed 2048 characters"}}
	case !domain.IsHTTPURL(v):
		return []domain.FieldError{{Field: "imageUrl", Message: "Please provide a valid URL for image"}}
	}
	return nil
}

func validateRating(r float64) []domain.FieldError {
	switch {
	case math.IsNaN(r) || r != math.Trunc(r):
		return []domain.FieldError{{Field: "rating", Message: "Rating must be a whole number"}}
	case r < domain.MinRating:
		return []domain.FieldError{{Field: "rating", Message: "Rating must be at least 1"}}
	case r > domain.MaxRating:
		return []domain.FieldError{{Field: "rating", Message: "Rating cannot be more than 5"}}
	}
	return nil
}
