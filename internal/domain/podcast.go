package domain

import (
	"time"

	"github.com/google/uuid"
)

// PodcastStatus is the listening state of a saved podcast.
type PodcastStatus string

const (
	PodcastStatusListening PodcastStatus = "listening"
	PodcastStatusCompleted PodcastStatus = "completed"
	PodcastStatusWishlist  PodcastStatus = "wishlist"
)

// DefaultPodcastStatus is applied when a podcast is created without a status.
const DefaultPodcastStatus = PodcastStatusWishlist

func (s PodcastStatus) String() string { return string(s) }

func (s PodcastStatus) IsValid() bool {
	switch s {
	case PodcastStatusListening, PodcastStatusCompleted, PodcastStatusWishlist:
		return true
	}
	return false
}

// Rating bounds for a saved podcast.
const (
	MinRating = 1
	MaxRating = 5
)

// Podcast is a podcast saved to a user's library. UserID is set at creation
// and never changes.
type Podcast struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Author      string
	Description string
	ImageURL    string
	Rating      *int
	Status      PodcastStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID owns the podcast.
func (p *Podcast) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// PodcastChanges is a validated partial update. Nil pointers are left
// untouched; ClearRating resets the rating to absent.
type PodcastChanges struct {
	Title       *string
	Author      *string
	Description *string
	ImageURL    *string
	Rating      *int
	ClearRating bool
	Status      *PodcastStatus
}

// Apply returns a copy of p with the changes applied.
func (c PodcastChanges) Apply(p Podcast) Podcast {
	if c.Title != nil {
		p.Title = *c.Title
	}
	if c.Author != nil {
		p.Author = *c.Author
	}
	if c.Description != nil {
		p.Description = *c.Description
	}
	if c.ImageURL != nil {
		p.ImageURL = *c.ImageURL
	}
	if c.ClearRating {
		p.Rating = nil
	} else if c.Rating != nil {
		r := *c.Rating
		p.Rating = &r
	}
	if c.Status != nil {
		p.Status = *c.Status
	}
	return p
}

// CatalogPodcast is a search result from the external catalog. It is never
// persisted.
type CatalogPodcast struct {
	ItunesID     int64
	Title        string
	Author       string
	Description  string
	ImageURL     string
	FeedURL      string
	ListenURL    string
	Genres       []string
	ReleaseDate  *time.Time
	EpisodeCount int
}
