package rest

import (
	"time"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/internal/service/auth"
)

type userResponse struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type authResponse struct {
	userResponse
	Token string `json:"token"`
}

type podcastResponse struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Rating      *int      `json:"rating"`
	Status      string    `json:"status"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type catalogResponse struct {
	ItunesID     int64      `json:"itunesId"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	FeedURL      string     `json:"feedUrl"`
	ListenURL    string     `json:"listenUrl"`
	Genres       []string   `json:"genres"`
	ReleaseDate  *time.Time `json:"releaseDate"`
	EpisodeCount int        `json:"episodeCount"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAuthResponse(res *auth.AuthResult) authResponse {
	return authResponse{userResponse: toUserResponse(res.User), Token: res.Token}
}

func toPodcastResponse(p *domain.Podcast) podcastResponse {
	return podcastResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Author:      p.Author,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Rating:      p.Rating,
		Status:      p.Status.String(),
		UserID:      p.UserID.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPodcastResponses(items []domain.Podcast) []podcastResponse {
	out := make([]podcastResponse, 0, len(items))
	for i := range items {
		out = append(out, toPodcastResponse(&items[i]))
	}
	return out
}

func toCatalogResponses(items []domain.CatalogPodcast) []catalogResponse {
	out := make([]catalogResponse, 0, len(items))
	for _, c := range items {
		genres := c.Genres
		if genres == nil {
			genres = []string{}
		}
		out = append(out, catalogResponse{
			ItunesID:     c.ItunesID,
			Title:        c.Title,
			Author:       c.Author,
			Description:  c.Description,
			ImageURL:     c.ImageURL,
			FeedURL:      c.FeedURL,
			ListenURL:    c.ListenURL,
			Genres:       genres,
			ReleaseDate:  c.ReleaseDate,
			EpisodeCount: c.EpisodeCount,
		})
	}
	return out
}
