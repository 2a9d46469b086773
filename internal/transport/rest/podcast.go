package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/internal/service/podcast"
)

type podcastService interface {
	Create(ctx context.Context, input podcast.CreateInput) (*domain.Podcast, error)
	List(ctx context.Context, status string) ([]domain.Podcast, error)
	Get(ctx context.Context, id string) (*domain.Podcast, error)
	Update(ctx context.Context, id string, input podcast.UpdateInput) (*domain.Podcast, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, input podcast.SearchInput) ([]domain.CatalogPodcast, error)
}

// PodcastHandler serves the podcast library and catalog search.
type PodcastHandler struct {
	svc podcastService
	log *slog.Logger
}

// NewPodcastHandler creates a PodcastHandler.
func NewPodcastHandler(svc podcastService, logger *slog.Logger) *PodcastHandler {
	return &PodcastHandler{svc: svc, log: logger.With("handler", "podcast")}
}

type createPodcastRequest struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Rating      *float64 `json:"rating"`
	Status      string   `json:"status"`
}

type updatePodcastRequest struct {
	Title       *string           `json:"title"`
	Author      *string           `json:"author"`
	Description *string           `json:"description"`
	ImageURL    *string           `json:"imageUrl"`
	Rating      optional[float64] `json:"rating"`
	Status      *string           `json:"status"`
}

func podcastErrors(action string) errorMessages {
	return errorMessages{
		notFound:  msgPodcastNotFound,
		forbidden: "Not authorized to " + action + " this podcast",
	}
}

// Create handles POST /api/podcasts.
func (h *PodcastHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPodcastRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	p, err := h.svc.Create(r.Context(), podcast.CreateInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		Status:      req.Status,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err, podcastErrors("create"))
		return
	}

	writeData(w, http.StatusCreated, toPodcastResponse(p))
}

// List handles GET /api/podcasts with an optional ?status= filter.
func (h *PodcastHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeDomainError(w, r, h.log, err, podcastErrors("access"))
		return
	}

	writeList(w, toPodcastResponses(items))
}

// Get handles GET /api/podcasts/{id}.
func (h *PodcastHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, h.log, err, podcastErrors("access"))
		return
	}

	writeData(w, http.StatusOK, toPodcastResponse(p))
}

// Update handles PUT /api/podcasts/{id}.
func (h *PodcastHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePodcastRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	p, err := h.svc.Update(r.Context(), r.PathValue("id"), podcast.UpdateInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating.ptr(),
		RatingSet:   req.Rating.Set,
		Status:      req.Status,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err, podcastErrors("update"))
		return
	}

	writeData(w, http.StatusOK, toPodcastResponse(p))
}

// Delete handles DELETE /api/podcasts/{id}.
func (h *PodcastHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, r, h.log, err, podcastErrors("delete"))
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Podcast deleted successfully",
		Data:    struct{}{},
	})
}

// Search handles GET /api/podcasts/search/itunes?term=&limit=.
func (h *PodcastHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := podcast.SearchInput{Term: q.Get("term")}

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Limit must be a number")
			return
		}
		input.Limit = &limit
	}

	results, err := h.svc.Search(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err, errorMessages{})
		return
	}

	writeList(w, toCatalogResponses(results))
}
