// Package itunes is a read-only client for the iTunes Search API, limited to podcasts.
package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/heartmarshall/podshelf-backend/internal/config"
	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

const (
	defaultBaseURL = "https://itunes.apple.com"
	userAgent      = "podshelf-backend (+https://github.com/heartmarshall/podshelf-backend)"

	// maxBodyBytes caps how much of an upstream response is read.
	maxBodyBytes = 4 << 20
)

// Recorder receives one observation per upstream call.
type Recorder interface {
	RecordCatalogRequest(outcome string, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordCatalogRequest(string, time.Duration) {}

// Provider searches podcasts in the iTunes catalog.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	sanitizer  *bluemonday.Policy
	recorder   Recorder
	log        *slog.Logger
}

// NewProvider creates a Provider from the catalog configuration.
func NewProvider(cfg config.CatalogConfig, logger *slog.Logger) *Provider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		sanitizer:  bluemonday.StrictPolicy(),
		recorder:   noopRecorder{},
		log:        logger.With("adapter", "itunes"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(config.CatalogConfig{BaseURL: baseURL, Timeout: 10 * time.Second}, logger)
}

// WithRecorder sets the metrics recorder and returns p.
func (p *Provider) WithRecorder(r Recorder) *Provider {
	if r != nil {
		p.recorder = r
	}
	return p
}

// SearchPodcasts queries the catalog for podcasts matching term.
// Transport errors, non-200 statuses and undecodable bodies are returned as
// errors; nothing is retried.
func (p *Provider) SearchPodcasts(ctx context.Context, term string, limit int) (results []domain.CatalogPodcast, err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		p.recorder.RecordCatalogRequest(outcome, time.Since(start))
	}()

	q := url.Values{}
	q.Set("term", term)
	q.Set("media", "podcast")
	q.Set("limit", strconv.Itoa(limit))
	reqURL := p.baseURL + "/search?" + q.Encode()

	p.log.DebugContext(ctx, "itunes request", slog.String("term", term), slog.Int("limit", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("itunes: create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "itunes request failed", slog.String("term", term), slog.String("error", err.Error()))
		return nil, fmt.Errorf("itunes: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.WarnContext(ctx, "itunes unexpected status", slog.String("term", term), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("itunes: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("itunes: read body: %w", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("itunes: decode json: %w", err)
	}

	results = make([]domain.CatalogPodcast, 0, len(sr.Results))
	for _, r := range sr.Results {
		results = append(results, p.mapResult(r))
	}

	p.log.DebugContext(ctx, "itunes response",
		slog.String("term", term),
		slog.Int("status", resp.StatusCode),
		slog.Int("results", len(results)),
	)

	return results, nil
}

func (p *Provider) mapResult(r apiResult) domain.CatalogPodcast {
	image := r.ArtworkURL600
	if image == "" {
		image = r.ArtworkURL100
	}

	genres := r.Genres
	if genres == nil {
		genres = []string{}
	}

	return domain.CatalogPodcast{
		ItunesID:     r.TrackID,
		Title:        r.TrackName,
		Author:       r.ArtistName,
		Description:  p.plainText(r.Description),
		ImageURL:     image,
		FeedURL:      r.FeedURL,
		ListenURL:    r.TrackViewURL,
		Genres:       genres,
		ReleaseDate:  parseReleaseDate(r.ReleaseDate),
		EpisodeCount: r.TrackCount,
	}
}

// plainText strips all markup; the strict policy escapes entities, so they
// are decoded back before the text goes out as JSON.
func (p *Provider) plainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(s)))
}

func parseReleaseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
