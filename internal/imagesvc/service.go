// Package imagesvc resolves a representative photo URL for a destination.
// Lookups go to the Unsplash search API; when that is unconfigured or fails,
// a local placeholder URL is returned so itinerary creation never blocks on it.
package imagesvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Unsplash API root.
	DefaultBaseURL = "https://api.unsplash.com"
	// CacheTTL is how long a resolved URL is reused.
	CacheTTL = 24 * time.Hour
)

// Service looks up destination images.
type Service struct {
	accessKey string
	baseURL   string
	http      *http.Client
	cache     Cache
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithBaseURL points the service at another Unsplash-compatible root.
func WithBaseURL(u string) Option { return func(s *Service) { s.baseURL = strings.TrimRight(u, "/") } }

// WithHTTPClient replaces the default client, which times out after 5s.
func WithHTTPClient(c *http.Client) Option { return func(s *Service) { s.http = c } }

// WithCache enables caching of resolved URLs.
func WithCache(c Cache) Option { return func(s *Service) { s.cache = c } }

// WithLogger sets the logger used for lookup failures.
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.logger = l } }

// New constructs a Service. An empty accessKey disables remote lookups.
func New(accessKey string, opts ...Option) *Service {
	s := &Service{
		accessKey: accessKey,
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: 5 * time.Second},
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Placeholder returns the local placeholder image URL for a destination.
func Placeholder(destination string) string {
	text := strings.ReplaceAll(url.QueryEscape(destination), "+", "%20")
	return "/placeholder.svg?height=400&width=600&text=" + text
}

// DestinationImage returns a photo URL for destination. It never fails; any
// lookup problem degrades to Placeholder.
func (s *Service) DestinationImage(ctx context.Context, destination string) string {
	key := strings.ToLower(strings.TrimSpace(destination))
	if s.accessKey == "" || key == "" {
		return Placeholder(destination)
	}

	if s.cache != nil {
		if v, ok, err := s.cache.Get(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "image cache read failed", "error", err)
		} else if ok {
			return v
		}
	}

	found, err := s.search(ctx, destination)
	if err != nil {
		s.logger.WarnContext(ctx, "destination image lookup failed", "destination", destination, "error", err)
		return Placeholder(destination)
	}
	if found == "" {
		return Placeholder(destination)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, found, CacheTTL); err != nil {
			s.logger.WarnContext(ctx, "image cache write failed", "error", err)
		}
	}
	return found
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

func (s *Service) search(ctx context.Context, destination string) (string, error) {
	q := url.Values{}
	q.Set("query", destination)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("imagesvc.search: build request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagesvc.search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("imagesvc.search: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("imagesvc.search: decode: %w", err)
	}
	if len(body.Results) == 0 {
		return "", nil
	}
	return body.Results[0].URLs.Regular, nil
}
