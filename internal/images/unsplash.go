// Package images looks up a background photo per stop via the Unsplash
// search API. Purely cosmetic: every failure degrades to "no image".
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultEndpoint = "https://api.unsplash.com/search/photos"

// Service proxies Unsplash with a per-session in-memory cache keyed by the
// stop text, so repeated renders don't burn through the rate limit.
type Service struct {
	accessKey string
	endpoint  string
	client    *http.Client
	log       *zap.Logger

	mu    sync.Mutex
	cache map[string]string
}

func NewService(accessKey string, log *zap.Logger) *Service {
	return &Service{
		accessKey: accessKey,
		endpoint:  defaultEndpoint,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
		cache:     make(map[string]string),
	}
}

// NewServiceWithEndpoint points the service at a different API base. Used
// by tests.
func NewServiceWithEndpoint(accessKey, endpoint string, log *zap.Logger) *Service {
	s := NewService(accessKey, log)
	s.endpoint = endpoint
	return s
}

// Query derives the search query from a stop text: everything before the
// first comma, so "Eiffel Tower, Paris" searches for "Eiffel Tower".
func Query(stopText string) string {
	if i := strings.Index(stopText, ","); i >= 0 {
		return strings.TrimSpace(stopText[:i])
	}
	return strings.TrimSpace(stopText)
}

// Lookup returns an image URL for the stop, or "" when none could be
// found. Results (including misses) are cached for the session.
func (s *Service) Lookup(ctx context.Context, stopText string) string {
	key := strings.ToLower(strings.TrimSpace(stopText))
	if key == "" || s.accessKey == "" {
		return ""
	}

	s.mu.Lock()
	if v, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return v
	}
	s.mu.Unlock()

	imageURL := s.fetch(ctx, Query(stopText))

	s.mu.Lock()
	s.cache[key] = imageURL
	s.mu.Unlock()
	return imageURL
}

func (s *Service) fetch(ctx context.Context, query string) string {
	api := fmt.Sprintf("%s?query=%s&per_page=1", s.endpoint, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Debug("unsplash request failed", zap.String("query", query), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var result struct {
		Results []struct {
			Urls map[string]string `json:"urls"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		s.log.Debug("invalid response from unsplash", zap.String("query", query))
		return ""
	}

	if len(result.Results) == 0 {
		return ""
	}
	u := result.Results[0].Urls["regular"]
	if u == "" {
		u = result.Results[0].Urls["small"]
	}
	return u
}
