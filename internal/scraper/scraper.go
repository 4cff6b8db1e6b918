package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/wc-matches/internal/logger"
)

const (
	DefaultBaseURL = "https://en.wikipedia.org"
	UserAgent      = "wc-matches/1.0 (github.com/pfrederiksen/wc-matches)"
	Timeout        = 30 * time.Second
)

// Scraper fetches tournament pages
type Scraper struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// Option configures a Scraper
type Option func(*Scraper)

// WithBaseURL overrides the encyclopedia host, e.g. for a mirror or a test server
func WithBaseURL(baseURL string) Option {
	return func(s *Scraper) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		s.client = client
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Scraper) {
		s.client.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header. Empty sends none.
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		s.userAgent = ua
	}
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:   DefaultBaseURL,
		userAgent: UserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PageURL returns the tournament page URL for a year
func (s *Scraper) PageURL(year int) string {
	return fmt.Sprintf("%s/wiki/%d_FIFA_World_Cup", s.baseURL, year)
}

// FetchPage downloads the tournament page for year and returns its body.
// The status code does not fail the fetch; a page without match
// containers simply yields no rows.
func (s *Scraper) FetchPage(ctx context.Context, year int) (string, error) {
	url := s.PageURL(year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading page: %w", err)
	}
	logger.RecordTiming("fetch.page", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Unexpected status code", logger.Fields{
			"url":    url,
			"year":   year,
			"status": resp.StatusCode,
		})
	}

	logger.Debug("Fetched page", logger.Fields{
		"url":   url,
		"bytes": len(body),
	})

	return string(body), nil
}
