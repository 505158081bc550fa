package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Config holds the HTTP settings for the batch scrape.
type Config struct {
	// Timeout bounds each request.
	Timeout time.Duration

	// Delay is the pause between consecutive requests so the portals are
	// not hammered.
	Delay time.Duration

	// UserAgent is sent with every request; several gov.br portals refuse
	// requests without a browser-like agent.
	UserAgent string
}

// DefaultConfig returns the settings the batch normally runs with.
func DefaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		Delay:     2 * time.Second,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	}
}

// Fetcher retrieves and parses portal pages.
type Fetcher struct {
	cfg    Config
	client *http.Client
}

// NewFetcher creates a Fetcher from cfg.
func NewFetcher(cfg Config) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch performs a GET against u and returns the parsed page. Any failure,
// including a non-2xx status, is an error; the batch maps it to an absent
// result and moves on.
func (f *Fetcher) Fetch(u string) (Page, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: status %s", u, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse HTML failed: %w", err)
	}
	return ParsePage(doc), nil
}
