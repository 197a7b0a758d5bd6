// Package hackerrank fetches public HackerRank data for a user and
// republishes it for the portfolio client.
package hackerrank

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/akshdev/portfolio-api/internal/config"
	"github.com/akshdev/portfolio-api/internal/metrics"
)

const (
	// The REST endpoints are the ones the public profile pages use; they
	// reject requests without a browser-like User-Agent.
	userAgent      = "Mozilla/5.0 (compatible; portfolio-api/1.0)"
	requestTimeout = 10 * time.Second
)

// Stats is the combined response envelope. Both fields are upstream payloads
// forwarded byte-for-byte; filtering (for example dropping zero-star badges)
// is a client concern.
type Stats struct {
	Models            json.RawMessage `json:"models"`
	SubmissionHistory json.RawMessage `json:"submissionHistory"`
}

// badgesEnvelope extracts the models collection from the badges response.
type badgesEnvelope struct {
	Models json.RawMessage `json:"models"`
}

// Client is an anonymous HackerRank REST API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client from the provided configuration.
func NewClient(cfg config.HackerRankConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// Stats fetches the badge list and submission history for username
// concurrently. Either call failing fails the whole lookup; there is no
// per-field degradation for this endpoint pair.
func (c *Client) Stats(ctx context.Context, username string) (*Stats, error) {
	g, ctx := errgroup.WithContext(ctx)

	var stats Stats

	g.Go(func() error {
		models, err := c.badges(ctx, username)
		if err != nil {
			return fmt.Errorf("fetching badges: %w", err)
		}
		stats.Models = models
		return nil
	})

	g.Go(func() error {
		history, err := c.submissionHistory(ctx, username)
		if err != nil {
			return fmt.Errorf("fetching submission history: %w", err)
		}
		stats.SubmissionHistory = history
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

// badges returns the models collection of the user's badge list, unfiltered.
func (c *Client) badges(ctx context.Context, username string) (json.RawMessage, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/rest/hackers/%s/badges", url.PathEscape(username)))
	if err != nil {
		return nil, err
	}

	var envelope badgesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing badges response: %w", err)
	}
	if envelope.Models == nil {
		return json.RawMessage("null"), nil
	}

	return envelope.Models, nil
}

// submissionHistory returns the user's submission history payload unmodified.
func (c *Client) submissionHistory(ctx context.Context, username string) (json.RawMessage, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/rest/hackers/%s/submission_histories", url.PathEscape(username)))
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("parsing submission history response: invalid JSON")
	}

	return json.RawMessage(body), nil
}

// doRequest performs a single anonymous GET. Unlike the music fetches, a
// non-2xx status fails the call before any parsing happens.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	metrics.RecordUpstreamRequest("hackerrank", err)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return body, nil
}
