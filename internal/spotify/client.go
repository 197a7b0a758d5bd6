// Package spotify fetches the listener's Spotify data and normalizes it into
// display records.
package spotify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/goccy/go-json"

	"github.com/akshdev/portfolio-api/internal/config"
	"github.com/akshdev/portfolio-api/internal/metrics"
	"github.com/akshdev/portfolio-api/internal/music"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	requestTimeout = 10 * time.Second
)

// Client talks to the Spotify Web API on behalf of the portfolio owner.
//
// Every call builds a fresh oauth2-backed HTTP client from the refresh
// token, so the credential exchange happens per outbound call and no token
// survives a request. Snapshots therefore always reflect live upstream state.
type Client struct {
	auth         *spotifyauth.Authenticator
	refreshToken string
	playlistID   string

	// Overridable in tests.
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client from the configured credentials.
func NewClient(cfg config.SpotifyConfig) *Client {
	auth := spotifyauth.New(
		spotifyauth.WithClientID(cfg.ClientID),
		spotifyauth.WithClientSecret(cfg.ClientSecret),
	)

	return &Client{
		auth:         auth,
		refreshToken: cfg.RefreshToken,
		playlistID:   cfg.PlaylistID,
		baseURL:      defaultBaseURL,
	}
}

// newHTTPClient returns the HTTP client for one outbound call. In production
// this exchanges the refresh token for a bearer token via the oauth2
// transport; tokens never outlive the call sequence.
func (c *Client) newHTTPClient(ctx context.Context) *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	hc := c.auth.Client(ctx, &oauth2.Token{RefreshToken: c.refreshToken})
	hc.Timeout = requestTimeout
	return hc
}

// doGet issues one authenticated GET and decodes the body into out.
//
// The body is decoded regardless of HTTP status: provider-level failures
// arrive as an error object inside the JSON and are detected by the caller,
// matching the contract that non-2xx responses surface at consumption time.
func (c *Client) doGet(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.newHTTPClient(ctx).Do(req)
	metrics.RecordUpstreamRequest("spotify", err)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}

// TopTrack returns the listener's top track for the given window, or nil if
// the provider reports no ranked tracks.
func (c *Client) TopTrack(ctx context.Context, window music.Window) (*music.Track, error) {
	timeRange, limit := "long_term", 5
	if window == music.WindowMonth {
		timeRange, limit = "short_term", 1
	}

	var payload topTracksPayload
	path := fmt.Sprintf("/me/top/tracks?time_range=%s&limit=%d", timeRange, limit)
	if err := c.doGet(ctx, path, &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("top tracks: %s", payload.Error.Message)
	}
	if len(payload.Items) == 0 {
		return nil, nil
	}

	return newTrack(payload.Items[0]), nil
}

// RecentTrack returns the most recently played track, or nil if playback
// history is empty.
func (c *Client) RecentTrack(ctx context.Context) (*music.Track, error) {
	var payload recentlyPlayedPayload
	if err := c.doGet(ctx, "/me/player/recently-played?limit=1", &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("recently played: %s", payload.Error.Message)
	}
	if len(payload.Items) == 0 {
		return nil, nil
	}

	return newTrack(payload.Items[0].Track), nil
}

// Playlist returns the showcased playlist. A provider error marker (for
// example a deleted playlist) yields nil rather than a failure so the rest
// of the snapshot is unaffected.
func (c *Client) Playlist(ctx context.Context) (*music.Playlist, error) {
	var payload playlistPayload
	if err := c.doGet(ctx, "/playlists/"+c.playlistID, &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, nil
	}

	return &music.Playlist{
		Name:        payload.Name,
		Description: payload.Description,
		URL:         payload.ExternalURLs.Spotify,
		CoverImage:  firstImage(payload.Images),
		Owner:       payload.Owner.DisplayName,
	}, nil
}

// Profile returns the listener's profile. A provider error marker yields nil
// rather than a failure.
func (c *Client) Profile(ctx context.Context) (*music.Profile, error) {
	var payload profilePayload
	if err := c.doGet(ctx, "/me", &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, nil
	}

	return &music.Profile{
		Name:      payload.DisplayName,
		Followers: payload.Followers.Total,
		URL:       payload.ExternalURLs.Spotify,
		Image:     firstImage(payload.Images),
	}, nil
}
