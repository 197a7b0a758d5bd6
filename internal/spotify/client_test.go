package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akshdev/portfolio-api/internal/config"
	"github.com/akshdev/portfolio-api/internal/music"
)

// newTestClient returns a Client pointed at the given handler.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.SpotifyConfig{
		ClientID:     "id",
		ClientSecret: "secret",
		RefreshToken: "refresh",
		PlaylistID:   "playlist123",
	})
	c.baseURL = srv.URL
	c.httpClient = srv.Client()
	return c
}

func TestTopTrack(t *testing.T) {
	tests := []struct {
		name          string
		window        music.Window
		wantTimeRange string
		wantLimit     string
		body          string
		want          *music.Track
		wantErr       bool
	}{
		{
			name:          "all time with two artists and cover",
			window:        music.WindowAllTime,
			wantTimeRange: "long_term",
			wantLimit:     "5",
			body: `{"items":[
				{"name":"Song X",
				 "artists":[{"name":"A"},{"name":"B"}],
				 "external_urls":{"spotify":"https://open.spotify.com/track/x"},
				 "album":{"images":[{"url":"https://img/x1"},{"url":"https://img/x2"}]}},
				{"name":"Song Y","artists":[{"name":"C"}],
				 "external_urls":{"spotify":"https://open.spotify.com/track/y"},
				 "album":{"images":[]}}
			]}`,
			want: &music.Track{
				Title:      "Song X",
				Artist:     "A, B",
				URL:        "https://open.spotify.com/track/x",
				CoverImage: strPtr("https://img/x1"),
			},
		},
		{
			name:          "month window uses short term limit 1",
			window:        music.WindowMonth,
			wantTimeRange: "short_term",
			wantLimit:     "1",
			body: `{"items":[{"name":"Fresh","artists":[{"name":"D"}],
				"external_urls":{"spotify":"https://open.spotify.com/track/f"},
				"album":{"images":[]}}]}`,
			want: &music.Track{
				Title:  "Fresh",
				Artist: "D",
				URL:    "https://open.spotify.com/track/f",
			},
		},
		{
			name:          "empty item list yields nil",
			window:        music.WindowAllTime,
			wantTimeRange: "long_term",
			wantLimit:     "5",
			body:          `{"items":[]}`,
			want:          nil,
		},
		{
			name:          "provider error marker fails the fetch",
			window:        music.WindowAllTime,
			wantTimeRange: "long_term",
			wantLimit:     "5",
			body:          `{"error":{"status":401,"message":"The access token expired"}}`,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/me/top/tracks" {
					t.Errorf("path = %q, want /me/top/tracks", r.URL.Path)
				}
				if got := r.URL.Query().Get("time_range"); got != tt.wantTimeRange {
					t.Errorf("time_range = %q, want %q", got, tt.wantTimeRange)
				}
				if got := r.URL.Query().Get("limit"); got != tt.wantLimit {
					t.Errorf("limit = %q, want %q", got, tt.wantLimit)
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))

			got, err := c.TopTrack(context.Background(), tt.window)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			assertTrackEqual(t, got, tt.want)
		})
	}
}

func TestRecentTrack(t *testing.T) {
	t.Run("takes nested track of first item", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/player/recently-played" {
				t.Errorf("path = %q, want /me/player/recently-played", r.URL.Path)
			}
			_, _ = w.Write([]byte(`{"items":[{"track":{
				"name":"Last Played",
				"artists":[{"name":"E"}],
				"external_urls":{"spotify":"https://open.spotify.com/track/l"},
				"album":{"images":[{"url":"https://img/l"}]}
			}}]}`))
		}))

		got, err := c.RecentTrack(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertTrackEqual(t, got, &music.Track{
			Title:      "Last Played",
			Artist:     "E",
			URL:        "https://open.spotify.com/track/l",
			CoverImage: strPtr("https://img/l"),
		})
	})

	t.Run("empty history yields nil", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"items":[]}`))
		}))

		got, err := c.RecentTrack(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})
}

func TestPlaylist(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/playlists/playlist123" {
				t.Errorf("path = %q, want /playlists/playlist123", r.URL.Path)
			}
			_, _ = w.Write([]byte(`{
				"name":"Coding Mix",
				"description":"Focus tracks",
				"external_urls":{"spotify":"https://open.spotify.com/playlist/p"},
				"images":[{"url":"https://img/p"}],
				"owner":{"display_name":"aksh"}
			}`))
		}))

		got, err := c.Playlist(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("got nil playlist")
		}
		if got.Name != "Coding Mix" || got.Description != "Focus tracks" ||
			got.Owner != "aksh" || got.URL != "https://open.spotify.com/playlist/p" {
			t.Errorf("unexpected playlist: %+v", got)
		}
		if got.CoverImage == nil || *got.CoverImage != "https://img/p" {
			t.Errorf("coverImage = %v, want https://img/p", got.CoverImage)
		}
	})

	t.Run("provider error marker yields nil", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"status":404,"message":"Not found"}}`))
		}))

		got, err := c.Playlist(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("missing image list defaults to nil cover", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"name":"Bare","external_urls":{"spotify":"u"},"owner":{"display_name":"o"}}`))
		}))

		got, err := c.Playlist(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.CoverImage != nil {
			t.Errorf("got %+v, want playlist with nil cover", got)
		}
	})
}

func TestProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me" {
				t.Errorf("path = %q, want /me", r.URL.Path)
			}
			_, _ = w.Write([]byte(`{
				"display_name":"Aksh",
				"external_urls":{"spotify":"https://open.spotify.com/user/a"},
				"followers":{"total":42},
				"images":[{"url":"https://img/avatar"}]
			}`))
		}))

		got, err := c.Profile(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("got nil profile")
		}
		if got.Name != "Aksh" || got.Followers != 42 || got.URL != "https://open.spotify.com/user/a" {
			t.Errorf("unexpected profile: %+v", got)
		}
		if got.Image == nil || *got.Image != "https://img/avatar" {
			t.Errorf("image = %v, want https://img/avatar", got.Image)
		}
	})

	t.Run("provider error marker yields nil", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"status":403,"message":"Forbidden"}}`))
		}))

		got, err := c.Profile(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})
}

func TestDoGetMalformedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>rate limited</html>`))
	}))

	if _, err := c.TopTrack(context.Background(), music.WindowAllTime); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func assertTrackEqual(t *testing.T, got, want *music.Track) {
	t.Helper()

	if want == nil {
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
		return
	}
	if got == nil {
		t.Fatalf("got nil, want %+v", want)
	}
	if got.Title != want.Title {
		t.Errorf("Title = %q, want %q", got.Title, want.Title)
	}
	if got.Artist != want.Artist {
		t.Errorf("Artist = %q, want %q", got.Artist, want.Artist)
	}
	if got.URL != want.URL {
		t.Errorf("URL = %q, want %q", got.URL, want.URL)
	}
	switch {
	case want.CoverImage == nil && got.CoverImage != nil:
		t.Errorf("CoverImage = %q, want nil", *got.CoverImage)
	case want.CoverImage != nil && got.CoverImage == nil:
		t.Errorf("CoverImage = nil, want %q", *want.CoverImage)
	case want.CoverImage != nil && *got.CoverImage != *want.CoverImage:
		t.Errorf("CoverImage = %q, want %q", *got.CoverImage, *want.CoverImage)
	}
}

func strPtr(s string) *string {
	return &s
}
