package config

import (
	"errors"
	"testing"
)

// setRequired sets the credentials every successful Load needs.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SPOTIFY_CLIENT_ID", "id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
	t.Setenv("SPOTIFY_REFRESH_TOKEN", "refresh")
	t.Setenv("SPOTIFY_PLAYLIST_ID", "playlist123")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q, want default", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.HackerRank.BaseURL != "https://www.hackerrank.com" {
		t.Errorf("HackerRank.BaseURL = %q, want default", cfg.HackerRank.BaseURL)
	}
	if cfg.Spotify.ClientID != "id" || cfg.Spotify.PlaylistID != "playlist123" {
		t.Errorf("Spotify config not loaded: %+v", cfg.Spotify)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ADDR", "0.0.0.0:9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HACKERRANK_BASE_URL", "http://localhost:1234")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q, want 0.0.0.0:9000", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.HackerRank.BaseURL != "http://localhost:1234" {
		t.Errorf("HackerRank.BaseURL = %q, want override", cfg.HackerRank.BaseURL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v, want two origins", cfg.CORSOrigins)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	tests := []struct {
		name  string
		unset string
		want  error
	}{
		{name: "missing client id", unset: "SPOTIFY_CLIENT_ID", want: ErrMissingClientID},
		{name: "missing client secret", unset: "SPOTIFY_CLIENT_SECRET", want: ErrMissingClientSecret},
		{name: "missing refresh token", unset: "SPOTIFY_REFRESH_TOKEN", want: ErrMissingRefreshToken},
		{name: "missing playlist id", unset: "SPOTIFY_PLAYLIST_ID", want: ErrMissingPlaylistID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}
