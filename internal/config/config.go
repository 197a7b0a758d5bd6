// Package config loads and validates process configuration.
//
// Configuration is layered: built-in defaults first, then environment
// variables. The resolved Config is passed explicitly to constructors so
// nothing reads ambient state at request time.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Sentinel errors for missing required settings.
var (
	ErrMissingClientID     = errors.New("SPOTIFY_CLIENT_ID is required")
	ErrMissingClientSecret = errors.New("SPOTIFY_CLIENT_SECRET is required")
	ErrMissingRefreshToken = errors.New("SPOTIFY_REFRESH_TOKEN is required")
	ErrMissingPlaylistID   = errors.New("SPOTIFY_PLAYLIST_ID is required")
)

// Config holds all runtime configuration for the service.
type Config struct {
	Addr        string           `koanf:"addr"`
	LogLevel    string           `koanf:"log_level"`
	CORSOrigins []string         `koanf:"cors_origins"`
	Spotify     SpotifyConfig    `koanf:"spotify"`
	HackerRank  HackerRankConfig `koanf:"hackerrank"`
}

// SpotifyConfig holds the long-lived Spotify credentials and the id of the
// showcased playlist.
type SpotifyConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	RefreshToken string `koanf:"refresh_token"`
	PlaylistID   string `koanf:"playlist_id"`
}

// HackerRankConfig holds settings for the HackerRank REST API.
type HackerRankConfig struct {
	BaseURL string `koanf:"base_url"`
}

// defaultConfig returns a Config with defaults applied. Credentials have no
// defaults and must come from the environment.
func defaultConfig() *Config {
	return &Config{
		Addr:        "127.0.0.1:8080",
		LogLevel:    "info",
		CORSOrigins: []string{"*"},
		HackerRank: HackerRankConfig{
			BaseURL: "https://www.hackerrank.com",
		},
	}
}

// envMappings maps environment variable names to koanf config paths.
var envMappings = map[string]string{
	"ADDR":                  "addr",
	"LOG_LEVEL":             "log_level",
	"CORS_ORIGINS":          "cors_origins",
	"SPOTIFY_CLIENT_ID":     "spotify.client_id",
	"SPOTIFY_CLIENT_SECRET": "spotify.client_secret",
	"SPOTIFY_REFRESH_TOKEN": "spotify.refresh_token",
	"SPOTIFY_PLAYLIST_ID":   "spotify.playlist_id",
	"HACKERRANK_BASE_URL":   "hackerrank.base_url",
}

// Load builds a Config from defaults and environment variables, then
// validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	envProvider := env.Provider("", ".", func(key string) string {
		return envMappings[key]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	// CORS_ORIGINS is a comma-separated string in the environment.
	if raw := k.String("cors_origins"); raw != "" && strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		if err := k.Set("cors_origins", origins); err != nil {
			return nil, fmt.Errorf("setting cors origins: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	switch {
	case c.Spotify.ClientID == "":
		return ErrMissingClientID
	case c.Spotify.ClientSecret == "":
		return ErrMissingClientSecret
	case c.Spotify.RefreshToken == "":
		return ErrMissingRefreshToken
	case c.Spotify.PlaylistID == "":
		return ErrMissingPlaylistID
	}
	return nil
}
