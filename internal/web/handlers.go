package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/akshdev/portfolio-api/internal/content"
	"github.com/akshdev/portfolio-api/internal/hackerrank"
	"github.com/akshdev/portfolio-api/internal/log"
	"github.com/akshdev/portfolio-api/internal/music"
)

// Fixed client-facing error messages. Which sub-call failed is logged, never
// surfaced.
const (
	errMusicFailed      = "Failed to fetch music data"
	errHackerRankFailed = "Failed to fetch HackerRank data"
	errUsernameRequired = "Username required"
)

// SnapshotProvider produces the combined music-listening snapshot.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*music.Snapshot, error)
}

// BadgeProvider produces the combined HackerRank stats for a username.
type BadgeProvider interface {
	Stats(ctx context.Context, username string) (*hackerrank.Stats, error)
}

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	snapshots SnapshotProvider
	badges    BadgeProvider
	logger    zerolog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(snapshots SnapshotProvider, badges BadgeProvider) *Handlers {
	return &Handlers{
		snapshots: snapshots,
		badges:    badges,
		logger:    log.WithComponent("handlers"),
	}
}

// Music handles GET /api/music.
func (h *Handlers) Music(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshots.Snapshot(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", GetRequestID(r.Context())).
			Msg("music snapshot failed")
		respondError(w, http.StatusInternalServerError, errMusicFailed)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HackerRank handles GET /api/hackerrank?username=<name>.
func (h *Handlers) HackerRank(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		respondError(w, http.StatusBadRequest, errUsernameRequired)
		return
	}

	stats, err := h.badges.Stats(r.Context(), username)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", GetRequestID(r.Context())).
			Str("username", username).Msg("hackerrank stats failed")
		respondError(w, http.StatusInternalServerError, errHackerRankFailed)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// Profile handles GET /api/profile.
func (h *Handlers) Profile(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, content.About())
}

// Projects handles GET /api/projects.
func (h *Handlers) Projects(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, content.Projects())
}

// Services handles GET /api/services.
func (h *Handlers) Services(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, content.Services())
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
