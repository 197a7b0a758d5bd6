package music

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Source provides the individual upstream lookups. A nil record with a nil
// error means the upstream had no usable item for that slot; an error aborts
// the whole snapshot.
type Source interface {
	TopTrack(ctx context.Context, window Window) (*Track, error)
	RecentTrack(ctx context.Context) (*Track, error)
	Playlist(ctx context.Context) (*Playlist, error)
	Profile(ctx context.Context) (*Profile, error)
}

// Service composes the five upstream lookups into one Snapshot.
type Service struct {
	source Source
}

// NewService creates a Service backed by the given Source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Snapshot issues all five lookups concurrently and waits for every one of
// them. If any lookup fails the snapshot fails as a whole; there are no
// partial results.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	g, ctx := errgroup.WithContext(ctx)

	var snap Snapshot

	g.Go(func() error {
		track, err := s.source.TopTrack(ctx, WindowAllTime)
		if err != nil {
			return fmt.Errorf("all-time top track: %w", err)
		}
		snap.AllTime = track
		return nil
	})

	g.Go(func() error {
		track, err := s.source.TopTrack(ctx, WindowMonth)
		if err != nil {
			return fmt.Errorf("monthly top track: %w", err)
		}
		snap.Month = track
		return nil
	})

	g.Go(func() error {
		track, err := s.source.RecentTrack(ctx)
		if err != nil {
			return fmt.Errorf("recently played track: %w", err)
		}
		snap.Recent = track
		return nil
	})

	g.Go(func() error {
		playlist, err := s.source.Playlist(ctx)
		if err != nil {
			return fmt.Errorf("playlist: %w", err)
		}
		snap.Playlist = playlist
		return nil
	})

	g.Go(func() error {
		profile, err := s.source.Profile(ctx)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		snap.Profile = profile
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}
