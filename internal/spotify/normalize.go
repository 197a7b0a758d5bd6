package spotify

import (
	"strings"

	"github.com/akshdev/portfolio-api/internal/music"
)

// newTrack converts an upstream track item into a display record.
func newTrack(item trackItem) *music.Track {
	return &music.Track{
		Title:      item.Name,
		Artist:     joinArtists(item.Artists),
		URL:        item.ExternalURLs.Spotify,
		CoverImage: firstImage(item.Album.Images),
	}
}

// joinArtists joins contributing artist names with ", " in provider order.
func joinArtists(artists []artistRef) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// firstImage returns the URL of the first image in the provider's list, or
// nil when the list is empty. First is the contract; the provider returns a
// single resolution, so no size comparison is performed.
func firstImage(images []image) *string {
	if len(images) == 0 {
		return nil
	}
	return &images[0].URL
}
