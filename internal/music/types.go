// Package music aggregates a listening snapshot from a music provider.
package music

// Window selects the ranking window for a top-track lookup.
type Window string

// Ranking windows understood by a Source.
const (
	WindowAllTime Window = "all_time"
	WindowMonth   Window = "month"
)

// Track is the display view of a ranked or recently played track.
type Track struct {
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	URL        string  `json:"url"`
	CoverImage *string `json:"coverImage"`
}

// Playlist is the display view of the showcased playlist.
type Playlist struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	CoverImage  *string `json:"coverImage"`
	Owner       string  `json:"owner"`
}

// Profile is the display view of the listener's profile.
type Profile struct {
	Name      string  `json:"name"`
	Followers int     `json:"followers"`
	URL       string  `json:"url"`
	Image     *string `json:"image"`
}

// Snapshot is the combined response envelope. Any field may be null when the
// corresponding upstream lookup returned no usable item.
type Snapshot struct {
	AllTime  *Track    `json:"allTime"`
	Month    *Track    `json:"month"`
	Recent   *Track    `json:"recent"`
	Playlist *Playlist `json:"playlist"`
	Profile  *Profile  `json:"profile"`
}
