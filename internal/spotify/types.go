package spotify

// Upstream payload shapes. Only the fields the normalizer consumes are
// declared; everything else in the provider responses is ignored.

// apiError is the provider error marker embedded in a response body.
type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type image struct {
	URL string `json:"url"`
}

type artistRef struct {
	Name string `json:"name"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type trackItem struct {
	Name         string       `json:"name"`
	Artists      []artistRef  `json:"artists"`
	ExternalURLs externalURLs `json:"external_urls"`
	Album        struct {
		Images []image `json:"images"`
	} `json:"album"`
}

type topTracksPayload struct {
	Items []trackItem `json:"items"`
	Error *apiError   `json:"error"`
}

type recentlyPlayedPayload struct {
	Items []struct {
		Track trackItem `json:"track"`
	} `json:"items"`
	Error *apiError `json:"error"`
}

type playlistPayload struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	ExternalURLs externalURLs `json:"external_urls"`
	Images       []image      `json:"images"`
	Owner        struct {
		DisplayName string `json:"display_name"`
	} `json:"owner"`
	Error *apiError `json:"error"`
}

type profilePayload struct {
	DisplayName  string       `json:"display_name"`
	ExternalURLs externalURLs `json:"external_urls"`
	Followers    struct {
		Total int `json:"total"`
	} `json:"followers"`
	Images []image   `json:"images"`
	Error  *apiError `json:"error"`
}
