// Package content holds the static portfolio copy served by the JSON API.
// The site renders these sections client-side; nothing here is persisted or
// fetched from upstream.
package content

// Profile describes the site owner.
type Profile struct {
	Name  string            `json:"name"`
	Role  string            `json:"role"`
	Bio   string            `json:"bio"`
	Links map[string]string `json:"links"`
}

// Project is one portfolio project card.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Repo        string   `json:"repo"`
	Tags        []string `json:"tags"`
}

// Service is one offered service.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// About returns the owner profile.
func About() Profile {
	return Profile{
		Name: "Aksh Dev",
		Role: "Full-stack developer",
		Bio: "I build web things end to end: fast frontends, small focused " +
			"backends, and the glue in between. Most of my projects start as a " +
			"weekend experiment and turn into an excuse to learn something new.",
		Links: map[string]string{
			"github":   "https://github.com/akshdev",
			"linkedin": "https://www.linkedin.com/in/akshdev",
			"email":    "mailto:hello@akshdev.me",
		},
	}
}

// Projects returns the portfolio project cards in display order.
func Projects() []Project {
	return []Project{
		{
			Name: "Notefall",
			Description: "A keyboard-driven note-taking app with offline-first " +
				"sync and full-text search.",
			URL:  "https://notefall.akshdev.me",
			Repo: "https://github.com/akshdev/notefall",
			Tags: []string{"typescript", "react", "indexeddb"},
		},
		{
			Name: "pricewatchd",
			Description: "A small daemon that tracks product prices across shops " +
				"and pings a webhook when they drop.",
			Repo: "https://github.com/akshdev/pricewatchd",
			Tags: []string{"go", "scraping", "webhooks"},
		},
		{
			Name: "tabsets",
			Description: "A browser extension for saving and restoring grouped " +
				"tab sessions.",
			Repo: "https://github.com/akshdev/tabsets",
			Tags: []string{"javascript", "webextensions"},
		},
	}
}

// Services returns the offered services in display order.
func Services() []Service {
	return []Service{
		{
			Name:        "Web development",
			Description: "Responsive, accessible sites and web apps, from landing pages to dashboards.",
		},
		{
			Name:        "API design",
			Description: "Small, well-documented HTTP APIs and integrations with third-party services.",
		},
		{
			Name:        "Performance tuning",
			Description: "Profiling and fixing slow pages, queries, and build pipelines.",
		},
	}
}
