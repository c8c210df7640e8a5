// Package projects holds the static project catalog and the per-series
// idea lists. The two landing page variants differ only in this data,
// so they are one page over a swappable series.
package projects

import "github.com/Siddesh7/vibe-coding-series/internal/models"

// Project is one per-project detail page.
type Project struct {
	ID              int                 `json:"id"`
	Title           string              `json:"title"`
	Date            string              `json:"date"`
	Description     string              `json:"description"`
	LongDescription string              `json:"longDescription"`
	Status          string              `json:"status"`
	Thumbnail       string              `json:"thumbnail"`
	Features        []string            `json:"features"`
	TechStack       []string            `json:"techStack"`
	Challenges      string              `json:"challenges,omitempty"`
	Links           []models.StreamLink `json:"links"`
	NextProject     *NextProject        `json:"nextProject,omitempty"`
}

// NextProject teases the following episode at the bottom of a detail page.
type NextProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Link        string `json:"link"`
}

// Idea is one entry of a series' static idea list.
type Idea struct {
	Name        string `json:"name"`
	Attribution string `json:"attribution,omitempty"`
}

// Series is one configuration of the landing page: hero copy plus the
// idea list rendered below the schedule.
type Series struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
	Ideas   []Idea `json:"ideas"`
}

// ProjectByID looks up a project detail page by its numeric id.
func ProjectByID(id int) (Project, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// All returns the full project catalog in id order.
func All() []Project {
	out := make([]Project, len(catalog))
	copy(out, catalog)
	return out
}

// SeriesBySlug looks up a landing page configuration.
func SeriesBySlug(slug string) (Series, bool) {
	for _, s := range series {
		if s.Slug == slug {
			return s, true
		}
	}
	return Series{}, false
}

// DefaultSeries is the series rendered when none is configured.
func DefaultSeries() Series {
	return series[0]
}
