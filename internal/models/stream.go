package models

// StreamLink is one external link attached to a stream episode.
type StreamLink struct {
	Type  string `json:"type"` // twitter | youtube | github | demo
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Stream is one scheduled or completed livestream episode, built fresh
// from a spreadsheet row on every fetch and never persisted. ID is the
// one-based row index within the fetch.
type Stream struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	ProjectNumber int          `json:"projectNumber"`
	Date          string       `json:"date"` // "Jan 2, 2006" or empty when the source cell did not parse
	Time          string       `json:"time"` // verbatim time text, may carry a fixed timezone suffix
	Description   string       `json:"description"`
	Status        string       `json:"status"` // completed | in-progress, passed through unvalidated
	Thumbnail     string       `json:"thumbnail,omitempty"`
	Link          string       `json:"link,omitempty"`
	Links         []StreamLink `json:"links"`
}
