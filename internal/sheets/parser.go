package sheets

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/Siddesh7/vibe-coding-series/internal/models"
)

// dateLayouts are the date formats the sheet has been seen to carry.
var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
}

// parseRow converts one raw sheet row (columns A-I) into a Stream.
// Every malformed cell degrades to a safe default so a single bad row
// never aborts the batch. id is the one-based row index of this fetch.
func parseRow(row []string, id int) models.Stream {
	s := models.Stream{
		ID:          id,
		Title:       cell(row, 0),
		Description: cell(row, 4),
		Status:      cell(row, 5),
		Thumbnail:   cell(row, 6),
		Link:        cell(row, 7),
	}
	s.ProjectNumber, _ = parseProjectNumber(cell(row, 1))
	s.Date, _ = parseDate(cell(row, 2))
	s.Time = cleanTime(cell(row, 3))
	s.Links, _ = parseLinks(cell(row, 8))
	return s
}

// cell returns the value at position i, or empty text when the row is
// shorter than that. Trailing empty cells are omitted by the API.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseProjectNumber reports ok=false when the cell was missing or
// non-numeric and the value fell back to 0.
func parseProjectNumber(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDate reparses a date cell and reformats it to the canonical
// "Jan 2, 2006" form. ok=false means the cell did not parse and the
// value fell back to empty text.
func parseDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006"), true
		}
	}
	return "", false
}

// cleanTime trims the cell and strips embedded line breaks; the time
// text is otherwise passed through verbatim, timezone suffix included.
func cleanTime(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "\r", "")
	return strings.ReplaceAll(raw, "\n", "")
}

// parseLinks decodes the links cell as a JSON array. ok=false means the
// cell was absent or malformed and the value fell back to no links.
func parseLinks(raw string) ([]models.StreamLink, bool) {
	var links []models.StreamLink
	if err := json.Unmarshal([]byte(raw), &links); err != nil || links == nil {
		return []models.StreamLink{}, false
	}
	return links, true
}
