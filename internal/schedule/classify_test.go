package schedule

import (
	"testing"
	"time"

	"github.com/Siddesh7/vibe-coding-series/internal/models"
	"github.com/stretchr/testify/assert"
)

func stream(id int, date, timeText string) models.Stream {
	return models.Stream{ID: id, Date: date, Time: timeText}
}

func ids(streams []models.Stream) []int {
	out := make([]int, 0, len(streams))
	for _, s := range streams {
		out = append(out, s.ID)
	}
	return out
}

func TestInstant(t *testing.T) {
	got, ok := Instant(stream(1, "Apr 10, 2025", "8:00 PM IST"))
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.April, 10, 20, 0, 0, 0, time.Local), got)

	// Without a timezone suffix.
	got, ok = Instant(stream(2, "May 1, 2025", "10:00 AM"))
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.May, 1, 10, 0, 0, 0, time.Local), got)

	for _, s := range []models.Stream{
		stream(3, "", "10:00 AM"),
		stream(4, "Apr 10, 2025", ""),
		stream(5, "Apr 10, 2025", "evening-ish"),
	} {
		_, ok := Instant(s)
		assert.False(t, ok, "stream %d", s.ID)
	}
}

func TestClassifyPartitions(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	c := Classify([]models.Stream{
		stream(1, "May 1, 2025", "10:00 AM"),
		stream(2, "Jul 1, 2025", "10:00 AM"),
	}, now)

	assert.Equal(t, []int{1}, ids(c.Past))
	assert.Equal(t, []int{2}, ids(c.Upcoming))
	assert.Empty(t, c.Undated)
}

func TestClassifyBoundaryEqualsNowIsPast(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	c := Classify([]models.Stream{stream(1, "Jun 1, 2025", "12:00 AM")}, now)

	assert.Equal(t, []int{1}, ids(c.Past))
	assert.Empty(t, c.Upcoming)
}

func TestClassifyOrdering(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	streams := []models.Stream{
		stream(1, "Apr 1, 2025", "10:00 AM"),
		stream(2, "May 1, 2025", "10:00 AM"),
		stream(3, "Jun 10, 2025", "10:00 AM"),
		stream(4, "Jul 1, 2025", "10:00 AM"),
		stream(5, "", "TBD"),
	}

	// Every input permutation yields the same ordered buckets:
	// upcoming soonest-first, past most-recently-elapsed-first.
	permutations := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 4, 0, 3, 1},
	}
	for _, perm := range permutations {
		input := make([]models.Stream, 0, len(streams))
		for _, i := range perm {
			input = append(input, streams[i])
		}
		c := Classify(input, now)
		assert.Equal(t, []int{3, 4}, ids(c.Upcoming), "perm %v", perm)
		assert.Equal(t, []int{2, 1}, ids(c.Past), "perm %v", perm)
		assert.Equal(t, []int{5}, ids(c.Undated), "perm %v", perm)
	}
}

func TestClassifyUndatedKeepInputOrder(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	c := Classify([]models.Stream{
		stream(9, "", ""),
		stream(3, "Jul 1, 2025", "10:00 AM"),
		stream(7, "someday", "later"),
	}, now)

	assert.Equal(t, []int{9, 7}, ids(c.Undated))
	assert.Equal(t, []int{3}, ids(c.Upcoming))
}

func TestClassifyEmptyInput(t *testing.T) {
	c := Classify(nil, time.Now())
	assert.Empty(t, c.Upcoming)
	assert.Empty(t, c.Past)
	assert.Empty(t, c.Undated)
}

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "April 10, 2025 8:00 PM IST",
		DisplayTime(stream(1, "Apr 10, 2025", "8:00 PM IST")))

	// Date present but the combination does not parse: raw text.
	assert.Equal(t, "Apr 10, 2025 evening-ish",
		DisplayTime(stream(2, "Apr 10, 2025", "evening-ish")))

	// No date: raw time text, then the placeholder.
	assert.Equal(t, "8:00 PM IST", DisplayTime(stream(3, "", "8:00 PM IST")))
	assert.Equal(t, "TBD", DisplayTime(stream(4, "", "")))
}
