// Package schedule partitions stream records into upcoming and past
// relative to a reference instant.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/Siddesh7/vibe-coding-series/internal/models"
)

// tzSuffix is the fixed timezone label carried in the sheet's time
// column. It is stripped before parsing and re-appended for display.
const tzSuffix = " IST"

var instantLayouts = []string{
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 3:04 pm",
	"Jan 2, 2006 15:04",
}

// Instant combines a stream's date and time text into a single
// orderable moment in local time. ok is false when the combination
// does not parse; such streams carry no usable schedule.
func Instant(s models.Stream) (time.Time, bool) {
	if s.Date == "" {
		return time.Time{}, false
	}
	clock := strings.Replace(s.Time, tzSuffix, "", 1)
	combined := strings.TrimSpace(s.Date + " " + strings.TrimSpace(clock))
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, combined, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Classified holds the partitioned schedule. Upcoming is soonest-first,
// Past is most-recently-elapsed-first. Undated collects streams whose
// date/time never parsed; they are surfaced here rather than silently
// dropped so callers can decide what to do with them.
type Classified struct {
	Upcoming []models.Stream
	Past     []models.Stream
	Undated  []models.Stream
}

// Classify partitions and orders streams around now. A stream is
// upcoming iff its instant is strictly after now; a stream whose
// instant equals now has already started and counts as past. The
// result is deterministic for any permutation of the input: streams
// sort by instant, and undated streams keep their input order after
// every dated one.
func Classify(streams []models.Stream, now time.Time) Classified {
	type keyed struct {
		stream  models.Stream
		instant time.Time
		dated   bool
	}

	keys := make([]keyed, 0, len(streams))
	for _, s := range streams {
		t, ok := Instant(s)
		keys = append(keys, keyed{stream: s, instant: t, dated: ok})
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].dated != keys[j].dated {
			return keys[i].dated
		}
		if !keys[i].dated {
			return false
		}
		return keys[i].instant.Before(keys[j].instant)
	})

	var c Classified
	for _, k := range keys {
		switch {
		case !k.dated:
			c.Undated = append(c.Undated, k.stream)
		case k.instant.After(now):
			c.Upcoming = append(c.Upcoming, k.stream)
		default:
			c.Past = append(c.Past, k.stream)
		}
	}

	for i, j := 0, len(c.Past)-1; i < j; i, j = i+1, j-1 {
		c.Past[i], c.Past[j] = c.Past[j], c.Past[i]
	}
	return c
}

// DisplayTime renders a stream's schedule for display: the long
// localized form with the timezone label when the instant parses, the
// raw time text when only that is present, and a placeholder when the
// stream has no schedule at all.
func DisplayTime(s models.Stream) string {
	if s.Date == "" {
		if s.Time != "" {
			return s.Time
		}
		return "TBD"
	}
	if t, ok := Instant(s); ok {
		return t.Format("January 2, 2006 3:04 PM") + tzSuffix
	}
	return strings.TrimSpace(s.Date + " " + s.Time)
}
