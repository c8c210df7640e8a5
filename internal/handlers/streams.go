package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/Siddesh7/vibe-coding-series/internal/models"
	"github.com/Siddesh7/vibe-coding-series/internal/response"
	"github.com/Siddesh7/vibe-coding-series/internal/schedule"
	"github.com/Siddesh7/vibe-coding-series/internal/sheets"
	"github.com/Siddesh7/vibe-coding-series/internal/storage"

	"github.com/gin-gonic/gin"
)

// Sheets is the schedule source, wired up in main. Left nil when the
// sheet is not configured; the stream routes then fail closed.
var Sheets *sheets.Client

var streamsCtx = context.Background()

const streamsCacheKey = "streams_all"

func streamsCacheTTL() time.Duration {
	if v := os.Getenv("STREAMS_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return time.Minute
}

// GetStreamsHandler returns the raw stream schedule
// @Summary		Stream schedule
// @Description	Returns every stream row in sheet order, unclassified; partitioning into upcoming/past happens on the client
// @Tags			streams
// @Produce		json
// @Success		200	{array}		models.Stream			"Streams in sheet row order"
// @Failure		500	{object}	response.ErrorResponse	"Sheets source not configured"
// @Router			/api/streams [get]
func GetStreamsHandler(c *gin.Context) {
	if Sheets == nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch streams"})
		return
	}

	if rc := storage.RedisClient; rc != nil {
		cached, err := rc.Get(streamsCtx, streamsCacheKey).Result()
		if err == nil && cached != "" {
			var streams []models.Stream
			if err := json.Unmarshal([]byte(cached), &streams); err == nil {
				c.JSON(http.StatusOK, streams)
				return
			}
		}
	}

	streams := Sheets.GetStreams(c.Request.Context())

	if rc := storage.RedisClient; rc != nil && len(streams) > 0 {
		if body, err := json.Marshal(streams); err == nil {
			rc.Set(streamsCtx, streamsCacheKey, string(body), streamsCacheTTL())
		}
	}

	c.JSON(http.StatusOK, streams)
}

// ScheduleEntry is a stream plus its display-ready schedule text.
type ScheduleEntry struct {
	models.Stream
	Display string `json:"display"`
}

// ScheduleResponse is the server-side classified schedule. Undated
// carries streams whose date/time never parsed.
type ScheduleResponse struct {
	Upcoming []ScheduleEntry `json:"upcoming"`
	Past     []ScheduleEntry `json:"past"`
	Undated  []ScheduleEntry `json:"undated"`
}

// GetScheduleHandler returns the classified stream schedule
// @Summary		Classified stream schedule
// @Description	Partitions streams into upcoming (soonest first) and past (most recent first) relative to the current time
// @Tags			streams
// @Produce		json
// @Success		200	{object}	ScheduleResponse		"Classified schedule"
// @Failure		500	{object}	response.ErrorResponse	"Sheets source not configured"
// @Router			/api/streams/schedule [get]
func GetScheduleHandler(c *gin.Context) {
	if Sheets == nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch streams"})
		return
	}

	streams := Sheets.GetStreams(c.Request.Context())
	classified := schedule.Classify(streams, time.Now())

	c.JSON(http.StatusOK, ScheduleResponse{
		Upcoming: scheduleEntries(classified.Upcoming),
		Past:     scheduleEntries(classified.Past),
		Undated:  scheduleEntries(classified.Undated),
	})
}

func scheduleEntries(streams []models.Stream) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(streams))
	for _, s := range streams {
		entries = append(entries, ScheduleEntry{Stream: s, Display: schedule.DisplayTime(s)})
	}
	return entries
}
