// Package sheets retrieves the stream schedule from the Google Sheets
// values API and maps raw rows into stream records.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Siddesh7/vibe-coding-series/internal/models"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com"

	// All populated rows from the second row onward, columns A-I.
	// Row one holds the column headers.
	readRange = "A2:I"
)

// Client reads stream rows from one spreadsheet. BaseURL and HTTPClient
// are overridable so tests can point the client at a local server.
type Client struct {
	SpreadsheetID string
	APIKey        string
	BaseURL       string
	HTTPClient    *http.Client

	creds *serviceAccount
}

// NewClientFromEnv builds a client from GOOGLE_SHEET_ID plus either
// GOOGLE_SHEETS_CREDENTIALS (service account JSON) or
// GOOGLE_SHEETS_API_KEY.
func NewClientFromEnv() (*Client, error) {
	id := os.Getenv("GOOGLE_SHEET_ID")
	if id == "" {
		return nil, errors.New("GOOGLE_SHEET_ID is not set")
	}

	c := &Client{
		SpreadsheetID: id,
		APIKey:        os.Getenv("GOOGLE_SHEETS_API_KEY"),
		BaseURL:       defaultBaseURL,
		HTTPClient:    &http.Client{Timeout: 30 * time.Second},
	}

	if raw := os.Getenv("GOOGLE_SHEETS_CREDENTIALS"); raw != "" {
		creds, err := parseServiceAccount([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("GOOGLE_SHEETS_CREDENTIALS: %w", err)
		}
		c.creds = creds
	}

	return c, nil
}

// valueRange mirrors the values.get response body.
type valueRange struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// GetStreams returns the current schedule in sheet row order. Any
// failure reaching the sheet is logged and degrades to an empty result
// so the page always renders, possibly with no data.
func (c *Client) GetStreams(ctx context.Context) []models.Stream {
	rows, err := c.fetchRows(ctx)
	if err != nil {
		log.Println("Error fetching data from Google Sheets:", err)
		return []models.Stream{}
	}

	streams := make([]models.Stream, 0, len(rows))
	for i, row := range rows {
		streams = append(streams, parseRow(row, i+1))
	}
	return streams
}

func (c *Client) fetchRows(ctx context.Context) ([][]string, error) {
	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.BaseURL, url.PathEscape(c.SpreadsheetID), url.PathEscape(readRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case c.creds != nil:
		token, err := c.creds.bearerToken(ctx, c.HTTPClient)
		if err != nil {
			return nil, fmt.Errorf("service account token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	case c.APIKey != "":
		q := req.URL.Query()
		q.Set("key", c.APIKey)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets API returned status %d", resp.StatusCode)
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode sheets response: %w", err)
	}
	return vr.Values, nil
}
