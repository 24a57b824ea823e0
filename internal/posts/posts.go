// Package posts ingests the shared spreadsheet of X posts via its CSV export.
package posts

import (
	"context"
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/awano27/daily-ai-news-pages-sub000/internal/logger"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/metrics"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/ranking"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/retry"
)

const (
	titleMaxRunes = 100
	minTextRunes  = 5
)

// The export has no header row; columns are positional.
const (
	colDate = iota
	colUsername
	colText
	colMediaURL
	colPostURL
	columnCount
)

// Ingester downloads and parses the posts CSV.
type Ingester struct {
	client      *http.Client
	retryConfig retry.Config
}

func NewIngester(timeout time.Duration, retryConfig retry.Config) *Ingester {
	return &Ingester{
		client:      &http.Client{Timeout: timeout},
		retryConfig: retryConfig,
	}
}

// Fetch downloads the CSV export and returns the parsed post items.
// Duplicate posts are left in; the selection pipeline's deduplicator handles
// them together with the RSS items.
func (ing *Ingester) Fetch(ctx context.Context, csvURL string) ([]ranking.Item, error) {
	var body []byte
	err := retry.Do(ctx, ing.retryConfig, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
		if err != nil {
			return err
		}
		resp, err := ing.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("HTTP error: %d", resp.StatusCode)
		}
		body, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts CSV: %w", err)
	}

	items := Parse(strings.NewReader(string(body)))
	metrics.Global.AddPostsIngested(len(items))
	logger.With("posts").Info("posts ingested", "count", len(items))
	return items, nil
}

// Parse reads headerless CSV rows into post items. Malformed rows are
// skipped, never fatal.
func Parse(r io.Reader) []ranking.Item {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows vary; validate per row

	var items []ranking.Item
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(row) < columnCount {
			continue
		}

		text := cleanField(row[colText])
		username := cleanField(row[colUsername])
		if username == "" || len([]rune(text)) < minTextRunes {
			continue
		}

		items = append(items, ranking.Item{
			ID:        uuid.NewString(),
			Title:     truncateRunes(text, titleMaxRunes),
			Summary:   text,
			URL:       strings.TrimSpace(row[colPostURL]),
			Source:    "X @" + strings.TrimPrefix(username, "@"),
			Category:  "Posts",
			Published: parseDate(row[colDate]),
		})
	}
	return items
}

func cleanField(s string) string {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	s = html.UnescapeString(s)
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// parseDate tries the formats the spreadsheet has contained over time. A
// zero time is fine; publication time is display-only.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(strings.Trim(s, `"`))
	for _, layout := range []string{
		"January 2, 2006 at 03:04PM",
		"2006-01-02 15:04:05",
		"2006-01-02",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
