// Package feeds collects RSS entries and normalizes them into content items.
package feeds

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"github.com/awano27/daily-ai-news-pages-sub000/internal/logger"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/metrics"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/ranking"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/retry"
)

const summaryMaxRunes = 220

// Source is one configured feed. In YAML it is either a bare URL string or a
// mapping {name, url, general, include}. General feeds carry non-AI news and
// are filtered down to entries matching the category keyword list.
type Source struct {
	Name    string   `yaml:"name"`
	URL     string   `yaml:"url"`
	General bool     `yaml:"general"`
	Include []string `yaml:"include"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (s *Source) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.URL = value.Value
		return nil
	}
	type plain Source
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Source(p)
	return nil
}

// categories in display order; YAML keys are matched case-insensitively.
var categoryNames = []string{"Business", "Tools", "Posts"}

// LoadConfig reads the feeds list grouped by category.
func LoadConfig(path string) (map[string][]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feeds config: %w", err)
	}

	var raw map[string][]Source
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse feeds config: %w", err)
	}

	norm := make(map[string][]Source)
	for key, sources := range raw {
		for _, name := range categoryNames {
			if strings.EqualFold(strings.TrimSpace(key), name) {
				norm[name] = append(norm[name], sources...)
			}
		}
	}
	return norm, nil
}

// Fetcher downloads configured feeds and turns fresh entries into items.
type Fetcher struct {
	parser        *gofeed.Parser
	lookback      time.Duration
	retryConfig   retry.Config
	now           func() time.Time
	filterGeneral bool
}

func NewFetcher(timeout time.Duration, lookback time.Duration, retryConfig retry.Config) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	return &Fetcher{
		parser:        parser,
		lookback:      lookback,
		retryConfig:   retryConfig,
		now:           time.Now,
		filterGeneral: true,
	}
}

// Collect fetches every configured feed. Failing feeds are logged and
// skipped; the run keeps whatever the remaining feeds produced.
func (f *Fetcher) Collect(ctx context.Context, cfg map[string][]Source) []ranking.Item {
	log := logger.With("feeds")
	cutoff := f.now().Add(-f.lookback)

	var items []ranking.Item
	for _, category := range categoryNames {
		for _, src := range cfg[category] {
			feed, err := f.fetchFeed(ctx, src.URL)
			if err != nil {
				log.Warn("feed fetch failed", "url", src.URL, "error", err)
				metrics.Global.IncrementFeedsFailed()
				continue
			}
			metrics.Global.IncrementFeedsFetched()

			fresh := 0
			for _, entry := range feed.Items {
				item, ok := f.entryToItem(entry, src, category, cutoff)
				if !ok {
					continue
				}
				items = append(items, item)
				fresh++
			}
			log.Info("feed loaded", "url", src.URL, "entries", len(feed.Items), "kept", fresh)
		}
	}
	return items
}

func (f *Fetcher) fetchFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	var feed *gofeed.Feed
	err := retry.Do(ctx, f.retryConfig, func() error {
		var parseErr error
		feed, parseErr = f.parser.ParseURLWithContext(url, ctx)
		return parseErr
	})
	return feed, err
}

// entryToItem applies the freshness cutoff and the AI filter for general
// feeds, then normalizes the entry.
func (f *Fetcher) entryToItem(entry *gofeed.Item, src Source, category string, cutoff time.Time) (ranking.Item, bool) {
	published := f.now()
	if entry.PublishedParsed != nil {
		published = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		published = *entry.UpdatedParsed
	}
	if published.Before(cutoff) {
		return ranking.Item{}, false
	}

	summary := CleanSummary(entry.Description)
	text := entry.Title + " " + summary

	if src.General && f.filterGeneral {
		if matchesAnyKeyword(text, negativeHints) {
			return ranking.Item{}, false
		}
		kw := keywordsFor(category, src.Include)
		if !matchesAnyKeyword(text, kw) {
			return ranking.Item{}, false
		}
	}

	source := src.Name
	if source == "" {
		source = domainOf(entry.Link)
	}

	return ranking.Item{
		Title:     strings.TrimSpace(entry.Title),
		Summary:   summary,
		URL:       entry.Link,
		Source:    source,
		Category:  category,
		Published: published,
	}, true
}

// CleanSummary strips HTML markup from a feed summary, collapses whitespace
// and truncates to a card-sized length.
func CleanSummary(raw string) string {
	if raw == "" {
		return ""
	}

	text := raw
	if strings.ContainsAny(raw, "<>") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
			text = doc.Text()
		}
	}

	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) > summaryMaxRunes {
		text = string(runes[:summaryMaxRunes]) + "…"
	}
	return text
}

func domainOf(link string) string {
	link = strings.TrimPrefix(link, "http://")
	link = strings.TrimPrefix(link, "https://")
	if idx := strings.IndexByte(link, '/'); idx >= 0 {
		link = link[:idx]
	}
	return strings.TrimPrefix(link, "www.")
}
