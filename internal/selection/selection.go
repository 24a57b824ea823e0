// Package selection orchestrates scoring, tagging, deduplication and
// truncation over one batch of content items.
package selection

import (
	"errors"
	"fmt"
	"sort"

	"github.com/awano27/daily-ai-news-pages-sub000/internal/dedup"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/ranking"
)

// ErrInvalidConfig signals a programmer error in Options. It is returned
// before any item is processed.
var ErrInvalidConfig = errors.New("invalid selection config")

const (
	defaultMaxPerCategory      = 25
	defaultTopPicksCount       = 10
	defaultSimilarityThreshold = 0.7
)

// Options configures one Select call. Zero values take the documented
// defaults; explicitly negative or out-of-range values are rejected.
type Options struct {
	MaxItemsPerCategory int
	TopPicksCount       int
	SimilarityThreshold float64

	// Overrides, mainly for tests. Nil/empty means production defaults.
	Tables     *ranking.Tables
	Tiers      []ranking.Tier
	Similarity dedup.TextSimilarity
}

func (o Options) validate() error {
	if o.MaxItemsPerCategory < 0 {
		return fmt.Errorf("%w: max_items_per_category %d is negative", ErrInvalidConfig, o.MaxItemsPerCategory)
	}
	if o.TopPicksCount < 0 {
		return fmt.Errorf("%w: top_picks_count %d is negative", ErrInvalidConfig, o.TopPicksCount)
	}
	if o.SimilarityThreshold < 0 || o.SimilarityThreshold >= 1 {
		return fmt.Errorf("%w: similarity_threshold %v outside (0,1)", ErrInvalidConfig, o.SimilarityThreshold)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.MaxItemsPerCategory == 0 {
		o.MaxItemsPerCategory = defaultMaxPerCategory
	}
	if o.TopPicksCount == 0 {
		o.TopPicksCount = defaultTopPicksCount
	}
	if o.SimilarityThreshold == 0 {
		o.SimilarityThreshold = defaultSimilarityThreshold
	}
	if o.Tables == nil {
		t := ranking.DefaultTables()
		o.Tables = &t
	}
	if len(o.Tiers) == 0 {
		o.Tiers = ranking.DefaultTiers()
	}
	return o
}

// Result is the annotated output of one pipeline pass: surviving items
// grouped by caller-assigned category, plus the cross-category top picks.
type Result struct {
	Categories map[string][]ranking.ScoredItem
	TopPicks   []ranking.ScoredItem
}

// Select runs the full pipeline: score and tag every item, sort by score
// descending (ties keep input order), dedupe globally so the best member of
// a duplicate cluster survives regardless of category, cap each category,
// and pick the URL-unique top N. An empty batch yields an empty Result.
func Select(items []ranking.Item, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	scorer := ranking.NewScorer(*opts.Tables)

	scored := make([]ranking.ScoredItem, len(items))
	for i, item := range items {
		score := scorer.Score(item)
		scored[i] = ranking.ScoredItem{
			Item:        item,
			Score:       score,
			Priority:    ranking.Classify(score, opts.Tiers),
			Tags:        ranking.DetectTags(item),
			Fingerprint: dedup.Fingerprint(item.Title + " " + item.Summary),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	deduper := dedup.New(opts.Similarity, opts.SimilarityThreshold)
	survivors := deduper.Dedupe(scored)

	result := &Result{Categories: make(map[string][]ranking.ScoredItem)}
	for _, item := range survivors {
		group := result.Categories[item.Category]
		if len(group) >= opts.MaxItemsPerCategory {
			continue
		}
		result.Categories[item.Category] = append(group, item)
	}

	result.TopPicks = topPicks(survivors, opts.TopPicksCount)
	return result, nil
}

// topPicks takes the first n of the deduped global list, collapsing exact
// URL repeats. An empty URL is the absence of a link, not a shared one, so
// such items never collapse into each other.
func topPicks(survivors []ranking.ScoredItem, n int) []ranking.ScoredItem {
	seenURLs := make(map[string]struct{})
	picks := make([]ranking.ScoredItem, 0, n)
	for _, item := range survivors {
		if len(picks) >= n {
			break
		}
		if item.URL != "" {
			if _, dup := seenURLs[item.URL]; dup {
				continue
			}
			seenURLs[item.URL] = struct{}{}
		}
		picks = append(picks, item)
	}
	return picks
}
