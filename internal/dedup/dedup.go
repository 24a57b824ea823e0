// Package dedup removes exact and near duplicates from a scored batch.
package dedup

import (
	"github.com/awano27/daily-ai-news-pages-sub000/internal/ranking"
)

// Deduplicator filters a batch so no two surviving items share a fingerprint
// or exceed the similarity threshold. Iteration order decides survival: the
// caller sorts by descending score first, so the better duplicate wins.
type Deduplicator struct {
	sim       TextSimilarity
	threshold float64
}

// New builds a Deduplicator. A nil similarity falls back to Jaccard.
func New(sim TextSimilarity, threshold float64) *Deduplicator {
	if sim == nil {
		sim = Jaccard{}
	}
	return &Deduplicator{sim: sim, threshold: threshold}
}

// Dedupe returns the surviving items in their incoming order. It is
// idempotent: running it over its own output removes nothing further.
// The similarity pass is O(n²) against accepted items, which is fine for the
// a-few-hundred-items batches a run produces.
func (d *Deduplicator) Dedupe(items []ranking.ScoredItem) []ranking.ScoredItem {
	seen := make(map[string]struct{}, len(items))
	var acceptedTexts []string
	out := make([]ranking.ScoredItem, 0, len(items))

	for _, item := range items {
		fp := item.Fingerprint
		if fp == "" {
			fp = Fingerprint(item.Title + " " + item.Summary)
		}
		if _, dup := seen[fp]; dup {
			continue
		}

		norm := Normalize(item.Title + " " + item.Summary)
		if d.tooSimilar(norm, acceptedTexts) {
			continue
		}

		seen[fp] = struct{}{}
		acceptedTexts = append(acceptedTexts, norm)
		out = append(out, item)
	}
	return out
}

func (d *Deduplicator) tooSimilar(norm string, accepted []string) bool {
	for _, prev := range accepted {
		if d.sim.Similarity(norm, prev) >= d.threshold {
			return true
		}
	}
	return false
}
