package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awano27/daily-ai-news-pages-sub000/internal/ranking"
)

func TestFingerprintStableAcrossNoise(t *testing.T) {
	a := Fingerprint("Big   LLM News https://t.co/abc @someone #ai #llm")
	b := Fingerprint("big llm news")

	assert.Equal(t, a, b, "casing, whitespace, links, mentions and hashtags must not change the fingerprint")
	assert.Len(t, a, 12)
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	assert.NotEqual(t, Fingerprint("gpt-5 released"), Fingerprint("gemini released"))
}

func TestJaccardSimilarity(t *testing.T) {
	j := Jaccard{}

	assert.Equal(t, 1.0, j.Similarity("alpha beta gamma", "alpha beta gamma"))
	assert.Equal(t, 0.0, j.Similarity("alpha beta gamma", "delta epsilon zeta"))
	assert.Equal(t, 0.0, j.Similarity("", "alpha beta"), "empty side yields zero")

	// Two of three words shared: 2/4 = 0.5.
	assert.InDelta(t, 0.5, j.Similarity("alpha beta gamma", "alpha beta delta"), 1e-9)
}

func TestJaccardHandlesJapanese(t *testing.T) {
	j := Jaccard{}

	sim := j.Similarity("新しい言語モデルが公開された", "新しい言語モデルが発表された")
	assert.Greater(t, sim, 0.0, "CJK runs must count as words")

	assert.Equal(t, 0.0, j.Similarity("言語モデルの話", "天気の話題です"))
}

func TestDedupeExactFingerprint(t *testing.T) {
	items := []ranking.ScoredItem{
		scored("First take on the new model release", 8.0),
		scored("first  take on the NEW model release", 5.0), // same after normalization
	}

	d := New(nil, 0.7)
	out := d.Dedupe(items)

	require.Len(t, out, 1)
	assert.Equal(t, 8.0, out[0].Score, "earlier (higher-scored) duplicate must survive")
}

func TestDedupeSimilarContent(t *testing.T) {
	items := []ranking.ScoredItem{
		scored("openai ships realtime voice api for developers today", 9.0),
		scored("openai ships realtime voice api for developers worldwide", 4.0),
		scored("completely unrelated database performance story", 3.0),
	}

	d := New(nil, 0.7)
	out := d.Dedupe(items)

	require.Len(t, out, 2)
	assert.Equal(t, 9.0, out[0].Score)
	assert.Equal(t, 3.0, out[1].Score)
}

func TestDedupeIdempotent(t *testing.T) {
	items := []ranking.ScoredItem{
		scored("kubernetes autoscaling deep dive with benchmarks", 7.0),
		scored("kubernetes autoscaling deep dive with benchmarks extended", 6.0),
		scored("rust compiler internals explained", 5.0),
		scored("weather forecast for tomorrow morning", 1.0),
	}

	d := New(nil, 0.7)
	once := d.Dedupe(items)
	twice := d.Dedupe(once)

	assert.Equal(t, once, twice, "a second pass must remove nothing")
}

func TestDedupeSurvivorsBelowThreshold(t *testing.T) {
	items := []ranking.ScoredItem{
		scored("alpha beta gamma delta epsilon", 5.0),
		scored("alpha beta gamma delta zeta", 4.0), // 4/6 ≈ 0.67 vs first
		scored("alpha beta gamma delta epsilon eta", 3.0),
	}

	threshold := 0.7
	d := New(nil, threshold)
	out := d.Dedupe(items)

	j := Jaccard{}
	for i := range out {
		for k := i + 1; k < len(out); k++ {
			a := Normalize(out[i].Title + " " + out[i].Summary)
			b := Normalize(out[k].Title + " " + out[k].Summary)
			assert.Less(t, j.Similarity(a, b), threshold)
			assert.NotEqual(t, out[i].Fingerprint, out[k].Fingerprint)
		}
	}
}

func TestDedupeEmptyBatch(t *testing.T) {
	d := New(nil, 0.7)
	assert.Empty(t, d.Dedupe(nil))
}

func scored(title string, score float64) ranking.ScoredItem {
	return ranking.ScoredItem{
		Item:        ranking.Item{Title: title},
		Score:       score,
		Fingerprint: Fingerprint(title + " "),
	}
}
