package ranking

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreCombinesKeywordSourceAndCodeBonuses(t *testing.T) {
	item := Item{
		Title:   "New GitHub API tutorial with code example",
		Summary: "```python\nprint(1)\n```",
		URL:     "https://github.com/foo",
		Source:  "Test",
	}

	s := NewScorer(DefaultTables())
	got := s.Score(item)

	// Recompute instead of hard-coding: five implementation keywords
	// (github, api, tutorial, example, code) cap the match bonus at 1.0,
	// then the github.com trust bonus and the code-indicator bonus compound.
	base := 3.0 * (1 + 1.0)
	want := base * 1.8 * 1.5
	if want > 10.0 {
		want = 10.0
	}

	if !almostEqual(got, want) {
		t.Errorf("Score() = %v, want %v", got, want)
	}
	if got != 10.0 {
		t.Errorf("expected compounding multipliers to clamp at 10.0, got %v", got)
	}
}

func TestScoreEmptyContent(t *testing.T) {
	s := NewScorer(DefaultTables())
	if got := s.Score(Item{}); got != 0 {
		t.Errorf("empty item scored %v, want 0", got)
	}
}

func TestScoreMalformedURLSkipsTrustBonus(t *testing.T) {
	s := NewScorer(DefaultTables())

	plain := s.Score(Item{Title: "pytorch inference tutorial"})
	broken := s.Score(Item{Title: "pytorch inference tutorial", URL: "://github.com/foo"})

	if !almostEqual(plain, broken) {
		t.Errorf("malformed URL changed score: %v vs %v", broken, plain)
	}
}

func TestScoreBusinessPenaltyPinned(t *testing.T) {
	item := Item{
		Title:   "Startup funding news",
		Summary: "The acquisition deal will be announced alongside a new managed service",
		Source:  "Test",
	}

	tables := DefaultTables()
	s := NewScorer(tables)
	got := s.Score(item)

	// One tools keyword ("service"), three business groups firing: the
	// penalty path multiplies by 0.7 because the total stays under 2.0.
	base := 1.3 * (1 + 0.3)
	want := base * tables.BusinessPenalty
	if !almostEqual(got, want) {
		t.Errorf("Score() = %v, want %v (business-penalized)", got, want)
	}
}

func TestScorePureBusinessItemStaysLow(t *testing.T) {
	item := Item{
		Title:   "Company announces quarterly earnings",
		Summary: "Routine business update, no technical content.",
		Source:  "Test",
	}

	s := NewScorer(DefaultTables())
	got := s.Score(item)
	if got >= 2.0 {
		t.Errorf("pure business item scored %v, want < 2.0", got)
	}

	p := Classify(got, DefaultTiers())
	if p.Class != "minimal" && p.Class != "low" {
		t.Errorf("pure business item classified %q, want minimal or low", p.Class)
	}
	if tags := DetectTags(item); len(tags) != 0 {
		t.Errorf("pure business item tagged %v, want none", tags)
	}
}

func TestScoreBounds(t *testing.T) {
	items := []Item{
		{},
		{Title: "ai ai ai ai"},
		{Title: "github code api sdk library framework tutorial example implementation coding", URL: "https://arxiv.org/abs/1", Summary: "benchmark 50x faster 10ms 4gb paper research study docker kubernetes gpt llm"},
		{Title: "weather today", URL: "not a url at all"},
	}

	s := NewScorer(DefaultTables())
	for _, item := range items {
		got := s.Score(item)
		if got < 0 || got > 10.0 {
			t.Errorf("Score(%q) = %v, outside [0,10]", item.Title, got)
		}
	}
}

func TestScoreDeterminism(t *testing.T) {
	item := Item{Title: "LLM inference optimization", Summary: "pytorch benchmark 3x faster", URL: "https://pytorch.org/blog"}

	s := NewScorer(DefaultTables())
	first := s.Score(item)
	second := s.Score(item)
	if first != second {
		t.Errorf("Score() not deterministic: %v vs %v", first, second)
	}
}

func TestScoreMonotonicUnderKeywordAddition(t *testing.T) {
	base := Item{
		Title:   "A short note about software",
		Summary: "Nothing in particular happened today.",
	}

	s := NewScorer(DefaultTables())
	before := s.Score(base)

	for _, cat := range DefaultTables().Keywords {
		for _, kw := range cat.Keywords {
			extended := base
			extended.Summary = base.Summary + " " + kw
			after := s.Score(extended)
			if after < before {
				t.Errorf("adding keyword %q decreased score: %v -> %v", kw, before, after)
			}
		}
	}
}

func TestTrustedSourceFirstMatchWins(t *testing.T) {
	tables := DefaultTables()
	tables.TrustedSources = []SourceTrust{
		{Domain: "example.com", Bonus: 2.0},
		{Domain: "sub.example.com", Bonus: 9.0},
	}

	s := NewScorer(tables)
	got := s.Score(Item{Title: "docker deploy", URL: "https://sub.example.com/post"})

	// "example.com" is a substring of the host and is declared first, so
	// its bonus applies and iteration stops.
	want := 2.0 * (1 + 0.6) * 2.0
	if !almostEqual(got, want) {
		t.Errorf("Score() = %v, want %v (first table entry should win)", got, want)
	}
}

func TestShortKeywordsRequireWordBoundaries(t *testing.T) {
	s := NewScorer(DefaultTables())

	// "api" must not fire inside "rapidly", nor "aws" inside "flaws".
	got := s.Score(Item{Title: "Markets shift rapidly despite flaws"})
	if got != 0 {
		t.Errorf("embedded short keywords fired, score %v, want 0", got)
	}
}
