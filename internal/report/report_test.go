package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awano27/daily-ai-news-pages-sub000/internal/ranking"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/selection"
)

func fixedRenderer(now time.Time) *Renderer {
	r := New()
	r.now = func() time.Time { return now }
	return r
}

func TestRenderFullPage(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, jst)
	r := fixedRenderer(now)

	item := ranking.ScoredItem{
		Item: ranking.Item{
			Title:     "New inference engine released",
			Summary:   "Throughput doubled in benchmarks.",
			URL:       "https://example.com/engine",
			Source:    "Example Blog",
			Category:  "Tools",
			Published: now.Add(-3 * time.Hour),
		},
		Score:    7.2,
		Priority: ranking.Priority{Icon: "🔥", Class: "hot", Label: "最優先"},
		Tags:     []string{"AI/ML", "Infrastructure"},
	}

	result := &selection.Result{
		Categories: map[string][]ranking.ScoredItem{"Tools": {item}},
		TopPicks:   []ranking.ScoredItem{item},
	}
	translations := map[string]string{
		"https://example.com/engine": "新しい推論エンジンが公開",
	}

	data, err := r.Render(result, translations, 24)
	require.NoError(t, err)
	page := string(data)

	assert.Contains(t, page, "New inference engine released")
	assert.Contains(t, page, "新しい推論エンジンが公開")
	assert.Contains(t, page, "https://example.com/engine")
	assert.Contains(t, page, "7.2")
	assert.Contains(t, page, "🔥")
	assert.Contains(t, page, "AI/ML")
	assert.Contains(t, page, "3時間前")
	assert.Contains(t, page, "2025-08-30 12:00 JST")
	assert.Contains(t, page, "Example Blog")
}

func TestRenderEmptyResult(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, jst)
	r := fixedRenderer(now)

	data, err := r.Render(&selection.Result{Categories: map[string][]ranking.ScoredItem{}}, nil, 24)
	require.NoError(t, err)

	page := string(data)
	assert.Contains(t, page, `id="business"`, "all three tab panels render even when empty")
	assert.Contains(t, page, `id="tools"`)
	assert.Contains(t, page, `id="posts"`)
	assert.Contains(t, page, "新着なし")
	assert.NotContains(t, page, "<article", "no cards in an empty page")
}

func TestRenderRedundantTranslationDropped(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, jst)
	r := fixedRenderer(now)

	item := ranking.ScoredItem{
		Item:  ranking.Item{Title: "既に日本語のタイトル", URL: "https://example.com/ja", Category: "Business"},
		Score: 2.0,
	}
	result := &selection.Result{
		Categories: map[string][]ranking.ScoredItem{"Business": {item}},
	}
	translations := map[string]string{"https://example.com/ja": "既に日本語のタイトル"}

	data, err := r.Render(result, translations, 24)
	require.NoError(t, err)

	if got := strings.Count(string(data), "既に日本語のタイトル"); got != 1 {
		t.Errorf("title rendered %d times, want once when the translation is identical", got)
	}
}

func TestRenderEscapesMarkup(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, jst)
	r := fixedRenderer(now)

	item := ranking.ScoredItem{
		Item: ranking.Item{
			Title:    "<script>alert(1)</script> headline",
			URL:      "https://example.com/x",
			Category: "Tools",
		},
	}
	result := &selection.Result{
		Categories: map[string][]ranking.ScoredItem{"Tools": {item}},
	}

	data, err := r.Render(result, nil, 24)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<script>alert(1)</script>")
}

func TestWrite(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, jst)
	r := fixedRenderer(now)
	path := filepath.Join(t.TempDir(), "index.html")

	err := r.Write(path, &selection.Result{Categories: map[string][]ranking.ScoredItem{}}, nil, 24)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!doctype html>")
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, jst)

	cases := []struct {
		delta time.Duration
		want  string
	}{
		{30 * time.Second, "たった今"},
		{5 * time.Minute, "5分前"},
		{2 * time.Hour, "2時間前"},
		{3 * 24 * time.Hour, "3日前"},
	}

	for _, tc := range cases {
		if got := timeAgo(now.Add(-tc.delta), now); got != tc.want {
			t.Errorf("timeAgo(-%v) = %q, want %q", tc.delta, got, tc.want)
		}
	}
}
