// Package translate renders top-pick titles in Japanese via Gemini. It is
// optional: when no API key is configured the pipeline ships English titles.
package translate

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/awano27/daily-ai-news-pages-sub000/internal/cache"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/metrics"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/ratelimit"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/storage"
)

const (
	modelName     = "gemini-1.5-flash"
	maxTitleRunes = 300
	memoryTTL     = 12 * time.Hour
)

// Translator turns an English title into Japanese. Implementations must
// degrade, not fail, on anything short of a configuration error.
type Translator interface {
	TranslateTitle(ctx context.Context, title string) (string, error)
	Close()
}

// Gemini is the production Translator: genai client behind a daily request
// cap, an in-memory cache for the current run and a JSON file cache across
// runs.
type Gemini struct {
	client  *genai.Client
	limiter *ratelimit.Limiter
	mem     *cache.Cache
	disk    *storage.FileCache
}

func NewGemini(ctx context.Context, apiKey string, limiter *ratelimit.Limiter, disk *storage.FileCache) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client:  client,
		limiter: limiter,
		mem:     cache.New(),
		disk:    disk,
	}, nil
}

func (g *Gemini) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// TranslateTitle returns the Japanese rendering of title. Cached results
// never spend quota; titles that already read as Japanese pass through.
func (g *Gemini) TranslateTitle(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || looksJapanese(title) {
		return title, nil
	}

	key := cache.Key("ja:" + title)
	if hit, ok := g.mem.Get(key); ok {
		g.limiter.RecordCacheHit(estimateTokens(title))
		metrics.Global.IncrementTranslationsCached()
		return hit, nil
	}
	if g.disk != nil {
		if hit, ok := g.disk.Get(key); ok {
			g.mem.Set(key, hit, memoryTTL)
			g.limiter.RecordCacheHit(estimateTokens(title))
			metrics.Global.IncrementTranslationsCached()
			return hit, nil
		}
	}

	if err := g.limiter.Use(); err != nil {
		return "", err
	}
	metrics.Global.IncrementTranslationsRequested()

	prompt := buildPrompt(title)
	model := g.client.GenerativeModel(modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	translated := parseResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if translated == "" {
		return "", fmt.Errorf("could not parse Gemini response")
	}

	g.mem.Set(key, translated, memoryTTL)
	if g.disk != nil {
		g.disk.Put(key, title, translated)
	}
	return translated, nil
}

func buildPrompt(title string) string {
	if utf8.RuneCountInString(title) > maxTitleRunes {
		runes := []rune(title)
		title = string(runes[:maxTitleRunes])
	}
	return fmt.Sprintf(`以下の英語ニュース見出しを自然な日本語に翻訳してください。

見出し: %s

要件:
- 固有名詞（企業名・製品名・人名）は翻訳しない
- 「〜というニュース」のような前置きを付けない
- 翻訳結果の1行のみを返す`, title)
}

// parseResponse takes the first non-empty line, stripping the label prefixes
// the model sometimes adds despite the prompt.
func parseResponse(response string) string {
	for _, raw := range strings.Split(response, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for _, prefix := range []string{"翻訳:", "日本語:", "訳:", "見出し:"} {
			line = strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
		return line
	}
	return ""
}

// looksJapanese reports whether s already contains enough kana/kanji to skip
// translation.
func looksJapanese(s string) bool {
	count := 0
	for _, r := range s {
		if (r >= 'ぁ' && r <= 'ゟ') || (r >= 'ァ' && r <= 'ヿ') || (r >= '一' && r <= '龯') {
			count++
		}
		if count > 3 {
			return true
		}
	}
	return false
}

func estimateTokens(s string) int {
	// Rough: four characters per token.
	n := utf8.RuneCountInString(s) / 4
	if n == 0 {
		n = 1
	}
	return n
}
