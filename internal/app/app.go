// Package app wires the pipeline: collect → select → translate → render.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/awano27/daily-ai-news-pages-sub000/internal/config"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/feeds"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/logger"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/metrics"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/posts"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/ranking"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/ratelimit"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/report"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/retry"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/selection"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/storage"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/translate"
)

// Run executes one build of the report. Configuration errors abort before
// any processing; data errors degrade to fewer items on the page.
func Run(ctx context.Context) error {
	startTime := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(startTime))
	}()

	logger.Init()
	log := logger.With("app")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	items, err := collect(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info("collected items", "count", len(items))
	metrics.Global.AddItemsProcessed(len(items))

	result, err := selection.Select(items, selection.Options{
		MaxItemsPerCategory: cfg.MaxItemsPerCategory,
		TopPicksCount:       cfg.TopPicksCount,
		SimilarityThreshold: cfg.SimilarityThreshold,
	})
	if err != nil {
		return fmt.Errorf("selection: %w", err)
	}

	kept := survivorCount(result)
	if dropped := len(items) - kept; dropped > 0 {
		metrics.Global.AddDuplicatesFiltered(dropped)
	}
	log.Info("selection done", "kept", kept, "top_picks", len(result.TopPicks))

	translations := translateTopPicks(ctx, cfg, result.TopPicks)

	renderer := report.New()
	if err := renderer.Write(cfg.OutputPath, result, translations, cfg.HoursLookback); err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}

	metrics.Global.SetLastRun()
	log.Info("report written", "path", cfg.OutputPath)
	return nil
}

func collect(ctx context.Context, cfg *config.Config) ([]ranking.Item, error) {
	retryConfig := retry.Config{
		MaxAttempts: cfg.RetryAttempts,
		Delay:       cfg.RetryDelay,
		Backoff:     true,
	}

	feedsCfg, err := feeds.LoadConfig(cfg.FeedsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("feeds config: %w", err)
	}

	fetcher := feeds.NewFetcher(cfg.RequestTimeout, time.Duration(cfg.HoursLookback)*time.Hour, retryConfig)
	items := fetcher.Collect(ctx, feedsCfg)

	if cfg.XPostsCSV != "" {
		ingester := posts.NewIngester(cfg.RequestTimeout, retryConfig)
		postItems, err := ingester.Fetch(ctx, cfg.XPostsCSV)
		if err != nil {
			// Posts are additive; a broken spreadsheet must not sink the run.
			logger.Warn("posts ingestion failed", "error", err)
		} else {
			items = append(items, postItems...)
		}
	}

	return items, nil
}

func survivorCount(result *selection.Result) int {
	n := 0
	for _, group := range result.Categories {
		n += len(group)
	}
	return n
}

// translateTopPicks returns a map of item URL (or title) to Japanese title.
// Any failure leaves the pick untranslated.
func translateTopPicks(ctx context.Context, cfg *config.Config, picks []ranking.ScoredItem) map[string]string {
	if !cfg.TranslateToJA || cfg.GeminiAPIKey == "" || len(picks) == 0 {
		return nil
	}
	log := logger.With("translate")

	disk := storage.NewFileCache(cfg.CacheFilePath, cfg.CacheTTLHours)
	if err := disk.Load(); err != nil {
		log.Warn("translation cache load failed", "error", err)
	}

	limiter := ratelimit.New(cfg.MaxGeminiRequests)
	translator, err := translate.NewGemini(ctx, cfg.GeminiAPIKey, limiter, disk)
	if err != nil {
		log.Warn("gemini client unavailable", "error", err)
		return nil
	}
	defer translator.Close()

	translations := make(map[string]string, len(picks))
	for _, pick := range picks {
		ja, err := translator.TranslateTitle(ctx, pick.Title)
		if err != nil {
			log.Warn("title translation failed", "title", pick.Title, "error", err)
			continue
		}
		key := pick.URL
		if key == "" {
			key = pick.Title
		}
		translations[key] = ja
	}

	if err := disk.Save(); err != nil {
		log.Warn("translation cache save failed", "error", err)
	}
	log.Info("translations done", "count", len(translations), "cache_hit_rate", limiter.CacheHitRate())
	return translations
}
