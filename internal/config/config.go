// Package config loads pipeline settings from the environment, the same way
// the report generators are configured in CI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Collection settings
	FeedsConfigPath string
	XPostsCSV       string // Google Sheets CSV export URL; empty disables posts
	HoursLookback   int
	RequestTimeout  time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration

	// Selection settings
	MaxItemsPerCategory int
	TopPicksCount       int
	SimilarityThreshold float64

	// Translation settings
	TranslateToJA     bool
	GeminiAPIKey      string
	MaxGeminiRequests int // daily cap, 0 = unlimited

	// Cache settings
	CacheFilePath string
	CacheTTLHours int

	// Output settings
	OutputPath string

	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		FeedsConfigPath:     "configs/feeds.yaml",
		HoursLookback:       24,
		RequestTimeout:      30 * time.Second,
		RetryAttempts:       3,
		RetryDelay:          5 * time.Second,
		MaxItemsPerCategory: 25,
		TopPicksCount:       10,
		SimilarityThreshold: 0.7,
		MaxGeminiRequests:   15,
		CacheFilePath:       "translation_cache.json",
		CacheTTLHours:       72,
		OutputPath:          "index.html",
	}

	if path := os.Getenv("FEEDS_CONFIG_PATH"); path != "" {
		cfg.FeedsConfigPath = path
	}
	cfg.XPostsCSV = os.Getenv("X_POSTS_CSV")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.TranslateToJA = os.Getenv("TRANSLATE_TO_JA") == "1"

	cfg.HoursLookback = getEnvIntOrDefault("HOURS_LOOKBACK", cfg.HoursLookback)
	cfg.MaxItemsPerCategory = getEnvIntOrDefault("MAX_ITEMS_PER_CATEGORY", cfg.MaxItemsPerCategory)
	cfg.TopPicksCount = getEnvIntOrDefault("TOP_PICKS_COUNT", cfg.TopPicksCount)
	cfg.MaxGeminiRequests = getEnvIntOrDefault("MAX_GEMINI_REQUESTS", cfg.MaxGeminiRequests)
	cfg.CacheTTLHours = getEnvIntOrDefault("CACHE_TTL_HOURS", cfg.CacheTTLHours)

	if v := os.Getenv("SIMILARITY_THRESHOLD"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SimilarityThreshold = val
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryAttempts = val
		}
	}
	if v := os.Getenv("RETRY_DELAY_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryDelay = time.Duration(val) * time.Second
		}
	}

	cfg.CacheFilePath = getEnvOrDefault("CACHE_FILE_PATH", cfg.CacheFilePath)
	cfg.OutputPath = getEnvOrDefault("OUTPUT_PATH", cfg.OutputPath)

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate fails fast on values the pipeline would otherwise misprocess
// silently. Data problems degrade at run time; configuration problems stop
// the run before it starts.
func (c *Config) Validate() error {
	if c.FeedsConfigPath == "" {
		return fmt.Errorf("FEEDS_CONFIG_PATH is required")
	}
	if c.HoursLookback <= 0 {
		return fmt.Errorf("HOURS_LOOKBACK must be positive, got %d", c.HoursLookback)
	}
	if c.MaxItemsPerCategory < 0 {
		return fmt.Errorf("MAX_ITEMS_PER_CATEGORY must not be negative, got %d", c.MaxItemsPerCategory)
	}
	if c.TopPicksCount < 0 {
		return fmt.Errorf("TOP_PICKS_COUNT must not be negative, got %d", c.TopPicksCount)
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold >= 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be in (0,1), got %v", c.SimilarityThreshold)
	}
	if c.TranslateToJA && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required when TRANSLATE_TO_JA=1")
	}
	return nil
}
