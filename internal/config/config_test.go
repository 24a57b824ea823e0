package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.FeedsConfigPath != "configs/feeds.yaml" {
		t.Errorf("FeedsConfigPath = %q", cfg.FeedsConfigPath)
	}
	if cfg.HoursLookback != 24 {
		t.Errorf("HoursLookback = %d, want 24", cfg.HoursLookback)
	}
	if cfg.MaxItemsPerCategory != 25 {
		t.Errorf("MaxItemsPerCategory = %d, want 25", cfg.MaxItemsPerCategory)
	}
	if cfg.TopPicksCount != 10 {
		t.Errorf("TopPicksCount = %d, want 10", cfg.TopPicksCount)
	}
	if cfg.SimilarityThreshold != 0.7 {
		t.Errorf("SimilarityThreshold = %v, want 0.7", cfg.SimilarityThreshold)
	}
	if cfg.TranslateToJA {
		t.Error("TranslateToJA should default to off")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOURS_LOOKBACK", "48")
	t.Setenv("MAX_ITEMS_PER_CATEGORY", "10")
	t.Setenv("SIMILARITY_THRESHOLD", "0.85")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "10")
	t.Setenv("OUTPUT_PATH", "out/daily.html")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HoursLookback != 48 {
		t.Errorf("HoursLookback = %d, want 48", cfg.HoursLookback)
	}
	if cfg.MaxItemsPerCategory != 10 {
		t.Errorf("MaxItemsPerCategory = %d, want 10", cfg.MaxItemsPerCategory)
	}
	if cfg.SimilarityThreshold != 0.85 {
		t.Errorf("SimilarityThreshold = %v, want 0.85", cfg.SimilarityThreshold)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.OutputPath != "out/daily.html" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
}

func TestLoadRejectsTranslationWithoutKey(t *testing.T) {
	t.Setenv("TRANSLATE_TO_JA", "1")
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when translation is on without an API key")
	}
}

func TestValidateBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lookback", func(c *Config) { c.HoursLookback = 0 }},
		{"negative category cap", func(c *Config) { c.MaxItemsPerCategory = -1 }},
		{"threshold at one", func(c *Config) { c.SimilarityThreshold = 1.0 }},
		{"empty feeds path", func(c *Config) { c.FeedsConfigPath = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
