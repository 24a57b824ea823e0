package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Translation is one cached translation result.
type Translation struct {
	Key        string    `json:"key"`
	Original   string    `json:"original"`
	Translated string    `json:"translated"`
	CachedAt   time.Time `json:"cached_at"`
}

// FileCache persists translations between runs in a JSON file, so a daily
// rebuild does not re-spend API quota on titles it translated yesterday.
type FileCache struct {
	filePath string
	ttlHours int
	items    map[string]Translation
	mu       sync.RWMutex
}

// NewFileCache creates a new file cache instance.
func NewFileCache(filePath string, ttlHours int) *FileCache {
	return &FileCache{
		filePath: filePath,
		ttlHours: ttlHours,
		items:    make(map[string]Translation),
	}
}

// Load loads the existing cache from disk, dropping expired entries. A
// missing or empty file is a fresh start, not an error.
func (fc *FileCache) Load() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if _, err := os.Stat(fc.filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var items []Translation
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to unmarshal cache: %w", err)
	}

	cutoffTime := time.Now().Add(-time.Duration(fc.ttlHours) * time.Hour)
	for _, item := range items {
		if item.CachedAt.After(cutoffTime) {
			fc.items[item.Key] = item
		}
	}

	return nil
}

// Save writes the current cache to disk.
func (fc *FileCache) Save() error {
	fc.mu.RLock()
	items := make([]Translation, 0, len(fc.items))
	for _, item := range fc.items {
		items = append(items, item)
	}
	fc.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(fc.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// Get returns a cached translation still inside its TTL.
func (fc *FileCache) Get(key string) (string, bool) {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	item, exists := fc.items[key]
	if !exists {
		return "", false
	}

	cutoffTime := time.Now().Add(-time.Duration(fc.ttlHours) * time.Hour)
	if !item.CachedAt.After(cutoffTime) {
		return "", false
	}
	return item.Translated, true
}

// Put stores a translation under key.
func (fc *FileCache) Put(key, original, translated string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.items[key] = Translation{
		Key:        key,
		Original:   original,
		Translated: translated,
		CachedAt:   time.Now(),
	}
}

// Cleanup removes expired items from memory.
func (fc *FileCache) Cleanup() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	cutoffTime := time.Now().Add(-time.Duration(fc.ttlHours) * time.Hour)
	for key, item := range fc.items {
		if item.CachedAt.Before(cutoffTime) {
			delete(fc.items, key)
		}
	}
}

// GetStats returns cache statistics.
func (fc *FileCache) GetStats() map[string]int {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	return map[string]int{
		"total_items": len(fc.items),
	}
}
