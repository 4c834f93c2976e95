package client

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/jsliwa/fishcards/pkg/api"
)

const (
	defaultCacheTTL     = 30 * time.Minute
	defaultCacheEntries = 32
)

type cacheEntry struct {
	suggestions []api.AiFlashcardSuggestionItem
	storedAt    time.Time
}

// SuggestionCache memoizes AI suggestion batches per source text so that
// regenerating from unchanged input skips the network round trip. Keys hash
// the entire source text plus its length, so texts sharing a prefix never
// collide.
type SuggestionCache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewSuggestionCache() *SuggestionCache {
	return &SuggestionCache{
		entries:    make(map[string]cacheEntry),
		ttl:        defaultCacheTTL,
		maxEntries: defaultCacheEntries,
		now:        time.Now,
	}
}

func cacheKey(sourceText string) string {
	h := fnv.New64a()
	h.Write([]byte(sourceText))
	return fmt.Sprintf("%x:%d", h.Sum64(), len(sourceText))
}

// Get returns a cached batch for the source text, or false when absent or
// expired. Expired entries are dropped on access. The returned slice is a
// copy; callers may compact or reorder it without touching the cache.
func (c *SuggestionCache) Get(sourceText string) ([]api.AiFlashcardSuggestionItem, bool) {
	key := cacheKey(sourceText)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return append([]api.AiFlashcardSuggestionItem(nil), entry.suggestions...), true
}

// Put stores a batch, evicting the oldest entry when the cache is full. The
// batch is copied on the way in so later caller mutations cannot corrupt the
// stored entry.
func (c *SuggestionCache) Put(sourceText string, suggestions []api.AiFlashcardSuggestionItem) {
	key := cacheKey(sourceText)
	stored := append([]api.AiFlashcardSuggestionItem(nil), suggestions...)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		var oldestKey string
		var oldestAt time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.storedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.storedAt
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = cacheEntry{suggestions: stored, storedAt: c.now()}
}

// Invalidate removes the entry for a source text, if present.
func (c *SuggestionCache) Invalidate(sourceText string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cacheKey(sourceText))
}

// Len reports the number of live entries.
func (c *SuggestionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
