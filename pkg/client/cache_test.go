package client

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jsliwa/fishcards/pkg/api"
)

func suggestionBatch(tag string) []api.AiFlashcardSuggestionItem {
	return []api.AiFlashcardSuggestionItem{
		{SuggestedQuestion: "Question " + tag, SuggestedAnswer: "Answer " + tag, AiModelUsed: "test"},
	}
}

func TestCacheHitAndMiss(t *testing.T) {
	cache := NewSuggestionCache()

	if _, ok := cache.Get("unseen text"); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	cache.Put("some source text", suggestionBatch("a"))
	got, ok := cache.Get("some source text")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got[0].SuggestedQuestion != "Question a" {
		t.Fatalf("wrong batch returned: %+v", got)
	}
}

func TestCacheKeysDistinguishSharedPrefixes(t *testing.T) {
	cache := NewSuggestionCache()
	prefix := strings.Repeat("shared prefix text ", 30)

	cache.Put(prefix+"first tail", suggestionBatch("first"))
	cache.Put(prefix+"other tail", suggestionBatch("other"))

	got, ok := cache.Get(prefix + "first tail")
	if !ok || got[0].SuggestedQuestion != "Question first" {
		t.Fatalf("prefix sharing must not collide, got %+v", got)
	}
	got, ok = cache.Get(prefix + "other tail")
	if !ok || got[0].SuggestedQuestion != "Question other" {
		t.Fatalf("prefix sharing must not collide, got %+v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewSuggestionCache()
	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.Put("aging text", suggestionBatch("a"))

	now = now.Add(29 * time.Minute)
	if _, ok := cache.Get("aging text"); !ok {
		t.Fatal("entry should survive 29 minutes")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get("aging text"); ok {
		t.Fatal("entry should expire after the TTL")
	}
	if cache.Len() != 0 {
		t.Fatalf("expired entry should be dropped, cache holds %d", cache.Len())
	}
}

func TestCacheEvictsOldestWhenFull(t *testing.T) {
	cache := NewSuggestionCache()
	now := time.Now()
	cache.now = func() time.Time { return now }
	cache.maxEntries = 3

	for i := 0; i < 3; i++ {
		cache.Put(fmt.Sprintf("text %d", i), suggestionBatch(fmt.Sprintf("%d", i)))
		now = now.Add(time.Second)
	}
	cache.Put("text 3", suggestionBatch("3"))

	if cache.Len() != 3 {
		t.Fatalf("cache must stay at its cap, holds %d", cache.Len())
	}
	if _, ok := cache.Get("text 0"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if _, ok := cache.Get("text 3"); !ok {
		t.Fatal("newest entry should be present")
	}
}

func TestCacheIsolatedFromCallerMutation(t *testing.T) {
	cache := NewSuggestionCache()
	batch := []api.AiFlashcardSuggestionItem{
		{SuggestedQuestion: "Question a", SuggestedAnswer: "Answer a", AiModelUsed: "test"},
		{SuggestedQuestion: "Question b", SuggestedAnswer: "Answer b", AiModelUsed: "test"},
	}
	cache.Put("some source text", batch)

	// Compacting the caller's slice must not reach the stored entry.
	batch[0] = batch[1]
	got, ok := cache.Get("some source text")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got[0].SuggestedQuestion != "Question a" {
		t.Fatalf("Put must copy, stored entry was mutated: %+v", got)
	}

	// Mutating the returned slice must not reach the stored entry either.
	got[0] = got[1]
	again, _ := cache.Get("some source text")
	if again[0].SuggestedQuestion != "Question a" {
		t.Fatalf("Get must copy, stored entry was mutated: %+v", again)
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewSuggestionCache()
	cache.Put("some text", suggestionBatch("a"))
	cache.Invalidate("some text")
	if _, ok := cache.Get("some text"); ok {
		t.Fatal("invalidated entry should be gone")
	}
}
