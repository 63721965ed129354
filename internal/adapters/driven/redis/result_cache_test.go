package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// setupTestCache creates a miniredis-backed ResultCache
func setupTestCache(t *testing.T) (*ResultCache, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewResultCache(client)

	return cache, mr, func() {
		client.Close()
		mr.Close()
	}
}

func testHits() []*domain.SearchHit {
	url := "https://example.com/returns"
	return []*domain.SearchHit{
		{
			Type:      domain.ContentTypeFAQ,
			ID:        "faq-1",
			Title:     "Refund Policy",
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			Snippet:   "Our refund policy allows 30 days",
			Rank:      0.61,
		},
		{
			Type:      domain.ContentTypeLink,
			ID:        "link-1",
			Title:     "Returns portal",
			URL:       &url,
			CreatedAt: time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
			Rank:      0.32,
		},
	}
}

func TestResultCache_SearchRoundTrip(t *testing.T) {
	cache, _, cleanup := setupTestCache(t)
	defer cleanup()

	ctx := context.Background()

	// Miss before any write
	_, found, err := cache.GetSearch(ctx, "refund", domain.ContentTypeFAQ, 20)
	if err != nil {
		t.Fatalf("unexpected error on empty cache: %v", err)
	}
	if found {
		t.Fatal("expected miss on empty cache")
	}

	hits := testHits()
	if err := cache.SetSearch(ctx, "refund", domain.ContentTypeFAQ, 20, hits); err != nil {
		t.Fatalf("unexpected error caching search: %v", err)
	}

	got, found, err := cache.GetSearch(ctx, "refund", domain.ContentTypeFAQ, 20)
	if err != nil {
		t.Fatalf("unexpected error reading cache: %v", err)
	}
	if !found {
		t.Fatal("expected hit after write")
	}
	if len(got) != len(hits) {
		t.Fatalf("expected %d hits, got %d", len(hits), len(got))
	}
	if got[0].ID != "faq-1" || got[0].Rank != 0.61 {
		t.Errorf("first hit mismatch: %+v", got[0])
	}
	if got[1].URL == nil || *got[1].URL != "https://example.com/returns" {
		t.Errorf("expected link URL to survive the round trip, got %+v", got[1])
	}
	if got[1].FilePath != nil {
		t.Errorf("expected nil file_path for link, got %v", *got[1].FilePath)
	}
}

func TestResultCache_KeyIncludesTypeAndLimit(t *testing.T) {
	cache, _, cleanup := setupTestCache(t)
	defer cleanup()

	ctx := context.Background()
	if err := cache.SetSearch(ctx, "refund", domain.ContentTypeFAQ, 20, testHits()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same query under a different type filter or limit is a distinct entry
	if _, found, _ := cache.GetSearch(ctx, "refund", "", 20); found {
		t.Error("expected miss for different type filter")
	}
	if _, found, _ := cache.GetSearch(ctx, "refund", domain.ContentTypeFAQ, 10); found {
		t.Error("expected miss for different limit")
	}
}

func TestResultCache_SearchTTLExpiry(t *testing.T) {
	cache, mr, cleanup := setupTestCache(t)
	defer cleanup()

	ctx := context.Background()
	if err := cache.SetSearch(ctx, "refund", "", 20, testHits()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(SearchTTL + time.Second)

	_, found, err := cache.GetSearch(ctx, "refund", "", 20)
	if err != nil {
		t.Fatalf("unexpected error after expiry: %v", err)
	}
	if found {
		t.Error("expected miss after TTL expiry")
	}
}

func TestResultCache_EmptyResultSetIsCacheable(t *testing.T) {
	cache, _, cleanup := setupTestCache(t)
	defer cleanup()

	ctx := context.Background()
	if err := cache.SetSearch(ctx, "xyzzynomatch", "", 20, []*domain.SearchHit{}); err != nil {
		t.Fatalf("unexpected error caching empty results: %v", err)
	}

	got, found, err := cache.GetSearch(ctx, "xyzzynomatch", "", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected empty result set to be a cache hit")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 hits, got %d", len(got))
	}
}

func TestResultCache_SuggestionsRoundTrip(t *testing.T) {
	cache, mr, cleanup := setupTestCache(t)
	defer cleanup()

	ctx := context.Background()
	suggestions := []domain.Suggestion{
		{Title: "Refund Policy", Type: domain.ContentTypeFAQ},
		{Title: "refund-form.pdf", Type: domain.ContentTypePDF},
	}

	if err := cache.SetSuggestions(ctx, "ref", suggestions); err != nil {
		t.Fatalf("unexpected error caching suggestions: %v", err)
	}

	got, found, err := cache.GetSuggestions(ctx, "ref")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected hit after write")
	}
	if len(got) != 2 || got[0].Title != "Refund Policy" || got[1].Type != domain.ContentTypePDF {
		t.Errorf("suggestions mismatch: %+v", got)
	}

	// Suggestions outlive search entries
	mr.FastForward(SearchTTL + time.Second)
	if _, found, _ := cache.GetSuggestions(ctx, "ref"); !found {
		t.Error("expected suggestions to survive the search TTL window")
	}

	mr.FastForward(SuggestionsTTL)
	if _, found, _ := cache.GetSuggestions(ctx, "ref"); found {
		t.Error("expected miss after suggestions TTL expiry")
	}
}

func TestResultCache_ConnectionFailure(t *testing.T) {
	cache, mr, cleanup := setupTestCache(t)
	defer cleanup()

	mr.Close()

	ctx := context.Background()
	if _, _, err := cache.GetSearch(ctx, "refund", "", 20); err == nil {
		t.Error("expected error when redis is down")
	}
	if err := cache.SetSearch(ctx, "refund", "", 20, testHits()); err == nil {
		t.Error("expected error when redis is down")
	}
}
