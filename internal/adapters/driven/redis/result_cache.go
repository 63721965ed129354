package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ResultCache = (*ResultCache)(nil)

const (
	// Key prefixes for Redis
	searchPrefix      = "search:"
	suggestionsPrefix = "suggestions:"

	// SearchTTL bounds how long a stale result set can be served
	SearchTTL = 5 * time.Minute
	// SuggestionsTTL is longer; titles churn slower than content
	SuggestionsTTL = 10 * time.Minute
)

// ResultCache implements driven.ResultCache using Redis with
// per-entry TTLs. Values are JSON; last write wins on key collision.
type ResultCache struct {
	client *redis.Client
}

// NewResultCache creates a new Redis-backed ResultCache
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

func searchKey(query string, typ domain.ContentType, limit int) string {
	return fmt.Sprintf("%s%s:%s:%d", searchPrefix, query, typ, limit)
}

// GetSearch retrieves a cached result set; found is false on a miss
func (c *ResultCache) GetSearch(ctx context.Context, query string, typ domain.ContentType, limit int) ([]*domain.SearchHit, bool, error) {
	data, err := c.client.Get(ctx, searchKey(query, typ, limit)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached search: %w", err)
	}

	var hits []*domain.SearchHit
	if err := json.Unmarshal(data, &hits); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached search: %w", err)
	}
	return hits, true, nil
}

// SetSearch stores a result set with the search TTL
func (c *ResultCache) SetSearch(ctx context.Context, query string, typ domain.ContentType, limit int, hits []*domain.SearchHit) error {
	data, err := json.Marshal(hits)
	if err != nil {
		return fmt.Errorf("failed to marshal search results: %w", err)
	}
	if err := c.client.Set(ctx, searchKey(query, typ, limit), data, SearchTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache search results: %w", err)
	}
	return nil
}

// GetSuggestions retrieves cached suggestions; found is false on a miss
func (c *ResultCache) GetSuggestions(ctx context.Context, partial string) ([]domain.Suggestion, bool, error) {
	data, err := c.client.Get(ctx, suggestionsPrefix+partial).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached suggestions: %w", err)
	}

	var suggestions []domain.Suggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached suggestions: %w", err)
	}
	return suggestions, true, nil
}

// SetSuggestions stores suggestions with the suggestions TTL
func (c *ResultCache) SetSuggestions(ctx context.Context, partial string, suggestions []domain.Suggestion) error {
	data, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	if err := c.client.Set(ctx, suggestionsPrefix+partial, data, SuggestionsTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache suggestions: %w", err)
	}
	return nil
}
