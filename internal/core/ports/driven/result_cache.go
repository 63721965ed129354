package driven

import (
	"context"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// ResultCache memoizes search results and suggestions for a short
// TTL. Entries are advisory: every operation may fail or miss without
// affecting correctness, and callers fall through to the stores.
type ResultCache interface {
	// GetSearch returns the cached result set for (query, type, limit).
	// found is false on a miss; err is non-nil only on a cache fault,
	// which callers treat the same as a miss.
	GetSearch(ctx context.Context, query string, typ domain.ContentType, limit int) (hits []*domain.SearchHit, found bool, err error)

	// SetSearch stores a result set under (query, type, limit).
	// Write failures are logged by the caller and never propagated.
	SetSearch(ctx context.Context, query string, typ domain.ContentType, limit int, hits []*domain.SearchHit) error

	// GetSuggestions returns the cached suggestions for a partial query
	GetSuggestions(ctx context.Context, partial string) (suggestions []domain.Suggestion, found bool, err error)

	// SetSuggestions stores suggestions for a partial query
	SetSuggestions(ctx context.Context, partial string, suggestions []domain.Suggestion) error
}
