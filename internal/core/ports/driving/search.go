package driving

import (
	"context"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// SearchService handles unified search across all content types
type SearchService interface {
	// Search runs the tiered, cross-type search for a query.
	// Returns domain.ErrInvalidQuery for a blank query and
	// domain.ErrStoreUnavailable when the content store fails.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)

	// Suggest provides title autocomplete for a partial query.
	// Never returns store errors; degraded lookups yield an empty list.
	Suggest(ctx context.Context, partial string) (*domain.SuggestResponse, error)
}
