package driven

import (
	"context"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// ContentSource exposes the three tier queries and the title lookup
// of one content type's store. The planner treats every source
// identically; each search fans out to all sources not excluded by
// the type filter.
type ContentSource interface {
	// Type identifies which content type this source serves
	Type() domain.ContentType

	// SearchFullText evaluates the strict web-search form of the query
	// against the source's search vector and returns rows with their
	// native relevance score
	SearchFullText(ctx context.Context, query string, limit int) ([]*domain.Candidate, error)

	// SearchPrefix evaluates the query with its last token widened to
	// a prefix wildcard, excluding rows the strict form already matches
	SearchPrefix(ctx context.Context, query string, limit int) ([]*domain.Candidate, error)

	// SearchSubstring returns rows whose title or body contains the
	// raw query case-insensitively, excluding rows matched by the two
	// stricter tiers. TitleMatched distinguishes title containment
	// from body containment.
	SearchSubstring(ctx context.Context, query string, limit int) ([]*domain.Candidate, error)

	// SuggestTitles returns titles containing the partial query,
	// shortest first
	SuggestTitles(ctx context.Context, partial string, limit int) ([]domain.Suggestion, error)
}
