package driven

import (
	"context"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// PageScraper fetches a web page's metadata and text for indexing.
// Scrape failures are tolerated the same way extraction failures are.
type PageScraper interface {
	Scrape(ctx context.Context, url string) (*domain.PageContent, error)
}
