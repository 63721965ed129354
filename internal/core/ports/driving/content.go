package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// FAQService handles FAQ management
type FAQService interface {
	Create(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error)
	Get(ctx context.Context, id string) (*domain.FAQ, error)
	List(ctx context.Context, page, limit int) (*domain.Page[*domain.FAQ], error)
	Update(ctx context.Context, id string, update *domain.FAQ) (*domain.FAQ, error)
	Delete(ctx context.Context, id string) error
}

// WebLinkService handles web link management and page scraping
type WebLinkService interface {
	// Create stores a link; missing title/description/text are filled
	// from the scraped page when scraping succeeds
	Create(ctx context.Context, link *domain.WebLink) (*domain.WebLink, error)
	Get(ctx context.Context, id string) (*domain.WebLink, error)
	List(ctx context.Context, page, limit int) (*domain.Page[*domain.WebLink], error)
	Update(ctx context.Context, id string, update *domain.WebLink) (*domain.WebLink, error)
	Delete(ctx context.Context, id string) error
}

// PDFService handles PDF upload, retrieval and deletion
type PDFService interface {
	// Upload stores the file, extracts its text and persists the record
	Upload(ctx context.Context, fileName string, contents io.Reader) (*domain.PDF, error)
	Get(ctx context.Context, id string) (*domain.PDF, error)
	// OpenFile streams the stored file for download
	OpenFile(ctx context.Context, id string) (io.ReadCloser, *domain.PDF, error)
	List(ctx context.Context, page, limit int) (*domain.Page[*domain.PDF], error)
	Delete(ctx context.Context, id string) error
}
