package driven

import (
	"context"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// FAQStore persists FAQ records
type FAQStore interface {
	Create(ctx context.Context, faq *domain.FAQ) error
	Get(ctx context.Context, id string) (*domain.FAQ, error)
	List(ctx context.Context, page, limit int) ([]*domain.FAQ, int, error)
	Update(ctx context.Context, faq *domain.FAQ) error
	Delete(ctx context.Context, id string) error
}

// WebLinkStore persists web link records
type WebLinkStore interface {
	Create(ctx context.Context, link *domain.WebLink) error
	Get(ctx context.Context, id string) (*domain.WebLink, error)
	List(ctx context.Context, page, limit int) ([]*domain.WebLink, int, error)
	Update(ctx context.Context, link *domain.WebLink) error
	Delete(ctx context.Context, id string) error
}

// PDFStore persists PDF records. The stored file itself lives in a
// FileStore; FilePath is an opaque reference into it.
type PDFStore interface {
	Create(ctx context.Context, pdf *domain.PDF) error
	Get(ctx context.Context, id string) (*domain.PDF, error)
	List(ctx context.Context, page, limit int) ([]*domain.PDF, int, error)
	Delete(ctx context.Context, id string) (*domain.PDF, error)
}
