package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driving"
)

// Ensure faqService implements FAQService
var _ driving.FAQService = (*faqService)(nil)

// DefaultPageLimit is used by listings when the caller sends none
const DefaultPageLimit = 10

type faqService struct {
	store driven.FAQStore
}

// NewFAQService creates a new FAQService
func NewFAQService(store driven.FAQStore) driving.FAQService {
	return &faqService{store: store}
}

func (s *faqService) Create(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
	if err := faq.Validate(); err != nil {
		return nil, err
	}
	faq.ID = uuid.NewString()
	if faq.Tags == nil {
		faq.Tags = []string{}
	}
	if err := s.store.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *faqService) Get(ctx context.Context, id string) (*domain.FAQ, error) {
	return s.store.Get(ctx, id)
}

func (s *faqService) List(ctx context.Context, page, limit int) (*domain.Page[*domain.FAQ], error) {
	page, limit = normalizePage(page, limit)
	faqs, total, err := s.store.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &domain.Page[*domain.FAQ]{
		Data:       faqs,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

// Update applies the non-empty fields of update to an existing FAQ
func (s *faqService) Update(ctx context.Context, id string, update *domain.FAQ) (*domain.FAQ, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Title != "" {
		existing.Title = update.Title
	}
	if update.Content != "" {
		existing.Content = update.Content
	}
	if update.Tags != nil {
		existing.Tags = update.Tags
	}
	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *faqService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > domain.MaxSearchLimit {
		limit = domain.MaxSearchLimit
	}
	return page, limit
}
