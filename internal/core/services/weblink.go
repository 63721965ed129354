package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driving"
)

// Ensure webLinkService implements WebLinkService
var _ driving.WebLinkService = (*webLinkService)(nil)

type webLinkService struct {
	store   driven.WebLinkStore
	scraper driven.PageScraper // nil disables scraping
	logger  *slog.Logger
}

// NewWebLinkService creates a new WebLinkService. scraper may be nil.
func NewWebLinkService(store driven.WebLinkStore, scraper driven.PageScraper, logger *slog.Logger) driving.WebLinkService {
	if logger == nil {
		logger = slog.Default()
	}
	return &webLinkService{store: store, scraper: scraper, logger: logger}
}

// Create stores a link, scraping the page to fill whatever the caller
// left blank. A failed scrape still creates the record: an empty body
// is valid and the title falls back to the URL itself.
func (s *webLinkService) Create(ctx context.Context, link *domain.WebLink) (*domain.WebLink, error) {
	if err := link.Validate(); err != nil {
		return nil, err
	}

	if s.scraper != nil && (link.Title == "" || link.Description == "" || link.ContentText == "") {
		page, err := s.scraper.Scrape(ctx, link.URL)
		if err != nil {
			s.logger.Warn("page scrape failed", "url", link.URL, "error", err)
		} else {
			if link.Title == "" {
				link.Title = page.Title
			}
			if link.Description == "" {
				link.Description = page.Description
			}
			if link.ContentText == "" {
				link.ContentText = page.Text
			}
		}
	}
	if link.Title == "" {
		link.Title = link.URL
	}

	link.ID = uuid.NewString()
	if err := s.store.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *webLinkService) Get(ctx context.Context, id string) (*domain.WebLink, error) {
	return s.store.Get(ctx, id)
}

func (s *webLinkService) List(ctx context.Context, page, limit int) (*domain.Page[*domain.WebLink], error) {
	page, limit = normalizePage(page, limit)
	links, total, err := s.store.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &domain.Page[*domain.WebLink]{
		Data:       links,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

// Update applies the non-empty fields of update to an existing link
func (s *webLinkService) Update(ctx context.Context, id string, update *domain.WebLink) (*domain.WebLink, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.URL != "" {
		existing.URL = update.URL
	}
	if update.Title != "" {
		existing.Title = update.Title
	}
	if update.Description != "" {
		existing.Description = update.Description
	}
	if update.ContentText != "" {
		existing.ContentText = update.ContentText
	}
	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *webLinkService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
