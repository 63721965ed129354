package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

// Interface compliance for all mocks in this package
var (
	_ driven.ContentSource = (*MockContentSource)(nil)
	_ driven.ResultCache   = (*MockResultCache)(nil)
	_ driven.FAQStore      = (*MockFAQStore)(nil)
	_ driven.WebLinkStore  = (*MockWebLinkStore)(nil)
	_ driven.PDFStore      = (*MockPDFStore)(nil)
)

// MockFAQStore is an in-memory FAQStore for testing
type MockFAQStore struct {
	mu   sync.RWMutex
	faqs map[string]*domain.FAQ
}

// NewMockFAQStore creates an empty store
func NewMockFAQStore() *MockFAQStore {
	return &MockFAQStore{faqs: make(map[string]*domain.FAQ)}
}

func (m *MockFAQStore) Create(_ context.Context, faq *domain.FAQ) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.faqs[faq.ID]; ok {
		return domain.ErrAlreadyExists
	}
	cp := *faq
	m.faqs[faq.ID] = &cp
	return nil
}

func (m *MockFAQStore) Get(_ context.Context, id string) (*domain.FAQ, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	faq, ok := m.faqs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *faq
	return &cp, nil
}

func (m *MockFAQStore) List(_ context.Context, page, limit int) ([]*domain.FAQ, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*domain.FAQ, 0, len(m.faqs))
	for _, f := range m.faqs {
		cp := *f
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return window(all, page, limit), len(all), nil
}

func (m *MockFAQStore) Update(_ context.Context, faq *domain.FAQ) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.faqs[faq.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *faq
	m.faqs[faq.ID] = &cp
	return nil
}

func (m *MockFAQStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.faqs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.faqs, id)
	return nil
}

// MockWebLinkStore is an in-memory WebLinkStore for testing
type MockWebLinkStore struct {
	mu    sync.RWMutex
	links map[string]*domain.WebLink
}

// NewMockWebLinkStore creates an empty store
func NewMockWebLinkStore() *MockWebLinkStore {
	return &MockWebLinkStore{links: make(map[string]*domain.WebLink)}
}

func (m *MockWebLinkStore) Create(_ context.Context, link *domain.WebLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.links[link.ID]; ok {
		return domain.ErrAlreadyExists
	}
	cp := *link
	m.links[link.ID] = &cp
	return nil
}

func (m *MockWebLinkStore) Get(_ context.Context, id string) (*domain.WebLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	link, ok := m.links[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *link
	return &cp, nil
}

func (m *MockWebLinkStore) List(_ context.Context, page, limit int) ([]*domain.WebLink, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*domain.WebLink, 0, len(m.links))
	for _, l := range m.links {
		cp := *l
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return window(all, page, limit), len(all), nil
}

func (m *MockWebLinkStore) Update(_ context.Context, link *domain.WebLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.links[link.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *link
	m.links[link.ID] = &cp
	return nil
}

func (m *MockWebLinkStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.links[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.links, id)
	return nil
}

// MockPDFStore is an in-memory PDFStore for testing
type MockPDFStore struct {
	mu   sync.RWMutex
	pdfs map[string]*domain.PDF
}

// NewMockPDFStore creates an empty store
func NewMockPDFStore() *MockPDFStore {
	return &MockPDFStore{pdfs: make(map[string]*domain.PDF)}
}

func (m *MockPDFStore) Create(_ context.Context, pdf *domain.PDF) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pdfs[pdf.ID]; ok {
		return domain.ErrAlreadyExists
	}
	cp := *pdf
	m.pdfs[pdf.ID] = &cp
	return nil
}

func (m *MockPDFStore) Get(_ context.Context, id string) (*domain.PDF, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pdf, ok := m.pdfs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *pdf
	return &cp, nil
}

func (m *MockPDFStore) List(_ context.Context, page, limit int) ([]*domain.PDF, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*domain.PDF, 0, len(m.pdfs))
	for _, p := range m.pdfs {
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UploadedAt.After(all[j].UploadedAt) })
	return window(all, page, limit), len(all), nil
}

func (m *MockPDFStore) Delete(_ context.Context, id string) (*domain.PDF, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pdf, ok := m.pdfs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.pdfs, id)
	cp := *pdf
	return &cp, nil
}

func window[T any](all []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(all) {
		return nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
