package mocks

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

var (
	_ driven.FileStore     = (*MockFileStore)(nil)
	_ driven.TextExtractor = (*MockTextExtractor)(nil)
	_ driven.PageScraper   = (*MockPageScraper)(nil)
)

// MockFileStore keeps uploaded files in memory
type MockFileStore struct {
	mu    sync.RWMutex
	files map[string][]byte

	// SaveErr, when set, fails every Save
	SaveErr error
}

// NewMockFileStore creates an empty file store
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{files: make(map[string][]byte)}
}

func (m *MockFileStore) Save(_ context.Context, fileName string, contents io.Reader) (string, int64, error) {
	if m.SaveErr != nil {
		return "", 0, m.SaveErr
	}
	data, err := io.ReadAll(contents)
	if err != nil {
		return "", 0, err
	}
	path := filepath.Join("uploads", fileName)
	m.mu.Lock()
	m.files[path] = data
	m.mu.Unlock()
	return path, int64(len(data)), nil
}

func (m *MockFileStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MockFileStore) Remove(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	return nil
}

// Exists reports whether a saved file is still present
func (m *MockFileStore) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok
}

// MockTextExtractor returns canned text per path
type MockTextExtractor struct {
	// Text is returned for every extraction unless Err is set
	Text string
	Err  error
}

func (m *MockTextExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// MockPageScraper returns a canned page per URL
type MockPageScraper struct {
	Pages map[string]*domain.PageContent
	Err   error
}

// NewMockPageScraper creates a scraper with no pages
func NewMockPageScraper() *MockPageScraper {
	return &MockPageScraper{Pages: make(map[string]*domain.PageContent)}
}

func (m *MockPageScraper) Scrape(_ context.Context, url string) (*domain.PageContent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	page, ok := m.Pages[url]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return page, nil
}
