package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// MockResultCache is an in-memory ResultCache for testing. TTLs are
// not enforced; entries live until the mock is discarded.
type MockResultCache struct {
	mu          sync.RWMutex
	searches    map[string][]*domain.SearchHit
	suggestions map[string][]domain.Suggestion

	// GetErr/SetErr, when set, are returned by the respective operations
	GetErr error
	SetErr error

	// Counters for asserting read-through behaviour
	SearchGets int
	SearchSets int
}

// NewMockResultCache creates an empty cache
func NewMockResultCache() *MockResultCache {
	return &MockResultCache{
		searches:    make(map[string][]*domain.SearchHit),
		suggestions: make(map[string][]domain.Suggestion),
	}
}

func searchKey(query string, typ domain.ContentType, limit int) string {
	return fmt.Sprintf("search:%s:%s:%d", query, typ, limit)
}

func (m *MockResultCache) GetSearch(_ context.Context, query string, typ domain.ContentType, limit int) ([]*domain.SearchHit, bool, error) {
	m.mu.Lock()
	m.SearchGets++
	m.mu.Unlock()
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	hits, ok := m.searches[searchKey(query, typ, limit)]
	return hits, ok, nil
}

func (m *MockResultCache) SetSearch(_ context.Context, query string, typ domain.ContentType, limit int, hits []*domain.SearchHit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchSets++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.searches[searchKey(query, typ, limit)] = hits
	return nil
}

func (m *MockResultCache) GetSuggestions(_ context.Context, partial string) ([]domain.Suggestion, bool, error) {
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	suggestions, ok := m.suggestions[partial]
	return suggestions, ok, nil
}

func (m *MockResultCache) SetSuggestions(_ context.Context, partial string, suggestions []domain.Suggestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.suggestions[partial] = suggestions
	return nil
}
