package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/querytext"
)

// MockContentSource is an in-memory ContentSource for testing. It
// evaluates the same tier predicates as a real store, using the
// querytext matcher in place of the database's text search.
type MockContentSource struct {
	mu      sync.RWMutex
	typ     domain.ContentType
	records []*domain.Candidate

	// SearchErr, when set, is returned by every tier query
	SearchErr error
	// SuggestErr, when set, is returned by SuggestTitles
	SuggestErr error
}

// NewMockContentSource creates a source serving one content type
func NewMockContentSource(typ domain.ContentType) *MockContentSource {
	return &MockContentSource{typ: typ}
}

// Add indexes a record. Rank on the stored record is ignored; tier
// queries compute it.
func (m *MockContentSource) Add(records ...*domain.Candidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		r.Type = m.typ
		m.records = append(m.records, r)
	}
}

func (m *MockContentSource) Type() domain.ContentType { return m.typ }

func (m *MockContentSource) SearchFullText(_ context.Context, query string, limit int) ([]*domain.Candidate, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := querytext.Parse(query)
	var out []*domain.Candidate
	for _, r := range m.records {
		text := r.Title + " " + r.Body
		if querytext.Match(text, q) {
			c := *r
			c.Rank = relevance(text, q)
			out = append(out, &c)
		}
	}
	return top(out, limit), nil
}

func (m *MockContentSource) SearchPrefix(_ context.Context, query string, limit int) ([]*domain.Candidate, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := querytext.Parse(query)
	var out []*domain.Candidate
	for _, r := range m.records {
		text := r.Title + " " + r.Body
		if !querytext.Match(text, q) && querytext.MatchPrefix(text, q) {
			c := *r
			c.Rank = relevance(text, q)
			out = append(out, &c)
		}
	}
	return top(out, limit), nil
}

func (m *MockContentSource) SearchSubstring(_ context.Context, query string, limit int) ([]*domain.Candidate, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := querytext.Parse(query)
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []*domain.Candidate
	for _, r := range m.records {
		text := r.Title + " " + r.Body
		if querytext.Match(text, q) || querytext.MatchPrefix(text, q) {
			continue
		}
		titleMatch := strings.Contains(strings.ToLower(r.Title), needle)
		bodyMatch := strings.Contains(strings.ToLower(r.Body), needle)
		if !titleMatch && !bodyMatch {
			continue
		}
		c := *r
		c.Rank = 0
		c.TitleMatched = titleMatch
		out = append(out, &c)
	}
	return top(out, limit), nil
}

func (m *MockContentSource) SuggestTitles(_ context.Context, partial string, limit int) ([]domain.Suggestion, error) {
	if m.SuggestErr != nil {
		return nil, m.SuggestErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(partial)
	var out []domain.Suggestion
	for _, r := range m.records {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, domain.Suggestion{Title: r.Title, Type: m.typ})
		}
	}
	sort.Slice(out, func(i, j int) bool { return len(out[i].Title) < len(out[j].Title) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// relevance approximates a native full-text rank: occurrence count of
// the query's positive words, squashed into (0, 1)
func relevance(text string, q querytext.Query) float64 {
	words := make(map[string]int)
	for _, w := range querytext.Tokenize(text) {
		words[w]++
	}
	hits := 0
	for _, t := range q.Terms {
		hits += words[t]
	}
	for _, p := range q.Phrases {
		for _, w := range p {
			hits += words[w]
		}
	}
	return float64(hits) / float64(hits+1)
}

func top(rows []*domain.Candidate, limit int) []*domain.Candidate {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Rank > rows[j].Rank })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
