package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driving"
	"github.com/custodia-labs/helpdesk-search/internal/querytext"
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

// SuggestLimit caps how many autocomplete candidates a lookup returns
const SuggestLimit = 5

// searchService implements the tiered cross-type search. Each request
// consults the result cache first, then fans one tiered sub-query out
// per active content source, blends the tier scores onto a single
// comparable scale, merges, sorts and truncates globally.
type searchService struct {
	sources []driven.ContentSource
	cache   driven.ResultCache // nil when no cache is configured
	logger  *slog.Logger
}

// NewSearchService creates a new SearchService. cache may be nil, in
// which case every request goes straight to the sources.
func NewSearchService(sources []driven.ContentSource, cache driven.ResultCache, logger *slog.Logger) driving.SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		sources: sources,
		cache:   cache,
		logger:  logger,
	}
}

// scored pairs a candidate row with its blended rank
type scored struct {
	cand *domain.Candidate
	rank float64
}

// Search runs the tiered, cross-type search for a query
func (s *searchService) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}
	if _, err := domain.ParseContentType(string(opts.Type)); err != nil {
		return nil, fmt.Errorf("%w: unknown type filter %q", domain.ErrInvalidInput, opts.Type)
	}
	opts = opts.Normalize()

	// Read-through cache: a hit short-circuits the stores entirely
	if s.cache != nil {
		hits, found, err := s.cache.GetSearch(ctx, query, opts.Type, opts.Limit)
		if err != nil {
			s.logger.Warn("search cache read failed", "error", err)
		} else if found {
			return &domain.SearchResponse{Query: query, Count: len(hits), Results: hits, Cached: true}, nil
		}
	}

	// One tiered sub-query per active source. Each source over-fetches
	// up to the full limit so no source is starved before the global
	// merge decides.
	var (
		mu         sync.Mutex
		candidates []scored
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, src := range s.sources {
		if opts.Type != "" && src.Type() != opts.Type {
			continue
		}
		g.Go(func() error {
			rows, err := s.collectTiered(gctx, src, query, opts.Limit)
			if err != nil {
				return fmt.Errorf("%w: %s source: %v", domain.ErrStoreUnavailable, src.Type(), err)
			}
			mu.Lock()
			candidates = append(candidates, rows...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Global merge: sort by blended rank, truncate after merging so a
	// single type may dominate when it scores higher. Ties break on
	// recency, then (type, id) for a deterministic total order.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].rank != candidates[j].rank {
			return candidates[i].rank > candidates[j].rank
		}
		ci, cj := candidates[i].cand, candidates[j].cand
		if !ci.CreatedAt.Equal(cj.CreatedAt) {
			return ci.CreatedAt.After(cj.CreatedAt)
		}
		if ci.Type != cj.Type {
			return ci.Type < cj.Type
		}
		return ci.ID < cj.ID
	})
	if len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}

	hits := make([]*domain.SearchHit, 0, len(candidates))
	for _, sc := range candidates {
		hits = append(hits, s.toHit(sc, query))
	}

	// Fire-and-forget cache write. An empty result set is a valid,
	// cacheable outcome; a failed search never reaches this point.
	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, query, opts.Type, opts.Limit, hits); err != nil {
			s.logger.Warn("search cache write failed", "error", err)
		}
	}

	return &domain.SearchResponse{Query: query, Count: len(hits), Results: hits}, nil
}

// collectTiered evaluates the three tiers against one source in
// strict precedence order. A row's first matching tier wins its
// inclusion and its score band; later tiers never re-admit it.
func (s *searchService) collectTiered(ctx context.Context, src driven.ContentSource, query string, limit int) ([]scored, error) {
	seen := make(map[string]bool)
	var rows []scored

	admit := func(cands []*domain.Candidate, rankOf func(*domain.Candidate) float64) {
		for _, c := range cands {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			rows = append(rows, scored{cand: c, rank: rankOf(c)})
		}
	}

	fullText, err := src.SearchFullText(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	admit(fullText, func(c *domain.Candidate) float64 { return c.Rank })

	prefix, err := src.SearchPrefix(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	admit(prefix, func(c *domain.Candidate) float64 { return c.Rank * domain.PrefixScoreFactor })

	substring, err := src.SearchSubstring(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	admit(substring, func(c *domain.Candidate) float64 {
		if c.TitleMatched {
			return domain.TitleSubstringScore
		}
		return domain.BodySubstringScore
	})

	return rows, nil
}

// toHit builds the caller-facing row, highlighting matched terms in
// the body. When highlighting cannot match (empty body, substring-only
// rows) the plain truncated snippet stands in.
func (s *searchService) toHit(sc scored, query string) *domain.SearchHit {
	c := sc.cand
	snippet := querytext.Snippet(c.Body)
	highlighted, ok := querytext.Highlight(c.Body, query)
	if !ok {
		highlighted = snippet
	}
	return &domain.SearchHit{
		Type:               c.Type,
		ID:                 c.ID,
		Title:              c.Title,
		URL:                c.URL,
		FilePath:           c.FilePath,
		CreatedAt:          c.CreatedAt,
		Content:            c.Body,
		HighlightedSnippet: highlighted,
		Snippet:            snippet,
		Rank:               sc.rank,
	}
}

// Suggest provides title autocomplete for a partial query. Suggestions
// are advisory UI sugar: every failure path degrades to an empty list.
func (s *searchService) Suggest(ctx context.Context, partial string) (*domain.SuggestResponse, error) {
	partial = strings.TrimSpace(partial)
	if len([]rune(partial)) < domain.MinSuggestionLength {
		return &domain.SuggestResponse{Suggestions: []domain.Suggestion{}}, nil
	}

	if s.cache != nil {
		suggestions, found, err := s.cache.GetSuggestions(ctx, partial)
		if err != nil {
			s.logger.Warn("suggestion cache read failed", "error", err)
		} else if found {
			return &domain.SuggestResponse{Suggestions: suggestions, Cached: true}, nil
		}
	}

	var all []domain.Suggestion
	for _, src := range s.sources {
		suggestions, err := src.SuggestTitles(ctx, partial, SuggestLimit)
		if err != nil {
			s.logger.Warn("suggestion lookup failed", "type", src.Type(), "error", err)
			continue
		}
		all = append(all, suggestions...)
	}

	// Shortest-title-first, deduplicated on (title, type). A title
	// present in several sources keeps one entry per source.
	seen := make(map[domain.Suggestion]bool, len(all))
	deduped := all[:0]
	for _, sg := range all {
		if seen[sg] {
			continue
		}
		seen[sg] = true
		deduped = append(deduped, sg)
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		if len(deduped[i].Title) != len(deduped[j].Title) {
			return len(deduped[i].Title) < len(deduped[j].Title)
		}
		return deduped[i].Title < deduped[j].Title
	})
	if len(deduped) > SuggestLimit {
		deduped = deduped[:SuggestLimit]
	}
	if deduped == nil {
		deduped = []domain.Suggestion{}
	}

	if s.cache != nil {
		if err := s.cache.SetSuggestions(ctx, partial, deduped); err != nil {
			s.logger.Warn("suggestion cache write failed", "error", err)
		}
	}

	return &domain.SuggestResponse{Suggestions: deduped}, nil
}
