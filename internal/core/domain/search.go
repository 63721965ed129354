package domain

import "time"

// MatchTier identifies which matching strategy selected a row.
// Tiers are evaluated strictly in order: full-text first, then prefix,
// then substring. The first tier that matches a row wins.
type MatchTier int

const (
	TierFullText  MatchTier = iota // web-search syntax against the search vector
	TierPrefix                     // last token widened to a prefix wildcard
	TierSubstring                  // case-insensitive containment on title/body
)

// Score blending constants for the non-full-text tiers. Full-text rows
// keep their native relevance score; lower tiers are discounted so a
// row never outranks its own stricter match. Cross-row comparison is
// still raw numeric, so a strong prefix row from one source may
// outrank a weak full-text row from another. That is accepted
// behaviour, not a bug.
const (
	PrefixScoreFactor   = 0.8
	TitleSubstringScore = 0.6
	BodySubstringScore  = 0.4
)

// SearchOptions configures a search request
type SearchOptions struct {
	// Type restricts the search to one content type; empty means all
	Type ContentType `json:"type,omitempty"`
	// Limit caps the merged result set, applied after the cross-type merge
	Limit int `json:"limit"`
}

// DefaultSearchLimit is applied when the caller sends no usable limit
const DefaultSearchLimit = 20

// MaxSearchLimit caps how many merged rows a single request may ask for
const MaxSearchLimit = 100

// Normalize applies limit defaults and caps
func (o SearchOptions) Normalize() SearchOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultSearchLimit
	}
	if o.Limit > MaxSearchLimit {
		o.Limit = MaxSearchLimit
	}
	return o
}

// SearchHit is one ranked row of a search response. Exactly one of
// URL/FilePath is set for links and PDFs; both are nil for FAQs.
type SearchHit struct {
	Type               ContentType `json:"type"`
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	URL                *string     `json:"url"`
	FilePath           *string     `json:"file_path"`
	CreatedAt          time.Time   `json:"created_at"`
	Content            string      `json:"content,omitempty"`
	HighlightedSnippet string      `json:"highlighted_snippet"`
	Snippet            string      `json:"snippet"`
	Rank               float64     `json:"rank"`
}

// SearchResponse is the caller-facing result of a search
type SearchResponse struct {
	Query   string       `json:"query"`
	Count   int          `json:"count"`
	Results []*SearchHit `json:"results"`
	Cached  bool         `json:"cached"`
}

// Suggestion is one autocomplete candidate
type Suggestion struct {
	Title string      `json:"title"`
	Type  ContentType `json:"type"`
}

// SuggestResponse is the caller-facing result of a suggestion lookup
type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	Cached      bool         `json:"cached"`
}

// MinSuggestionLength is the shortest partial query that touches the
// store; anything shorter yields an empty list without a lookup.
const MinSuggestionLength = 2
