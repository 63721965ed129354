package domain

import "time"

// Candidate is one row produced by a single tier query against a
// content source, before cross-source merging. Rank carries the
// source's native relevance score for the full-text and prefix tiers
// and is zero for the substring tier, where the planner assigns the
// fixed containment scores.
type Candidate struct {
	Type         ContentType
	ID           string
	Title        string
	Body         string
	URL          *string
	FilePath     *string
	CreatedAt    time.Time
	Rank         float64
	TitleMatched bool
}
