// Package querytext implements the web-style search query syntax used
// across the search tiers: quoted phrases, implicit AND between bare
// terms, and "-" exclusion. It provides the pure-computation side of
// matching and highlighting; persistent stores evaluate the same
// syntax natively (websearch_to_tsquery in PostgreSQL).
package querytext

import (
	"strings"
	"unicode"
)

// Query is a parsed search query
type Query struct {
	// Phrases are quoted sequences that must appear contiguously
	Phrases [][]string
	// Terms are bare words, all of which must be present
	Terms []string
	// Excluded words must not be present
	Excluded []string
}

// IsEmpty reports whether the query has no positive condition
func (q Query) IsEmpty() bool {
	return len(q.Phrases) == 0 && len(q.Terms) == 0
}

// LastTerm returns the final positive bare term, the one widened to a
// prefix wildcard in the prefix tier. Empty when the query has no bare
// terms.
func (q Query) LastTerm() string {
	if len(q.Terms) == 0 {
		return ""
	}
	return q.Terms[len(q.Terms)-1]
}

// Parse splits a raw query into phrases, terms and exclusions.
// Tokens are lowercased; punctuation separates words the same way
// Tokenize does, so "don't" becomes the tokens "don" and "t".
func Parse(raw string) Query {
	var q Query

	rest := raw
	for {
		start := strings.IndexByte(rest, '"')
		if start < 0 {
			break
		}
		end := strings.IndexByte(rest[start+1:], '"')
		if end < 0 {
			// Unbalanced quote: treat the remainder as bare terms
			rest = rest[:start] + " " + rest[start+1:]
			break
		}
		phrase := Tokenize(rest[start+1 : start+1+end])
		if len(phrase) > 0 {
			q.Phrases = append(q.Phrases, phrase)
		}
		rest = rest[:start] + " " + rest[start+1+end+1:]
	}

	for _, field := range strings.Fields(rest) {
		excluded := strings.HasPrefix(field, "-")
		words := Tokenize(field)
		for _, w := range words {
			if excluded {
				q.Excluded = append(q.Excluded, w)
			} else {
				q.Terms = append(q.Terms, w)
			}
		}
	}

	return q
}

// Tokenize lowercases s and splits it into word tokens on any
// non-letter, non-digit rune.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TSQuery renders the parsed query in to_tsquery syntax with the last
// bare term widened to a prefix match ("refund pol" -> "refund &
// pol:*"). Used by SQL-backed sources for the prefix tier.
func (q Query) TSQuery(prefixLast bool) string {
	var parts []string
	for _, p := range q.Phrases {
		parts = append(parts, strings.Join(p, " <-> "))
	}
	for i, t := range q.Terms {
		if prefixLast && i == len(q.Terms)-1 {
			parts = append(parts, t+":*")
		} else {
			parts = append(parts, t)
		}
	}
	for _, e := range q.Excluded {
		parts = append(parts, "!"+e)
	}
	return strings.Join(parts, " & ")
}
