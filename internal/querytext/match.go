package querytext

import (
	"strings"
	"unicode"
)

// token is a word occurrence with its byte span in the original text
type token struct {
	word  string
	start int
	end   int
}

// scan tokenizes text keeping byte offsets for highlighting.
// Offsets index the original text, so lowercasing happens per token;
// strings.ToLower on the whole text could shift byte positions.
func scan(text string) []token {
	var tokens []token

	inWord := false
	start := 0
	for i, r := range text {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r)
		if isWord && !inWord {
			start = i
			inWord = true
		}
		if !isWord && inWord {
			tokens = append(tokens, token{word: strings.ToLower(text[start:i]), start: start, end: i})
			inWord = false
		}
	}
	if inWord {
		tokens = append(tokens, token{word: strings.ToLower(text[start:]), start: start, end: len(text)})
	}
	return tokens
}

// Match reports whether text satisfies the query under full-text
// semantics: every phrase appears contiguously, every bare term is
// present, and no excluded term is present.
func Match(text string, q Query) bool {
	if q.IsEmpty() || text == "" {
		return false
	}
	return matchTokens(scan(text), q, false)
}

// MatchPrefix reports whether text satisfies the prefix-widened form
// of the query: identical to Match except the last bare term only
// needs to prefix a token. This is the fallback evaluated when the
// strict full-text condition fails.
func MatchPrefix(text string, q Query) bool {
	if q.IsEmpty() || text == "" {
		return false
	}
	return matchTokens(scan(text), q, true)
}

func matchTokens(tokens []token, q Query, prefixLast bool) bool {
	present := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		present[t.word] = true
	}

	for _, e := range q.Excluded {
		if present[e] {
			return false
		}
	}

	last := len(q.Terms) - 1
	for i, term := range q.Terms {
		if prefixLast && i == last {
			if !anyHasPrefix(tokens, term) {
				return false
			}
			continue
		}
		if !present[term] {
			return false
		}
	}

	for _, phrase := range q.Phrases {
		if !containsPhrase(tokens, phrase) {
			return false
		}
	}

	return true
}

func anyHasPrefix(tokens []token, prefix string) bool {
	for _, t := range tokens {
		if strings.HasPrefix(t.word, prefix) {
			return true
		}
	}
	return false
}

func containsPhrase(tokens []token, phrase []string) bool {
	if len(phrase) == 0 {
		return true
	}
outer:
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		for j, w := range phrase {
			if tokens[i+j].word != w {
				continue outer
			}
		}
		return true
	}
	return false
}
