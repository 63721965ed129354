package querytext

import (
	"sort"
	"strings"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// SnippetLength is the size of the plain fallback excerpt
const SnippetLength = 200

// Highlight wraps every occurrence of a matched query term in text
// with <mark> markers. The strict full-text form is tried first; when
// the text does not satisfy it, the prefix-widened form is retried.
// ok is false when the text satisfies neither form, or when either
// the text or the query is empty; the caller is expected to fall back
// to a plain snippet.
func Highlight(text, rawQuery string) (highlighted string, ok bool) {
	q := Parse(rawQuery)
	if text == "" || q.IsEmpty() {
		return "", false
	}

	tokens := scan(text)
	prefixLast := false
	if !matchTokens(tokens, q, false) {
		if !matchTokens(tokens, q, true) {
			return "", false
		}
		prefixLast = true
	}

	spans := matchSpans(tokens, q, prefixLast)
	if len(spans) == 0 {
		return text, true
	}

	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(markOpen)+len(markClose)))
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s.start])
		b.WriteString(markOpen)
		b.WriteString(text[s.start:s.end])
		b.WriteString(markClose)
		prev = s.end
	}
	b.WriteString(text[prev:])
	return b.String(), true
}

// Snippet returns the plain truncated excerpt always available as a
// display fallback. Empty text yields an empty snippet.
func Snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= SnippetLength {
		return text
	}
	return string(runes[:SnippetLength])
}

type span struct {
	start int
	end   int
}

// matchSpans collects the byte ranges of every term and phrase
// occurrence, merged so markers never nest or overlap.
func matchSpans(tokens []token, q Query, prefixLast bool) []span {
	var spans []span

	last := len(q.Terms) - 1
	for i, term := range q.Terms {
		for _, t := range tokens {
			if t.word == term || (prefixLast && i == last && strings.HasPrefix(t.word, term)) {
				spans = append(spans, span{start: t.start, end: t.end})
			}
		}
	}

	for _, phrase := range q.Phrases {
		for i := 0; i+len(phrase) <= len(tokens); i++ {
			matched := true
			for j, w := range phrase {
				if tokens[i+j].word != w {
					matched = false
					break
				}
			}
			if matched {
				spans = append(spans, span{start: tokens[i].start, end: tokens[i+len(phrase)-1].end})
			}
		}
	}

	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		top := &merged[len(merged)-1]
		if s.start <= top.end {
			if s.end > top.end {
				top.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
