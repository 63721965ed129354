// Package scraper fetches web pages and recovers the title,
// description and visible text used to index a link.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.PageScraper = (*Scraper)(nil)

const (
	defaultTimeout = 10 * time.Second
	// maxTextRunes bounds how much page text gets indexed
	maxTextRunes = 50000

	userAgent = "helpdesk-search/1.0 (+link indexing)"
)

// Scraper implements driven.PageScraper over plain HTTP
type Scraper struct {
	client *http.Client
}

// New creates a Scraper. client may be nil to use a default with a
// sane timeout.
func New(client *http.Client) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Scraper{client: client}
}

// Scrape fetches the page and extracts title, meta description and
// visible body text
func (s *Scraper) Scrape(ctx context.Context, url string) (*domain.PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	page := &domain.PageContent{}
	var text strings.Builder
	walk(doc, page, &text)
	page.Text = truncateRunes(strings.Join(strings.Fields(text.String()), " "), maxTextRunes)

	return page, nil
}

// walk collects the title, meta description and visible text in one
// pass over the parse tree
func walk(n *html.Node, page *domain.PageContent, text *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		case "title":
			if page.Title == "" && n.FirstChild != nil {
				page.Title = strings.TrimSpace(n.FirstChild.Data)
			}
		case "meta":
			if attr(n, "name") == "description" || attr(n, "property") == "og:description" {
				if page.Description == "" {
					page.Description = strings.TrimSpace(attr(n, "content"))
				}
			}
		}
	case html.TextNode:
		text.WriteString(n.Data)
		text.WriteByte(' ')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, page, text)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
