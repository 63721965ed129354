package domain

// PageContent is what the scraper recovers from a web page
type PageContent struct {
	Title       string
	Description string
	Text        string
}
