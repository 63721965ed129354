package domain

import (
	"strings"
	"time"
)

// ContentType identifies which store a searchable record lives in
type ContentType string

const (
	ContentTypeFAQ  ContentType = "faq"
	ContentTypeLink ContentType = "link"
	ContentTypePDF  ContentType = "pdf"
)

// AllContentTypes lists every searchable content type in merge order
func AllContentTypes() []ContentType {
	return []ContentType{ContentTypeFAQ, ContentTypeLink, ContentTypePDF}
}

// ParseContentType validates a type filter string.
// An empty string is valid and means "all types".
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case "", ContentTypeFAQ, ContentTypeLink, ContentTypePDF:
		return ContentType(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// FAQ is a question/answer entry maintained by admins
type FAQ struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks required fields before persisting
func (f *FAQ) Validate() error {
	if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Content) == "" {
		return ErrInvalidInput
	}
	return nil
}

// WebLink is an indexed external page.
// ContentText holds scraped page text; it may be empty when scraping
// failed, which is valid and simply yields no full-text matches.
type WebLink struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ContentText string    `json:"content_text,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks required fields before persisting
func (l *WebLink) Validate() error {
	if strings.TrimSpace(l.URL) == "" {
		return ErrInvalidInput
	}
	return nil
}

// PDF is an uploaded document. ContentText holds extracted text and
// may be empty when extraction failed.
type PDF struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	ContentText string    `json:"content_text,omitempty"`
	FileSize    int64     `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Validate checks required fields before persisting
func (p *PDF) Validate() error {
	if strings.TrimSpace(p.FileName) == "" || strings.TrimSpace(p.FilePath) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Page wraps a paginated listing
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the window a listing covers
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes the page descriptor for a listing
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
