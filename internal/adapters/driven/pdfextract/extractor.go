// Package pdfextract pulls plain text out of uploaded PDF files so
// they can join the full-text index.
package pdfextract

import (
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor implements driven.TextExtractor for PDF files
type Extractor struct{}

// New creates an Extractor
func New() *Extractor {
	return &Extractor{}
}

// ExtractText reads the plain text of the PDF at path. Malformed
// documents are reported as errors, never as partial garbage; callers
// index the record with empty text instead.
func (e *Extractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	// The pdf library panics on some malformed files; extraction
	// failures must degrade to an empty body, not crash the upload.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	data, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return string(data), nil
}
