package driven

import "context"

// TextExtractor pulls searchable plain text out of an uploaded file.
// Extraction failures are tolerated: a record with empty text is
// valid and simply yields no full-text matches.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}
