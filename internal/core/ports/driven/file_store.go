package driven

import (
	"context"
	"io"
)

// FileStore stores uploaded PDF files. Paths returned by Save are
// opaque references passed through search results unmodified.
type FileStore interface {
	// Save writes the file contents and returns its storage path and size
	Save(ctx context.Context, fileName string, contents io.Reader) (path string, size int64, err error)

	// Open reads a previously saved file
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes a stored file; removing a missing file is not an error
	Remove(ctx context.Context, path string) error
}
