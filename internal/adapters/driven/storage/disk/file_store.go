// Package disk stores uploaded files under a local upload directory.
package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.FileStore = (*FileStore)(nil)

// FileStore implements driven.FileStore on the local filesystem.
// Saved paths stay inside the configured directory; a random prefix
// keeps same-named uploads from clobbering each other.
type FileStore struct {
	dir string
}

// New creates a FileStore rooted at dir, creating it if needed
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the file contents and returns its storage path and size
func (s *FileStore) Save(ctx context.Context, fileName string, contents io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	name := uuid.NewString() + "-" + sanitize(fileName)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(f, contents)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return path, size, nil
}

// Open reads a previously saved file
func (s *FileStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filepath.Dir(filepath.Clean(path)) != filepath.Clean(s.dir) {
		return nil, domain.ErrInvalidInput
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Remove deletes a stored file; removing a missing file is not an error
func (s *FileStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filepath.Dir(filepath.Clean(path)) != filepath.Clean(s.dir) {
		return domain.ErrInvalidInput
	}
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// sanitize strips directory components and whitespace from an
// uploaded file name
func sanitize(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return strings.ReplaceAll(name, " ", "_")
}
