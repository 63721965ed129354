package services

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driving"
)

// Ensure pdfService implements PDFService
var _ driving.PDFService = (*pdfService)(nil)

type pdfService struct {
	store     driven.PDFStore
	files     driven.FileStore
	extractor driven.TextExtractor // nil disables extraction
	logger    *slog.Logger
}

// NewPDFService creates a new PDFService. extractor may be nil.
func NewPDFService(store driven.PDFStore, files driven.FileStore, extractor driven.TextExtractor, logger *slog.Logger) driving.PDFService {
	if logger == nil {
		logger = slog.Default()
	}
	return &pdfService{store: store, files: files, extractor: extractor, logger: logger}
}

// Upload stores the file, extracts its text and persists the record.
// Extraction failures are tolerated; the record is still searchable by
// file name through the substring tier.
func (s *pdfService) Upload(ctx context.Context, fileName string, contents io.Reader) (*domain.PDF, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, domain.ErrInvalidInput
	}

	path, size, err := s.files.Save(ctx, fileName, contents)
	if err != nil {
		return nil, err
	}

	var text string
	if s.extractor != nil {
		text, err = s.extractor.ExtractText(ctx, path)
		if err != nil {
			s.logger.Warn("pdf text extraction failed", "file", fileName, "error", err)
			text = ""
		}
	}

	pdf := &domain.PDF{
		ID:          uuid.NewString(),
		FileName:    fileName,
		FilePath:    path,
		ContentText: text,
		FileSize:    size,
	}
	if err := s.store.Create(ctx, pdf); err != nil {
		// Orphaned file cleanup; the record is the source of truth
		if rmErr := s.files.Remove(ctx, path); rmErr != nil {
			s.logger.Warn("orphaned upload cleanup failed", "path", path, "error", rmErr)
		}
		return nil, err
	}
	return pdf, nil
}

func (s *pdfService) Get(ctx context.Context, id string) (*domain.PDF, error) {
	return s.store.Get(ctx, id)
}

// OpenFile streams the stored file for download
func (s *pdfService) OpenFile(ctx context.Context, id string) (io.ReadCloser, *domain.PDF, error) {
	pdf, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.files.Open(ctx, pdf.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return rc, pdf, nil
}

func (s *pdfService) List(ctx context.Context, page, limit int) (*domain.Page[*domain.PDF], error) {
	page, limit = normalizePage(page, limit)
	pdfs, total, err := s.store.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &domain.Page[*domain.PDF]{
		Data:       pdfs,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

// Delete removes the record first, then the stored file. A failed
// file removal leaves an orphan on disk but never resurrects the
// record.
func (s *pdfService) Delete(ctx context.Context, id string) error {
	pdf, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(ctx, pdf.FilePath); err != nil {
		s.logger.Warn("stored file removal failed", "path", pdf.FilePath, "error", err)
	}
	return nil
}
