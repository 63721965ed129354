package postgres

import (
	"context"
	"database/sql"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

// Verify interface compliance
var (
	_ driven.PDFStore      = (*PDFStore)(nil)
	_ driven.ContentSource = (*PDFStore)(nil)
)

// PDFStore implements driven.PDFStore and driven.ContentSource using
// PostgreSQL. The file itself lives in the file store; file_path is
// an opaque reference passed through results unmodified.
type PDFStore struct {
	db *DB
	tieredSource
}

// NewPDFStore creates a new PDFStore
func NewPDFStore(db *DB) *PDFStore {
	return &PDFStore{
		db: db,
		tieredSource: tieredSource{
			db:       db,
			typ:      domain.ContentTypePDF,
			table:    "pdfs",
			titleCol: "file_name",
			bodyCol:  "content_text",
			urlExpr:  "NULL",
			pathExpr: "file_path",
			timeCol:  "uploaded_at",
		},
	}
}

// Create inserts a new PDF record
func (s *PDFStore) Create(ctx context.Context, pdf *domain.PDF) error {
	query := `
		INSERT INTO pdfs (id, file_name, file_path, content_text, file_size)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING uploaded_at
	`
	err := s.db.QueryRowContext(ctx, query,
		pdf.ID, pdf.FileName, pdf.FilePath, pdf.ContentText, pdf.FileSize).
		Scan(&pdf.UploadedAt)
	return err
}

// Get retrieves a PDF record by ID
func (s *PDFStore) Get(ctx context.Context, id string) (*domain.PDF, error) {
	query := `
		SELECT id, file_name, file_path, content_text, file_size, uploaded_at
		FROM pdfs
		WHERE id = $1
	`
	var pdf domain.PDF
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&pdf.ID, &pdf.FileName, &pdf.FilePath, &pdf.ContentText, &pdf.FileSize, &pdf.UploadedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pdf, nil
}

// List retrieves PDF records newest-first with pagination. The
// extracted text is omitted from listings; it can run to megabytes.
func (s *PDFStore) List(ctx context.Context, page, limit int) ([]*domain.PDF, int, error) {
	query := `
		SELECT id, file_name, file_path, file_size, uploaded_at
		FROM pdfs
		ORDER BY uploaded_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var pdfs []*domain.PDF
	for rows.Next() {
		var pdf domain.PDF
		if err := rows.Scan(&pdf.ID, &pdf.FileName, &pdf.FilePath, &pdf.FileSize, &pdf.UploadedAt); err != nil {
			return nil, 0, err
		}
		pdfs = append(pdfs, &pdf)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pdfs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return pdfs, total, nil
}

// Delete deletes a PDF record, returning it so the caller can remove
// the stored file
func (s *PDFStore) Delete(ctx context.Context, id string) (*domain.PDF, error) {
	query := `
		DELETE FROM pdfs
		WHERE id = $1
		RETURNING id, file_name, file_path, file_size, uploaded_at
	`
	var pdf domain.PDF
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&pdf.ID, &pdf.FileName, &pdf.FilePath, &pdf.FileSize, &pdf.UploadedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pdf, nil
}
