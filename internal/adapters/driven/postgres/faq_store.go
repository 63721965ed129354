package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

// Verify interface compliance
var (
	_ driven.FAQStore      = (*FAQStore)(nil)
	_ driven.ContentSource = (*FAQStore)(nil)
)

// FAQStore implements driven.FAQStore and driven.ContentSource using
// PostgreSQL. The search_vector column is maintained by a trigger, so
// writes here can never leave it stale.
type FAQStore struct {
	db *DB
	tieredSource
}

// NewFAQStore creates a new FAQStore
func NewFAQStore(db *DB) *FAQStore {
	return &FAQStore{
		db: db,
		tieredSource: tieredSource{
			db:       db,
			typ:      domain.ContentTypeFAQ,
			table:    "faqs",
			titleCol: "title",
			bodyCol:  "content",
			urlExpr:  "NULL",
			pathExpr: "NULL",
			timeCol:  "created_at",
		},
	}
}

// Create inserts a new FAQ, filling in store-assigned timestamps
func (s *FAQStore) Create(ctx context.Context, faq *domain.FAQ) error {
	query := `
		INSERT INTO faqs (id, title, content, tags)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, faq.ID, faq.Title, faq.Content, pq.Array(faq.Tags)).
		Scan(&faq.CreatedAt, &faq.UpdatedAt)
	return err
}

// Get retrieves a FAQ by ID
func (s *FAQStore) Get(ctx context.Context, id string) (*domain.FAQ, error) {
	query := `
		SELECT id, title, content, tags, created_at, updated_at
		FROM faqs
		WHERE id = $1
	`
	return scanFAQRow(s.db.QueryRowContext(ctx, query, id))
}

// List retrieves FAQs newest-first with pagination
func (s *FAQStore) List(ctx context.Context, page, limit int) ([]*domain.FAQ, int, error) {
	query := `
		SELECT id, title, content, tags, created_at, updated_at
		FROM faqs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var faqs []*domain.FAQ
	for rows.Next() {
		var faq domain.FAQ
		if err := rows.Scan(&faq.ID, &faq.Title, &faq.Content, pq.Array(&faq.Tags), &faq.CreatedAt, &faq.UpdatedAt); err != nil {
			return nil, 0, err
		}
		faqs = append(faqs, &faq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return faqs, total, nil
}

// Update rewrites an existing FAQ; the trigger refreshes the vector
func (s *FAQStore) Update(ctx context.Context, faq *domain.FAQ) error {
	query := `
		UPDATE faqs
		SET title = $2, content = $3, tags = $4
		WHERE id = $1
		RETURNING updated_at
	`
	err := s.db.QueryRowContext(ctx, query, faq.ID, faq.Title, faq.Content, pq.Array(faq.Tags)).
		Scan(&faq.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	return err
}

// Delete deletes a FAQ
func (s *FAQStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanFAQRow(row *sql.Row) (*domain.FAQ, error) {
	var faq domain.FAQ
	err := row.Scan(&faq.ID, &faq.Title, &faq.Content, pq.Array(&faq.Tags), &faq.CreatedAt, &faq.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &faq, nil
}
