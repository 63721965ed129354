package postgres

import (
	"context"
	"database/sql"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driven"
)

// Verify interface compliance
var (
	_ driven.WebLinkStore  = (*WebLinkStore)(nil)
	_ driven.ContentSource = (*WebLinkStore)(nil)
)

// WebLinkStore implements driven.WebLinkStore and driven.ContentSource
// using PostgreSQL. The search vector covers title, description and
// scraped page text; the searchable body surfaced in results is the
// description.
type WebLinkStore struct {
	db *DB
	tieredSource
}

// NewWebLinkStore creates a new WebLinkStore
func NewWebLinkStore(db *DB) *WebLinkStore {
	return &WebLinkStore{
		db: db,
		tieredSource: tieredSource{
			db:       db,
			typ:      domain.ContentTypeLink,
			table:    "web_links",
			titleCol: "title",
			bodyCol:  "description",
			urlExpr:  "url",
			pathExpr: "NULL",
			timeCol:  "created_at",
		},
	}
}

// Create inserts a new web link
func (s *WebLinkStore) Create(ctx context.Context, link *domain.WebLink) error {
	query := `
		INSERT INTO web_links (id, url, title, description, content_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query,
		link.ID, link.URL, link.Title, link.Description, link.ContentText).
		Scan(&link.CreatedAt, &link.UpdatedAt)
	return err
}

// Get retrieves a web link by ID
func (s *WebLinkStore) Get(ctx context.Context, id string) (*domain.WebLink, error) {
	query := `
		SELECT id, url, title, description, content_text, created_at, updated_at
		FROM web_links
		WHERE id = $1
	`
	var link domain.WebLink
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&link.ID, &link.URL, &link.Title, &link.Description, &link.ContentText,
		&link.CreatedAt, &link.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// List retrieves web links newest-first with pagination
func (s *WebLinkStore) List(ctx context.Context, page, limit int) ([]*domain.WebLink, int, error) {
	query := `
		SELECT id, url, title, description, content_text, created_at, updated_at
		FROM web_links
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var links []*domain.WebLink
	for rows.Next() {
		var link domain.WebLink
		err := rows.Scan(&link.ID, &link.URL, &link.Title, &link.Description,
			&link.ContentText, &link.CreatedAt, &link.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		links = append(links, &link)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM web_links`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return links, total, nil
}

// Update rewrites an existing web link
func (s *WebLinkStore) Update(ctx context.Context, link *domain.WebLink) error {
	query := `
		UPDATE web_links
		SET url = $2, title = $3, description = $4, content_text = $5
		WHERE id = $1
		RETURNING updated_at
	`
	err := s.db.QueryRowContext(ctx, query,
		link.ID, link.URL, link.Title, link.Description, link.ContentText).
		Scan(&link.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	return err
}

// Delete deletes a web link
func (s *WebLinkStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM web_links WHERE id = $1`, id)
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
