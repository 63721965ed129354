package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
	"github.com/custodia-labs/helpdesk-search/internal/querytext"
)

// tieredSource implements the three tier queries and the title lookup
// for one content table. The stores embed it so FAQ, web link and PDF
// search stay in lockstep; only the column mapping differs.
//
// Tier precedence is enforced in SQL: the prefix query excludes rows
// the strict full-text form matches, and the substring query excludes
// rows either stricter form matches, so a row surfaces exactly once
// at its best tier.
type tieredSource struct {
	db       *DB
	typ      domain.ContentType
	table    string
	titleCol string
	bodyCol  string
	urlExpr  string // column name or "NULL"
	pathExpr string // column name or "NULL"
	timeCol  string
}

func (s *tieredSource) Type() domain.ContentType { return s.typ }

// selectList is the shared projection for tier queries, minus rank
func (s *tieredSource) selectList() string {
	return fmt.Sprintf("id, %s, %s, %s, %s, %s", s.titleCol, s.bodyCol, s.urlExpr, s.pathExpr, s.timeCol)
}

// SearchFullText evaluates the strict web-search form of the query
func (s *tieredSource) SearchFullText(ctx context.Context, query string, limit int) ([]*domain.Candidate, error) {
	q := fmt.Sprintf(`
		SELECT %s,
		       ts_rank(search_vector, websearch_to_tsquery('english', $1)) AS rank,
		       FALSE AS title_matched
		FROM %s
		WHERE search_vector @@ websearch_to_tsquery('english', $1)
		ORDER BY rank DESC
		LIMIT $2
	`, s.selectList(), s.table)

	rows, err := s.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s full-text search: %w", s.table, err)
	}
	defer rows.Close()

	return s.scanCandidates(rows)
}

// SearchPrefix evaluates the query with its last token widened to a
// prefix wildcard, excluding rows the strict form already matches
func (s *tieredSource) SearchPrefix(ctx context.Context, query string, limit int) ([]*domain.Candidate, error) {
	tsq := querytext.Parse(query).TSQuery(true)
	if tsq == "" {
		return nil, nil
	}

	q := fmt.Sprintf(`
		SELECT %s,
		       ts_rank(search_vector, to_tsquery('english', $2)) AS rank,
		       FALSE AS title_matched
		FROM %s
		WHERE search_vector @@ to_tsquery('english', $2)
		  AND NOT (search_vector @@ websearch_to_tsquery('english', $1))
		ORDER BY rank DESC
		LIMIT $3
	`, s.selectList(), s.table)

	rows, err := s.db.QueryContext(ctx, q, query, tsq, limit)
	if err != nil {
		return nil, fmt.Errorf("%s prefix search: %w", s.table, err)
	}
	defer rows.Close()

	return s.scanCandidates(rows)
}

// SearchSubstring returns rows whose title or body contains the raw
// query case-insensitively, excluding rows the stricter tiers match.
// Title containment takes precedence over body containment for
// scoring, reported through title_matched.
func (s *tieredSource) SearchSubstring(ctx context.Context, query string, limit int) ([]*domain.Candidate, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	prefixExclusion := ""
	args := []any{query, pattern, limit}
	if tsq := querytext.Parse(query).TSQuery(true); tsq != "" {
		prefixExclusion = `AND NOT (search_vector @@ to_tsquery('english', $4))`
		args = append(args, tsq)
	}

	q := fmt.Sprintf(`
		SELECT %s,
		       0::float4 AS rank,
		       (%s ILIKE $2 ESCAPE '\') AS title_matched
		FROM %s
		WHERE (%s ILIKE $2 ESCAPE '\' OR %s ILIKE $2 ESCAPE '\')
		  AND NOT (search_vector @@ websearch_to_tsquery('english', $1))
		  %s
		ORDER BY %s DESC
		LIMIT $3
	`, s.selectList(), s.titleCol, s.table, s.titleCol, s.bodyCol, prefixExclusion, s.timeCol)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s substring search: %w", s.table, err)
	}
	defer rows.Close()

	return s.scanCandidates(rows)
}

// SuggestTitles returns titles containing the partial query, shortest
// first
func (s *tieredSource) SuggestTitles(ctx context.Context, partial string, limit int) ([]domain.Suggestion, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s ILIKE $1 ESCAPE '\'
		ORDER BY length(%s) ASC, %s ASC
		LIMIT $2
	`, s.titleCol, s.table, s.titleCol, s.titleCol, s.titleCol)

	pattern := "%" + escapeLike(partial) + "%"
	rows, err := s.db.QueryContext(ctx, q, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("%s title suggestions: %w", s.table, err)
	}
	defer rows.Close()

	var suggestions []domain.Suggestion
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, domain.Suggestion{Title: title, Type: s.typ})
	}
	return suggestions, rows.Err()
}

func (s *tieredSource) scanCandidates(rows *sql.Rows) ([]*domain.Candidate, error) {
	var candidates []*domain.Candidate
	for rows.Next() {
		var (
			c         domain.Candidate
			url, path sql.NullString
		)
		err := rows.Scan(&c.ID, &c.Title, &c.Body, &url, &path, &c.CreatedAt, &c.Rank, &c.TitleMatched)
		if err != nil {
			return nil, err
		}
		c.Type = s.typ
		if url.Valid {
			c.URL = &url.String
		}
		if path.Valid {
			c.FilePath = &path.String
		}
		candidates = append(candidates, &c)
	}
	return candidates, rows.Err()
}

// escapeLike neutralizes LIKE wildcards in user input
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
