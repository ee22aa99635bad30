package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no revision exists for a query name.
var ErrNotFound = errors.New("query not found")

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.Name, &rec.Form, &rec.Text, &rec.Hash, &rec.Seq, &rec.Source)
	return rec, err
}

// Latest returns the newest revision of name.
// Returns ErrNotFound (wrapped) if the name was never saved.
func (s *Store) Latest(ctx context.Context, name string) (Record, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx, `
		SELECT id, name, form, text, hash, seq, source
		FROM queries
		WHERE name = ?
		ORDER BY seq DESC, id COLLATE BINARY DESC
		LIMIT 1
	`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("latest %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("latest %q: %w", name, err)
	}
	return rec, nil
}

// History returns every revision of name, oldest first.
// Results are ordered deterministically: ORDER BY seq ASC, id COLLATE BINARY ASC.
//
// Returns an empty slice (not nil) if no revisions exist.
func (s *Store) History(ctx context.Context, name string) ([]Record, error) {
	return s.readRecords(ctx, "history", `
		SELECT id, name, form, text, hash, seq, source
		FROM queries
		WHERE name = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, name)
}

// List returns the newest revision of every stored query, ordered by the
// seq of that revision.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	return s.readRecords(ctx, "list", `
		SELECT q.id, q.name, q.form, q.text, q.hash, q.seq, q.source
		FROM queries q
		WHERE q.seq = (SELECT MAX(seq) FROM queries WHERE name = q.name)
		ORDER BY q.seq ASC, q.id COLLATE BINARY ASC
	`)
}

// ByHash returns every revision whose text hashes to hash, across names.
func (s *Store) ByHash(ctx context.Context, hash string) ([]Record, error) {
	return s.readRecords(ctx, "by hash", `
		SELECT id, name, form, text, hash, seq, source
		FROM queries
		WHERE hash = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, hash)
}

func (s *Store) readRecords(ctx context.Context, op, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate: %w", op, err)
	}
	return records, nil
}
