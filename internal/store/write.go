package store

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/norm"
)

// Record is one stored query revision.
type Record struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Form   string `json:"form"`
	Text   string `json:"text"`
	Hash   string `json:"hash"`
	Seq    int64  `json:"seq"`
	Source string `json:"source,omitempty"`
}

// Save stores a rendered query as a new revision of name.
// Returns the stored record and whether a new row was inserted.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency: saving an unchanged text
// returns the existing record with inserted=false, even when newer
// revisions of name exist. A new revision gets seq = max(seq)+1 across the
// whole catalog.
func (s *Store) Save(ctx context.Context, name, form, text, source string) (rec Record, inserted bool, err error) {
	if name == "" {
		return Record{}, false, fmt.Errorf("save query: name is required")
	}
	text = norm.NFC.String(text)
	id := QueryID(name, text)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, false, fmt.Errorf("save query: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM queries`).Scan(&seq)
	if err != nil {
		return Record{}, false, fmt.Errorf("save query: next seq: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO queries
		(id, name, form, text, hash, seq, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id,
		name,
		form,
		text,
		TextHash(text),
		seq,
		source,
	)
	if err != nil {
		return Record{}, false, fmt.Errorf("save query: insert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return Record{}, false, fmt.Errorf("save query: rows affected: %w", err)
	}
	inserted = rowsAffected > 0

	rec, err = scanRecord(tx.QueryRowContext(ctx, `
		SELECT id, name, form, text, hash, seq, source
		FROM queries WHERE id = ?
	`, id))
	if err != nil {
		return Record{}, false, fmt.Errorf("save query: select: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Record{}, false, fmt.Errorf("save query: commit: %w", err)
	}

	slog.Debug("query saved",
		"name", name,
		"id", rec.ID,
		"seq", rec.Seq,
		"inserted", inserted,
	)
	return rec, inserted, nil
}
