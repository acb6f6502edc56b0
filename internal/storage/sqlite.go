package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
    id TEXT PRIMARY KEY,
    mode INTEGER NOT NULL,
    game_type TEXT NOT NULL CHECK (game_type IN ('SOLO', 'DUEL')),
    player_name TEXT NOT NULL,
    result TEXT NOT NULL CHECK (result IN ('WIN', 'LOSS')),
    avg REAL NOT NULL,
    darts INTEGER NOT NULL,
    checkout_pct REAL NOT NULL DEFAULT 0,
    highest_checkout INTEGER NOT NULL DEFAULT 0,
    scores_60plus INTEGER NOT NULL DEFAULT 0,
    scores_100plus INTEGER NOT NULL DEFAULT 0,
    scores_140plus INTEGER NOT NULL DEFAULT 0,
    scores_180s INTEGER NOT NULL DEFAULT 0,
    match_details TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at);
`

// SQLiteStore is the primary match-history store.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the match database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open match database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveMatches inserts a batch of records in one transaction. Records whose ID
// already exists are skipped, so replaying a queued batch cannot double-insert.
func (s *SQLiteStore) SaveMatches(ctx context.Context, records []MatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO matches (
			id, mode, game_type, player_name, result, avg, darts,
			checkout_pct, highest_checkout,
			scores_60plus, scores_100plus, scores_140plus, scores_180s,
			match_details, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		details, err := json.Marshal(r.Turns)
		if err != nil {
			return fmt.Errorf("failed to encode turn details: %w", err)
		}
		_, err = stmt.ExecContext(ctx,
			r.ID, r.Mode, r.GameType, r.PlayerName, r.Result, r.Average, r.Darts,
			r.CheckoutPct, r.HighestCheckout,
			r.Scores60, r.Scores100, r.Scores140, r.Scores180,
			string(details), r.CreatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to insert match %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// ListMatches returns all stored records, oldest first.
func (s *SQLiteStore) ListMatches(ctx context.Context) ([]MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, mode, game_type, player_name, result, avg, darts,
		       checkout_pct, highest_checkout,
		       scores_60plus, scores_100plus, scores_140plus, scores_180s,
		       match_details, created_at
		FROM matches ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var details, createdAt string
		err := rows.Scan(&r.ID, &r.Mode, &r.GameType, &r.PlayerName, &r.Result,
			&r.Average, &r.Darts, &r.CheckoutPct, &r.HighestCheckout,
			&r.Scores60, &r.Scores100, &r.Scores140, &r.Scores180,
			&details, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		if err := json.Unmarshal([]byte(details), &r.Turns); err != nil {
			return nil, fmt.Errorf("failed to decode turn details for %s: %w", r.ID, err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteMatch removes one record by ID.
func (s *SQLiteStore) DeleteMatch(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	return nil
}

// DeleteMatches removes a set of records by ID.
func (s *SQLiteStore) DeleteMatches(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM matches WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	return nil
}

// ClearAll wipes the match history.
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM matches`)
	if err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	return nil
}
