// Package bookmarks persists the favorite station identifiers on disk.
package bookmarks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed list of favorite station ids or slugs.
type Store struct {
	db *sql.DB
}

// Bookmark is one stored favorite.
type Bookmark struct {
	ID         int64
	Identifier string
	CreatedAt  time.Time
}

// NewStore opens (or creates) the bookmark database at dbPath.
// Use ":memory:" for a throwaway store.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps an in-memory database alive and consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS bookmarks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			identifier TEXT NOT NULL UNIQUE,
			created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
		);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Add appends identifier to the end of the list. It reports false when the
// identifier was already stored, in which case its position is unchanged.
func (s *Store) Add(ctx context.Context, identifier string) (bool, error) {
	if identifier == "" {
		return false, fmt.Errorf("empty identifier")
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO bookmarks (identifier, created_at) VALUES (?, ?)`,
		identifier, time.Now().Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// Remove deletes identifier. It reports false when nothing was stored under it.
func (s *Store) Remove(ctx context.Context, identifier string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE identifier = ?`, identifier)
	if err != nil {
		return false, fmt.Errorf("failed to delete bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// List returns every bookmark in insertion order.
func (s *Store) List(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, identifier, created_at
		FROM bookmarks
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var b Bookmark
		var createdUnix int64

		if err := rows.Scan(&b.ID, &b.Identifier, &createdUnix); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}

		b.CreatedAt = time.Unix(createdUnix, 0)
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmarks: %w", err)
	}

	return bookmarks, nil
}

// Identifiers returns the stored identifiers in insertion order, ready to
// hand to the directory client as favorites.
func (s *Store) Identifiers(ctx context.Context) ([]string, error) {
	bookmarks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		ids[i] = b.Identifier
	}
	return ids, nil
}

// Count returns the number of stored bookmarks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookmarks").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return count, nil
}
