// Package journal records applied renames in a SQLite database so they can
// be listed and undone after the fact.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one applied rename.
type Entry struct {
	ID        int64
	Dir       string
	OldName   string
	NewName   string
	AppliedAt time.Time
}

// Journal is a handle to the rename history database.
type Journal struct {
	db *sql.DB
}

const timeLayout = "2006-01-02 15:04:05"

// Open opens (creating if necessary) the journal database at path and
// ensures the schema exists.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	schema := `CREATE TABLE IF NOT EXISTS renames (
		id INTEGER PRIMARY KEY,
		dir TEXT NOT NULL,
		old_name TEXT NOT NULL,
		new_name TEXT NOT NULL,
		applied_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error { return j.db.Close() }

// Record appends one applied rename.
func (j *Journal) Record(dir, oldName, newName string) error {
	_, err := j.db.Exec(
		`INSERT INTO renames (dir, old_name, new_name, applied_at) VALUES (?, ?, ?, ?)`,
		dir, oldName, newName, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record rename: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, dir, old_name, new_name, applied_at FROM renames ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &e.Dir, &e.OldName, &e.NewName, &at); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		e.AppliedAt, _ = time.Parse(timeLayout, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Undo reverses up to n of the most recent renames, newest first, calling
// apply(dir, from, to) for each. Entries whose reversal succeeds are removed
// from the journal; the first failure stops the walk so history and disk
// never disagree. Returns the number of entries undone.
func (j *Journal) Undo(n int, apply func(dir, from, to string) error) (int, error) {
	entries, err := j.Recent(n)
	if err != nil {
		return 0, err
	}

	undone := 0
	for _, e := range entries {
		if err := apply(e.Dir, e.NewName, e.OldName); err != nil {
			return undone, fmt.Errorf("undo %s -> %s: %w", e.NewName, e.OldName, err)
		}
		if _, err := j.db.Exec(`DELETE FROM renames WHERE id = ?`, e.ID); err != nil {
			return undone, fmt.Errorf("prune journal entry %d: %w", e.ID, err)
		}
		undone++
	}
	return undone, nil
}
