package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS history (
	position INTEGER PRIMARY KEY,
	line     TEXT NOT NULL
);
`

// SQLitePersister keeps entries as rows of a SQLite database, one row per
// entry ordered by position. The database file is created on first save.
type SQLitePersister struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// NewSQLitePersister returns a persister for the database at path.
func NewSQLitePersister(path string) *SQLitePersister {
	return &SQLitePersister{path: path}
}

func (p *SQLitePersister) Location() string {
	return p.path
}

func (p *SQLitePersister) open(ctx context.Context) (*sql.DB, error) {
	if p.db != nil {
		return p.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", p.path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	p.db = db
	return db, nil
}

// Save replaces every stored row in a single transaction.
func (p *SQLitePersister) Save(ctx context.Context, lines []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	db, err := p.open(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO history (position, line) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, line := range lines {
		if _, err := stmt.ExecContext(ctx, i, line); err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Load returns all rows in order, or ErrNotFound when the database file
// does not exist yet.
func (p *SQLitePersister) Load(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		if _, err := os.Stat(p.path); errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
	}

	db, err := p.open(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT line FROM history ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	lines := []string{}
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Close releases the database handle.
func (p *SQLitePersister) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
