// Package db stores recipe snapshots in a SQLite database file.
package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver with database/sql

	"github.com/go-ports/cookbook/internal/models"
)

// ErrCorruptRow is returned when a stored row cannot be decoded into a recipe.
var ErrCorruptRow = errors.New("corrupt recipe row")

// DB wraps a *sql.DB with the path it was opened from.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the SQLite database at path and initialises the schema.
func Open(path string) (*DB, error) {
	sqldb, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("db.Open: %w", err)
	}
	d := &DB{db: sqldb, path: path}
	if err := d.createSchema(); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("db.Open createSchema: %w", err)
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the file the database was opened from.
func (d *DB) Path() string { return d.path }

// ---------------------------------------------------------------------------
// Schema
// ---------------------------------------------------------------------------

func (d *DB) createSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			position    INTEGER PRIMARY KEY,
			name        TEXT NOT NULL,
			ingredients TEXT NOT NULL,
			steps       TEXT NOT NULL,
			category    TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, s := range stmts {
		if _, err := d.db.Exec(s); err != nil {
			return fmt.Errorf("createSchema exec: %w\nSQL: %s", err, s)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Snapshot
// ---------------------------------------------------------------------------

// WriteAll replaces every stored recipe with recipes, preserving their order.
// The replacement happens in one transaction: readers see either the old
// snapshot or the new one.
func (d *DB) WriteAll(recipes []*models.Recipe) (err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("WriteAll: begin: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Debug("WriteAll: rollback", "err", rbErr)
			}
		}
	}()

	if _, err = tx.Exec(`DELETE FROM recipes`); err != nil {
		return fmt.Errorf("WriteAll: clear: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO recipes (position, name, ingredients, steps, category)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("WriteAll: prepare: %w", err)
	}
	defer stmt.Close()

	for i, r := range recipes {
		ingJSON, mErr := json.Marshal(r.Ingredients)
		if mErr != nil {
			return fmt.Errorf("WriteAll: marshal ingredients: %w", mErr)
		}
		stepsJSON, mErr := json.Marshal(r.Steps)
		if mErr != nil {
			return fmt.Errorf("WriteAll: marshal steps: %w", mErr)
		}
		if _, err = stmt.Exec(i, r.Name, string(ingJSON), string(stepsJSON), r.Category); err != nil {
			return fmt.Errorf("WriteAll: insert %q: %w", r.Name, err)
		}
	}

	if _, err = tx.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`,
		"saved_at", time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("WriteAll: meta: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("WriteAll: commit: %w", err)
	}
	return nil
}

// ReadAll returns every stored recipe in saved order.
func (d *DB) ReadAll() ([]*models.Recipe, error) {
	rows, err := d.db.Query(
		`SELECT name, ingredients, steps, category FROM recipes ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("ReadAll: %w", err)
	}
	defer rows.Close()

	recipes := make([]*models.Recipe, 0)
	for rows.Next() {
		var name, ingJSON, stepsJSON, category string
		if err := rows.Scan(&name, &ingJSON, &stepsJSON, &category); err != nil {
			return nil, fmt.Errorf("ReadAll: scan: %w", err)
		}
		var ingredients, steps []string
		if err := json.Unmarshal([]byte(ingJSON), &ingredients); err != nil {
			return nil, fmt.Errorf("%w: %q ingredients: %v", ErrCorruptRow, name, err)
		}
		if err := json.Unmarshal([]byte(stepsJSON), &steps); err != nil {
			return nil, fmt.Errorf("%w: %q steps: %v", ErrCorruptRow, name, err)
		}
		recipes = append(recipes, models.New(name, ingredients, steps, category))
	}
	return recipes, rows.Err()
}

// Count returns the number of stored recipes.
func (d *DB) Count() (int, error) {
	var n int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM recipes`).Scan(&n)
	return n, err
}

// ---------------------------------------------------------------------------
// Meta
// ---------------------------------------------------------------------------

// GetMeta returns the value for key, or ("", false, nil) if not set.
func (d *DB) GetMeta(key string) (string, bool, error) {
	var val string
	err := d.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// SetMeta upserts a key-value pair in the meta table.
func (d *DB) SetMeta(key, value string) error {
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value,
	)
	return err
}
