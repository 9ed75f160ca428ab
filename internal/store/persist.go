package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ports/cookbook/internal/db"
	"github.com/go-ports/cookbook/internal/models"
)

// DefaultFile is the data file name used when the caller gives no path.
const DefaultFile = "recipes.json"

// IsSQLitePath reports whether path names a SQLite snapshot rather than a
// JSON file. The decision is made on the extension alone.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

// Save writes every recipe to path, fully overwriting whatever was there.
// JSON destinations receive one array of serialized recipes, written to a
// temporary file in the same directory and renamed into place.
func (s *Store) Save(path string) error {
	if IsSQLitePath(path) {
		return s.saveSQLite(path)
	}
	return s.saveJSON(path)
}

func (s *Store) saveJSON(path string) error {
	records := make([]map[string]any, len(s.recipes))
	for i, r := range s.recipes {
		records[i] = r.ToMap()
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("Save: marshal: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("Save: create dir: %w", err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("Save: create temp file: %w", err)
	}
	tempPath := f.Name()

	// Ensure cleanup on failure.
	defer func() {
		if f != nil {
			_ = f.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("Save: write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("Save: sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Save: close temp file: %w", err)
	}
	f = nil // Prevent defer cleanup

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("Save: rename: %w", err)
	}
	// nolint:gosec // G302: the recipe file is meant to be readable by other tools
	if err := os.Chmod(path, 0o644); err != nil {
		slog.Debug("Save: chmod", "path", path, "err", err)
	}
	return nil
}

func (s *Store) saveSQLite(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("Save: create dir: %w", err)
	}
	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer database.Close()

	if err := database.WriteAll(s.recipes); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

// Load replaces every in-memory recipe with the contents of path.
//
// A missing path yields ErrNoSavedData and leaves the store as it was. A path
// that exists but does not hold a JSON array of complete recipes yields
// ErrMalformedData, again leaving the store as it was: records are decoded in
// full before the swap, so there is never a partial load.
func (s *Store) Load(path string) error {
	var (
		recipes []*models.Recipe
		err     error
	)
	if IsSQLitePath(path) {
		recipes, err = loadSQLite(path)
	} else {
		recipes, err = loadJSON(path)
	}
	if err != nil {
		return err
	}
	s.replace(recipes)
	return nil
}

func loadJSON(path string) ([]*models.Recipe, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoSavedData, path)
	}
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("Load: read: %w", err)
	}
	return DecodeJSON(data)
}

// DecodeJSON parses a persisted JSON array into recipes. Every failure is
// reported as ErrMalformedData wrapping the cause.
func DecodeJSON(data []byte) ([]*models.Recipe, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of recipes", ErrMalformedData)
	}

	recipes := make([]*models.Recipe, 0, len(raw))
	for i, m := range raw {
		r, err := models.FromMap(m)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedData, i, err)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func loadSQLite(path string) ([]*models.Recipe, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoSavedData, path)
	} else if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	defer database.Close()

	recipes, err := database.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	return recipes, nil
}
