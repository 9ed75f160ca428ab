// Package service implements the cookbook orchestrator that wires together
// configuration, the recipe store, and its data file.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-ports/cookbook/internal/config"
	"github.com/go-ports/cookbook/internal/models"
	"github.com/go-ports/cookbook/internal/render"
	"github.com/go-ports/cookbook/internal/store"
)

// Service owns one recipe store and the data file it persists to.
// Every method is safe for concurrent use.
type Service struct {
	Home     string
	DataPath string
	Config   *config.CookbookConfig

	store *store.Store
	mu    sync.Mutex
}

// New initialises a Service rooted at home.
// If home is empty it is resolved via config.GetHome.
//
// The configured data file is loaded straight away. A missing file is not an
// error: the store starts empty, or holds the sample recipes when
// seed_samples is on. A malformed file is returned as an error so that a
// later save cannot overwrite it.
func New(home string, opts ...store.Option) (*Service, error) {
	if home == "" {
		home = config.GetHome()
	}

	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, fmt.Errorf("service.New: create home dir: %w", err)
	}

	cfg, err := config.Load(filepath.Join(home, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("service.New: load config: %w", err)
	}

	s := &Service{
		Home:     home,
		DataPath: cfg.DataPath(home),
		Config:   cfg,
		store:    store.New(opts...),
	}

	err = s.store.Load(s.DataPath)
	switch {
	case err == nil:
		slog.Debug("service.New: loaded recipes", "path", s.DataPath, "count", s.store.Len())
	case errors.Is(err, store.ErrNoSavedData):
		slog.Debug("service.New: no saved data", "path", s.DataPath)
		if cfg.SeedSamples {
			for _, r := range models.SampleRecipes() {
				s.store.Add(r)
			}
		}
	default:
		return nil, fmt.Errorf("service.New: load recipes: %w", err)
	}

	return s, nil
}

// Store exposes the underlying store to single-threaded callers such as the
// interactive menu. Callers must not use it concurrently with Service methods.
func (s *Service) Store() *store.Store { return s.store }

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// List returns copies of the recipes in insertion order, optionally filtered
// by category (case-insensitive).
func (s *Service) List(category string) []*models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.store.ListRecipes(category))
}

// Categories returns the distinct categories in unspecified order.
func (s *Service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ListCategories()
}

// View returns a copy of the first recipe matching name.
func (s *Service) View(name string) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.store.Find(name)
	if err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// Suggest returns a copy of a randomly chosen recipe.
func (s *Service) Suggest() (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.store.SuggestRandom()
	if err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// Count returns the number of recipes.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// Export renders every recipe as a Markdown cookbook.
func (s *Service) Export(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return render.Markdown(title, s.store.ListRecipes(""))
}

// ---------------------------------------------------------------------------
// Mutations (persisted)
// ---------------------------------------------------------------------------

// Add appends r and persists the store.
func (s *Service) Add(r *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Add(r)
	if err := s.persistLocked(); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	return nil
}

// Edit applies u to the first recipe matching name and persists the store.
// An empty update is a no-op that skips the write.
func (s *Service) Edit(name string, u store.Update) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.store.Edit(name, u)
	if err != nil {
		return nil, err
	}
	if !u.IsEmpty() {
		if err := s.persistLocked(); err != nil {
			return nil, fmt.Errorf("Edit: %w", err)
		}
	}
	return r.Clone(), nil
}

// Delete removes the first recipe matching name and persists the store.
func (s *Service) Delete(name string) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.store.Delete(name)
	if err != nil {
		return nil, err
	}
	if err := s.persistLocked(); err != nil {
		return nil, fmt.Errorf("Delete: %w", err)
	}
	return r, nil
}

// Persist writes the store to the configured data file.
func (s *Service) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *Service) persistLocked() error {
	if err := s.store.Save(s.DataPath); err != nil {
		return err
	}
	slog.Debug("persisted recipes", "path", s.DataPath, "count", s.store.Len())
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func cloneAll(recipes []*models.Recipe) []*models.Recipe {
	out := make([]*models.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}
