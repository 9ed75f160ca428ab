// Package store holds the ordered in-memory recipe collection together with
// its lookup, mutation, and persistence operations.
//
// Recipe names are informal keys: duplicates are allowed, and every lookup by
// name resolves to the first case-insensitive match in insertion order.
// A Store is not safe for concurrent use; callers that share one serialize
// access themselves.
package store

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/go-ports/cookbook/internal/models"
)

var (
	// ErrNotFound is returned when no recipe matches the requested name.
	ErrNotFound = errors.New("recipe not found")
	// ErrEmpty is returned by SuggestRandom when the store holds no recipes.
	ErrEmpty = errors.New("no recipes available")
	// ErrNoSavedData is returned by Load when the source does not exist.
	// It is benign: the in-memory recipes are left untouched.
	ErrNoSavedData = errors.New("no saved data")
	// ErrMalformedData is returned by Load when the source exists but cannot
	// be turned into recipes. The in-memory recipes are left untouched.
	ErrMalformedData = errors.New("malformed recipe data")
)

// Store is an ordered collection of recipes.
type Store struct {
	recipes []*models.Recipe
	rng     *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithRand makes SuggestRandom draw from r instead of the process-wide source.
// Tests pass a seeded generator to get repeatable picks.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rng = r }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{recipes: make([]*models.Recipe, 0)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update carries the replacement values for Edit. Blank fields keep the
// current value. Ingredients and Steps are comma-separated text.
type Update struct {
	Name        string
	Category    string
	Ingredients string
	Steps       string
}

// IsEmpty reports whether u would leave a recipe unchanged.
func (u Update) IsEmpty() bool {
	return u.Name == "" && u.Category == "" && u.Ingredients == "" && u.Steps == ""
}

// ---------------------------------------------------------------------------
// Mutation
// ---------------------------------------------------------------------------

// Add appends r to the end of the collection. Duplicate names are allowed.
func (s *Store) Add(r *models.Recipe) {
	s.recipes = append(s.recipes, r)
}

// Edit applies u to the first recipe whose name matches name
// case-insensitively and returns it. The recipe is modified in place and
// keeps its position.
func (s *Store) Edit(name string, u Update) (*models.Recipe, error) {
	i := s.indexOf(name)
	if i < 0 {
		return nil, ErrNotFound
	}
	r := s.recipes[i]
	if u.Name != "" {
		r.Name = u.Name
	}
	if u.Category != "" {
		r.Category = u.Category
	}
	if u.Ingredients != "" {
		r.Ingredients = models.ParseList(u.Ingredients)
	}
	if u.Steps != "" {
		r.Steps = models.ParseList(u.Steps)
	}
	return r, nil
}

// Delete removes the first recipe whose name matches name case-insensitively
// and returns it. Later recipes with the same name are kept.
func (s *Store) Delete(name string) (*models.Recipe, error) {
	i := s.indexOf(name)
	if i < 0 {
		return nil, ErrNotFound
	}
	r := s.recipes[i]
	s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	return r, nil
}

// replace swaps in a whole new sequence. Used by Load once every record has
// been decoded.
func (s *Store) replace(recipes []*models.Recipe) {
	s.recipes = recipes
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Find returns the first recipe whose name matches name case-insensitively.
// The returned recipe is the stored one, not a copy.
func (s *Store) Find(name string) (*models.Recipe, error) {
	i := s.indexOf(name)
	if i < 0 {
		return nil, ErrNotFound
	}
	return s.recipes[i], nil
}

// ListRecipes returns the recipes in insertion order. A non-empty category
// keeps only recipes whose category matches it case-insensitively.
func (s *Store) ListRecipes(category string) []*models.Recipe {
	out := make([]*models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if category == "" || equalLower(r.Category, category) {
			out = append(out, r)
		}
	}
	return out
}

// ListCategories returns the distinct category values. Distinctness compares
// the stored strings exactly, so "Lunch" and "lunch" are both listed. The
// order of the result is unspecified.
func (s *Store) ListCategories() []string {
	set := make(map[string]struct{}, len(s.recipes))
	for _, r := range s.recipes {
		set[r.Category] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for cat := range set {
		out = append(out, cat)
	}
	return out
}

// SuggestRandom returns a uniformly chosen recipe, or ErrEmpty.
func (s *Store) SuggestRandom() (*models.Recipe, error) {
	if len(s.recipes) == 0 {
		return nil, ErrEmpty
	}
	var i int
	if s.rng != nil {
		i = s.rng.IntN(len(s.recipes))
	} else {
		i = rand.IntN(len(s.recipes))
	}
	return s.recipes[i], nil
}

// Len returns the number of stored recipes.
func (s *Store) Len() int { return len(s.recipes) }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// indexOf returns the position of the first case-insensitive name match, or -1.
func (s *Store) indexOf(name string) int {
	for i, r := range s.recipes {
		if equalLower(r.Name, name) {
			return i
		}
	}
	return -1
}

// equalLower compares the lowercased forms of a and b.
func equalLower(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
