// Package models defines the core data types for the recipe catalog.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Serialized field keys. A persisted recipe carries exactly these four.
const (
	KeyName        = "name"
	KeyIngredients = "ingredients"
	KeySteps       = "steps"
	KeyCategory    = "category"
)

// RequiredKeys lists the keys FromMap insists on, in serialization order.
var RequiredKeys = []string{KeyName, KeyIngredients, KeySteps, KeyCategory}

var (
	// ErrMissingField is returned by FromMap when a required key is absent.
	ErrMissingField = errors.New("missing field")
	// ErrMalformedField is returned by FromMap when a key holds the wrong type.
	ErrMalformedField = errors.New("malformed field")
)

// Recipe is a named set of ingredients, ordered steps, and a category label.
// Name and Category keep their original casing; lookups compare lowercased.
type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Category    string   `json:"category"`
}

// New constructs a Recipe with exactly the given values. Nothing is validated:
// empty strings and empty lists are accepted.
func New(name string, ingredients, steps []string, category string) *Recipe {
	return &Recipe{
		Name:        name,
		Ingredients: ingredients,
		Steps:       steps,
		Category:    category,
	}
}

// ToMap serializes r to a plain mapping keyed by the four field names.
func (r *Recipe) ToMap() map[string]any {
	return map[string]any{
		KeyName:        r.Name,
		KeyIngredients: r.Ingredients,
		KeySteps:       r.Steps,
		KeyCategory:    r.Category,
	}
}

// FromMap builds a Recipe from a mapping produced by ToMap or decoded from
// JSON. Every required key must be present; list fields accept []string,
// []any of strings (the shape encoding/json produces), or nil.
func FromMap(m map[string]any) (*Recipe, error) {
	for _, key := range RequiredKeys {
		if _, ok := m[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, key)
		}
	}

	name, ok := m[KeyName].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, want string", ErrMalformedField, KeyName, m[KeyName])
	}
	category, ok := m[KeyCategory].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, want string", ErrMalformedField, KeyCategory, m[KeyCategory])
	}
	ingredients, err := stringList(KeyIngredients, m[KeyIngredients])
	if err != nil {
		return nil, err
	}
	steps, err := stringList(KeySteps, m[KeySteps])
	if err != nil {
		return nil, err
	}

	return New(name, ingredients, steps, category), nil
}

// Clone returns a deep copy of r.
func (r *Recipe) Clone() *Recipe {
	return &Recipe{
		Name:        r.Name,
		Ingredients: cloneStrings(r.Ingredients),
		Steps:       cloneStrings(r.Steps),
		Category:    r.Category,
	}
}

// ParseList splits comma-separated text into a list, trimming surrounding
// whitespace from every element. Empty elements are kept so that the list
// mirrors what the user typed.
func ParseList(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// SampleRecipes returns the two starter recipes a fresh cookbook is seeded with.
func SampleRecipes() []*Recipe {
	return []*Recipe{
		New(
			"Vegan Pancakes",
			[]string{"1 cup flour", "1 tbsp sugar", "1 tbsp baking powder", "1 cup oat milk", "1 tbsp oil"},
			[]string{"Mix all ingredients.", "Heat a pan and pour batter.", "Cook until golden brown."},
			"Breakfast",
		),
		New(
			"Chickpea Salad",
			[]string{"1 can chickpeas", "1 cucumber", "1 tomato", "Lemon juice", "Olive oil", "Salt"},
			[]string{"Drain chickpeas.", "Chop veggies.", "Mix all ingredients in a bowl."},
			"Lunch",
		),
	}
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func stringList(key string, v any) ([]string, error) {
	switch vals := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return vals, nil
	case []any:
		out := make([]string, len(vals))
		for i, item := range vals {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q[%d] is %T, want string", ErrMalformedField, key, i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T, want list of strings", ErrMalformedField, key, v)
	}
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}
