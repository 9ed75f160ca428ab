package store_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/cookbook/internal/models"
	"github.com/go-ports/cookbook/internal/store"
)

// seeded returns a store holding the two sample recipes.
func seeded(opts ...store.Option) *store.Store {
	s := store.New(opts...)
	for _, r := range models.SampleRecipes() {
		s.Add(r)
	}
	return s
}

func names(recipes []*models.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Name
	}
	return out
}

// ---------------------------------------------------------------------------
// Add / ListRecipes
// ---------------------------------------------------------------------------

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	want := []string{"Zucchini Bread", "Apple Crumble", "Miso Soup", "Apple Crumble"}
	for _, n := range want {
		s.Add(models.New(n, nil, nil, "Any"))
	}

	c.Assert(s.Len(), qt.Equals, len(want))
	c.Assert(names(s.ListRecipes("")), qt.DeepEquals, want)
}

func TestListRecipes_HappyPath(t *testing.T) {
	c := qt.New(t)

	s := seeded()
	s.Add(models.New("Tofu Scramble", nil, nil, "BREAKFAST"))

	cases := []struct {
		name     string
		category string
		want     []string
	}{
		{"no filter returns everything", "", []string{"Vegan Pancakes", "Chickpea Salad", "Tofu Scramble"}},
		{"filter is case-insensitive", "lunch", []string{"Chickpea Salad"}},
		{"filter keeps insertion order", "breakfast", []string{"Vegan Pancakes", "Tofu Scramble"}},
		{"unknown category yields nothing", "Dessert", []string{}},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(names(s.ListRecipes(tc.category)), qt.DeepEquals, tc.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Find
// ---------------------------------------------------------------------------

func TestFind_HappyPath(t *testing.T) {
	c := qt.New(t)
	s := seeded()

	for _, q := range []string{"vegan pancakes", "VEGAN PANCAKES", "Vegan Pancakes"} {
		c.Run(q, func(c *qt.C) {
			r, err := s.Find(q)
			c.Assert(err, qt.IsNil)
			c.Assert(r.Name, qt.Equals, "Vegan Pancakes")
		})
	}
}

func TestFind_FirstMatchWins(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	s.Add(models.New("Soup", nil, nil, "First"))
	s.Add(models.New("soup", nil, nil, "Second"))

	r, err := s.Find("SOUP")
	c.Assert(err, qt.IsNil)
	c.Assert(r.Category, qt.Equals, "First")
}

func TestFind_FailurePath(t *testing.T) {
	c := qt.New(t)

	_, err := seeded().Find("Pancakes")
	c.Assert(err, qt.ErrorIs, store.ErrNotFound)

	_, err = store.New().Find("anything")
	c.Assert(err, qt.ErrorIs, store.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Edit
// ---------------------------------------------------------------------------

func TestEdit_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("blank update leaves the recipe unchanged", func(c *qt.C) {
		s := seeded()
		before := models.SampleRecipes()[0]

		r, err := s.Edit("vegan pancakes", store.Update{})
		c.Assert(err, qt.IsNil)
		c.Assert(r, qt.DeepEquals, before)
	})

	c.Run("each field replaces only itself", func(c *qt.C) {
		s := seeded()

		r, err := s.Edit("VEGAN PANCAKES", store.Update{
			Name:        "Fluffy Pancakes",
			Ingredients: " flour , oat milk,  baking powder ",
		})
		c.Assert(err, qt.IsNil)
		c.Assert(r.Name, qt.Equals, "Fluffy Pancakes")
		c.Assert(r.Ingredients, qt.DeepEquals, []string{"flour", "oat milk", "baking powder"})
		c.Assert(r.Category, qt.Equals, "Breakfast")
		c.Assert(r.Steps, qt.DeepEquals, models.SampleRecipes()[0].Steps)
	})

	c.Run("steps and category are replaced", func(c *qt.C) {
		s := seeded()

		_, err := s.Edit("chickpea salad", store.Update{Category: "Dinner", Steps: "Mix,Serve"})
		c.Assert(err, qt.IsNil)

		r, err := s.Find("Chickpea Salad")
		c.Assert(err, qt.IsNil)
		c.Assert(r.Category, qt.Equals, "Dinner")
		c.Assert(r.Steps, qt.DeepEquals, []string{"Mix", "Serve"})
	})

	c.Run("edit does not reorder", func(c *qt.C) {
		s := seeded()
		_, err := s.Edit("vegan pancakes", store.Update{Name: "Waffles"})
		c.Assert(err, qt.IsNil)
		c.Assert(names(s.ListRecipes("")), qt.DeepEquals, []string{"Waffles", "Chickpea Salad"})
	})

	c.Run("only the first duplicate is edited", func(c *qt.C) {
		s := store.New()
		s.Add(models.New("Soup", nil, nil, "A"))
		s.Add(models.New("Soup", nil, nil, "B"))

		_, err := s.Edit("soup", store.Update{Category: "C"})
		c.Assert(err, qt.IsNil)

		all := s.ListRecipes("")
		c.Assert(all[0].Category, qt.Equals, "C")
		c.Assert(all[1].Category, qt.Equals, "B")
	})
}

func TestEdit_FailurePath(t *testing.T) {
	c := qt.New(t)
	_, err := seeded().Edit("Waffles", store.Update{Name: "x"})
	c.Assert(err, qt.ErrorIs, store.ErrNotFound)
}

func TestUpdate_IsEmpty(t *testing.T) {
	c := qt.New(t)
	c.Assert(store.Update{}.IsEmpty(), qt.IsTrue)
	c.Assert(store.Update{Steps: "a"}.IsEmpty(), qt.IsFalse)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("removes case-insensitive match", func(c *qt.C) {
		s := seeded()

		r, err := s.Delete("chickpea salad")
		c.Assert(err, qt.IsNil)
		c.Assert(r.Name, qt.Equals, "Chickpea Salad")

		_, err = s.Find("Chickpea Salad")
		c.Assert(err, qt.ErrorIs, store.ErrNotFound)
		c.Assert(s.Len(), qt.Equals, 1)
	})

	c.Run("removes only the first of two duplicates", func(c *qt.C) {
		s := store.New()
		s.Add(models.New("Soup", nil, nil, "First"))
		s.Add(models.New("Bread", nil, nil, "Other"))
		s.Add(models.New("SOUP", nil, nil, "Second"))

		_, err := s.Delete("soup")
		c.Assert(err, qt.IsNil)

		r, err := s.Find("soup")
		c.Assert(err, qt.IsNil)
		c.Assert(r.Category, qt.Equals, "Second")
		c.Assert(names(s.ListRecipes("")), qt.DeepEquals, []string{"Bread", "SOUP"})
	})
}

func TestDelete_FailurePath(t *testing.T) {
	c := qt.New(t)

	s := seeded()
	_, err := s.Delete("Waffles")
	c.Assert(err, qt.ErrorIs, store.ErrNotFound)
	c.Assert(s.Len(), qt.Equals, 2)
}

// ---------------------------------------------------------------------------
// ListCategories
// ---------------------------------------------------------------------------

func TestListCategories_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("sample store", func(c *qt.C) {
		got := seeded().ListCategories()
		sort.Strings(got)
		c.Assert(got, qt.DeepEquals, []string{"Breakfast", "Lunch"})
	})

	c.Run("distinctness is case-sensitive", func(c *qt.C) {
		s := seeded()
		s.Add(models.New("Wrap", nil, nil, "lunch"))
		s.Add(models.New("Bowl", nil, nil, "Lunch"))

		got := s.ListCategories()
		sort.Strings(got)
		c.Assert(got, qt.DeepEquals, []string{"Breakfast", "Lunch", "lunch"})
	})

	c.Run("empty store", func(c *qt.C) {
		c.Assert(store.New().ListCategories(), qt.HasLen, 0)
	})
}

// ---------------------------------------------------------------------------
// SuggestRandom
// ---------------------------------------------------------------------------

func TestSuggestRandom_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("every recipe can be picked", func(c *qt.C) {
		s := seeded(store.WithRand(rand.New(rand.NewPCG(1, 2))))
		seen := make(map[string]int)
		for range 200 {
			r, err := s.SuggestRandom()
			c.Assert(err, qt.IsNil)
			seen[r.Name]++
		}
		c.Assert(seen, qt.HasLen, 2)
	})

	c.Run("same seed gives the same picks", func(c *qt.C) {
		a := seeded(store.WithRand(rand.New(rand.NewPCG(7, 7))))
		b := seeded(store.WithRand(rand.New(rand.NewPCG(7, 7))))
		for range 20 {
			ra, err := a.SuggestRandom()
			c.Assert(err, qt.IsNil)
			rb, err := b.SuggestRandom()
			c.Assert(err, qt.IsNil)
			c.Assert(ra.Name, qt.Equals, rb.Name)
		}
	})

	c.Run("process-wide source", func(c *qt.C) {
		r, err := seeded().SuggestRandom()
		c.Assert(err, qt.IsNil)
		c.Assert(r, qt.IsNotNil)
	})
}

func TestSuggestRandom_FailurePath(t *testing.T) {
	c := qt.New(t)

	_, err := store.New().SuggestRandom()
	c.Assert(err, qt.ErrorIs, store.ErrEmpty)
}
