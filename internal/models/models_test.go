package models_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/cookbook/internal/models"
)

func TestNew_HappyPath(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name        string
		recipeName  string
		ingredients []string
		steps       []string
		category    string
	}{
		{
			name:        "all fields set",
			recipeName:  "Vegan Pancakes",
			ingredients: []string{"1 cup flour", "1 cup oat milk"},
			steps:       []string{"Mix.", "Cook."},
			category:    "Breakfast",
		},
		{
			name:        "empty values are accepted",
			recipeName:  "",
			ingredients: []string{},
			steps:       nil,
			category:    "",
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			r := models.New(tt.recipeName, tt.ingredients, tt.steps, tt.category)
			c.Assert(r, qt.IsNotNil)
			c.Assert(r.Name, qt.Equals, tt.recipeName)
			c.Assert(r.Ingredients, qt.DeepEquals, tt.ingredients)
			c.Assert(r.Steps, qt.DeepEquals, tt.steps)
			c.Assert(r.Category, qt.Equals, tt.category)
		})
	}
}

func TestToMapFromMap_RoundTrip(t *testing.T) {
	c := qt.New(t)

	m := map[string]any{
		"name":        "Chickpea Salad",
		"ingredients": []string{"1 can chickpeas", "Salt"},
		"steps":       []string{"Drain chickpeas.", "Mix."},
		"category":    "Lunch",
	}

	r, err := models.FromMap(m)
	c.Assert(err, qt.IsNil)
	c.Assert(r.ToMap(), qt.DeepEquals, m)
}

func TestFromMap_JSONShapedLists(t *testing.T) {
	c := qt.New(t)

	r, err := models.FromMap(map[string]any{
		"name":        "Toast",
		"ingredients": []any{"bread"},
		"steps":       []any{"Toast it.", "Eat it."},
		"category":    "Snack",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(r.Ingredients, qt.DeepEquals, []string{"bread"})
	c.Assert(r.Steps, qt.DeepEquals, []string{"Toast it.", "Eat it."})
}

func TestFromMap_FailurePath(t *testing.T) {
	c := qt.New(t)

	full := func() map[string]any {
		return map[string]any{
			"name":        "Toast",
			"ingredients": []any{"bread"},
			"steps":       []any{"Toast it."},
			"category":    "Snack",
		}
	}

	for _, key := range models.RequiredKeys {
		c.Run("missing "+key, func(c *qt.C) {
			m := full()
			delete(m, key)
			_, err := models.FromMap(m)
			c.Assert(err, qt.ErrorIs, models.ErrMissingField)
			c.Assert(err, qt.ErrorMatches, `.*"`+key+`".*`)
		})
	}

	cases := []struct {
		name string
		key  string
		val  any
	}{
		{"name is a number", "name", 42.0},
		{"category is a list", "category", []any{"Lunch"}},
		{"ingredients is a string", "ingredients", "bread, butter"},
		{"steps holds a non-string", "steps", []any{"ok", 3.0}},
	}
	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			m := full()
			m[tc.key] = tc.val
			_, err := models.FromMap(m)
			c.Assert(err, qt.ErrorIs, models.ErrMalformedField)
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	c := qt.New(t)

	orig := models.New("Soup", []string{"water"}, []string{"Boil."}, "Dinner")
	cp := orig.Clone()
	cp.Ingredients[0] = "stock"
	cp.Steps = append(cp.Steps, "Serve.")
	cp.Name = "Stew"

	c.Assert(orig.Ingredients, qt.DeepEquals, []string{"water"})
	c.Assert(orig.Steps, qt.DeepEquals, []string{"Boil."})
	c.Assert(orig.Name, qt.Equals, "Soup")
}

func TestParseList_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"single item", "flour", []string{"flour"}},
		{"trims whitespace", " flour ,  sugar,oil ", []string{"flour", "sugar", "oil"}},
		{"keeps empty elements", "a,,b", []string{"a", "", "b"}},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(models.ParseList(tc.in), qt.DeepEquals, tc.want)
		})
	}
}

func TestSampleRecipes(t *testing.T) {
	c := qt.New(t)

	samples := models.SampleRecipes()
	c.Assert(samples, qt.HasLen, 2)
	c.Assert(samples[0].Name, qt.Equals, "Vegan Pancakes")
	c.Assert(samples[0].Category, qt.Equals, "Breakfast")
	c.Assert(samples[0].Ingredients, qt.HasLen, 5)
	c.Assert(samples[1].Name, qt.Equals, "Chickpea Salad")
	c.Assert(samples[1].Category, qt.Equals, "Lunch")
	c.Assert(samples[1].Steps, qt.HasLen, 3)
}
