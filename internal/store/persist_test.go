package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"

	"github.com/go-ports/cookbook/internal/models"
	"github.com/go-ports/cookbook/internal/store"
)

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestSave_JSONShape(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), store.DefaultFile)
	c.Assert(seeded().Save(path), qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)

	var doc any
	c.Assert(json.Unmarshal(data, &doc), qt.IsNil)

	gotNames, err := jsonpath.Read(doc, "$[*].name")
	c.Assert(err, qt.IsNil)
	c.Assert(gotNames, qt.DeepEquals, []any{"Vegan Pancakes", "Chickpea Salad"})

	gotCategory, err := jsonpath.Read(doc, "$[1].category")
	c.Assert(err, qt.IsNil)
	c.Assert(gotCategory, qt.Equals, "Lunch")

	gotStep, err := jsonpath.Read(doc, "$[0].steps[2]")
	c.Assert(err, qt.IsNil)
	c.Assert(gotStep, qt.Equals, "Cook until golden brown.")

	var records []map[string]any
	c.Assert(json.Unmarshal(data, &records), qt.IsNil)
	for _, rec := range records {
		c.Assert(rec, qt.HasLen, 4)
	}
}

func TestSave_Overwrites(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "recipes.json")
	c.Assert(os.WriteFile(path, []byte("this is not json at all, and it is long"), 0o600), qt.IsNil)

	s := store.New()
	s.Add(models.New("Only", []string{"x"}, []string{"y"}, "z"))
	c.Assert(s.Save(path), qt.IsNil)

	loaded := store.New()
	c.Assert(loaded.Load(path), qt.IsNil)
	c.Assert(loaded.Len(), qt.Equals, 1)

	entries, err := os.ReadDir(filepath.Dir(path))
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 1)
}

func TestSave_EmptyStore(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "recipes.json")
	c.Assert(store.New().Save(path), qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "[]\n")
}

// ---------------------------------------------------------------------------
// Save + Load round trip
// ---------------------------------------------------------------------------

func TestSaveLoad_RoundTrip(t *testing.T) {
	c := qt.New(t)

	for _, file := range []string{"recipes.json", "cookbook.db", "nested/dir/recipes.json"} {
		c.Run(file, func(c *qt.C) {
			path := filepath.Join(c.TB.TempDir(), file)

			src := seeded()
			src.Add(models.New("Bare", nil, []string{}, ""))
			c.Assert(src.Save(path), qt.IsNil)

			dst := store.New()
			dst.Add(models.New("Will be replaced", nil, nil, "x"))
			c.Assert(dst.Load(path), qt.IsNil)

			want := src.ListRecipes("")
			got := dst.ListRecipes("")
			c.Assert(got, qt.HasLen, len(want))
			for i := range want {
				c.Assert(got[i], qt.DeepEquals, want[i])
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Load failures
// ---------------------------------------------------------------------------

func TestLoad_MissingSource(t *testing.T) {
	c := qt.New(t)

	for _, file := range []string{"absent.json", "absent.db"} {
		c.Run(file, func(c *qt.C) {
			dir := c.TB.TempDir()
			s := seeded()

			err := s.Load(filepath.Join(dir, file))
			c.Assert(err, qt.ErrorIs, store.ErrNoSavedData)
			c.Assert(names(s.ListRecipes("")), qt.DeepEquals, []string{"Vegan Pancakes", "Chickpea Salad"})

			// Loading must not create the file as a side effect.
			_, statErr := os.Stat(filepath.Join(dir, file))
			c.Assert(os.IsNotExist(statErr), qt.IsTrue)
		})
	}
}

func TestLoad_MalformedData(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name    string
		content string
	}{
		{"invalid json", `[{"name": "Soup",`},
		{"top-level object", `{"name": "Soup"}`},
		{"top-level null", `null`},
		{"record missing category", `[{"name": "Soup", "ingredients": [], "steps": []}]`},
		{"second record missing steps", `[
			{"name": "A", "ingredients": [], "steps": [], "category": "x"},
			{"name": "B", "ingredients": [], "category": "x"}
		]`},
		{"ingredients not a list", `[{"name": "Soup", "ingredients": "water", "steps": [], "category": "x"}]`},
		{"null record", `[null]`},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			path := filepath.Join(c.TB.TempDir(), "recipes.json")
			c.Assert(os.WriteFile(path, []byte(tc.content), 0o600), qt.IsNil)

			s := seeded()
			err := s.Load(path)
			c.Assert(err, qt.ErrorIs, store.ErrMalformedData)
			c.Assert(s.Len(), qt.Equals, 2)
			c.Assert(names(s.ListRecipes("")), qt.DeepEquals, []string{"Vegan Pancakes", "Chickpea Salad"})
		})
	}

	c.Run("missing field keeps the field error", func(c *qt.C) {
		_, err := store.DecodeJSON([]byte(`[{"name": "Soup", "ingredients": [], "steps": []}]`))
		c.Assert(err, qt.ErrorIs, store.ErrMalformedData)
		c.Assert(err, qt.ErrorIs, models.ErrMissingField)
	})

	c.Run("sqlite path holding garbage", func(c *qt.C) {
		path := filepath.Join(c.TB.TempDir(), "cookbook.db")
		garbage := strings.Repeat("definitely not a sqlite database file. ", 64)
		c.Assert(os.WriteFile(path, []byte(garbage), 0o600), qt.IsNil)

		s := seeded()
		err := s.Load(path)
		c.Assert(err, qt.ErrorIs, store.ErrMalformedData)
		c.Assert(s.Len(), qt.Equals, 2)
	})
}

func TestLoad_EmptyArray(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "recipes.json")
	c.Assert(os.WriteFile(path, []byte(`[]`), 0o600), qt.IsNil)

	s := seeded()
	c.Assert(s.Load(path), qt.IsNil)
	c.Assert(s.Len(), qt.Equals, 0)
}

func TestIsSQLitePath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		path string
		want bool
	}{
		{"recipes.json", false},
		{"cookbook.db", true},
		{"COOKBOOK.SQLITE", true},
		{"x.sqlite3", true},
		{"noext", false},
	}
	for _, tc := range cases {
		c.Run(tc.path, func(c *qt.C) {
			c.Assert(store.IsSQLitePath(tc.path), qt.Equals, tc.want)
		})
	}
}
