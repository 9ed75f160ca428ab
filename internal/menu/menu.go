// Package menu implements the numbered interactive console over a recipe
// store.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-ports/cookbook/internal/config"
	"github.com/go-ports/cookbook/internal/models"
	"github.com/go-ports/cookbook/internal/render"
	"github.com/go-ports/cookbook/internal/store"
)

// options are printed in this order before every prompt.
var options = []string{
	"1. Show all recipes",
	"2. Show recipes by category",
	"3. View a recipe",
	"4. List categories",
	"5. Edit a recipe",
	"6. Delete a recipe",
	"7. Suggest a random recipe",
	"8. Save recipes",
	"9. Load recipes",
	"10. Exit",
	"11. Add a recipe",
}

// errExit ends the loop; it never escapes Run.
var errExit = errors.New("exit")

// Menu drives one interactive session. It is not safe for concurrent use.
type Menu struct {
	store    *store.Store
	dataPath string
	cfg      config.MenuConfig
	lines    <-chan string
	out      io.Writer
	styles   styles
}

// New returns a Menu reading choices from in and writing to out. Save and
// load use dataPath.
func New(st *store.Store, dataPath string, cfg config.MenuConfig, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store:    st,
		dataPath: dataPath,
		cfg:      cfg,
		lines:    scanLines(in),
		out:      out,
		styles:   newStyles(out),
	}
}

// scanLines feeds in line by line into the returned channel, closing it at
// EOF. Reading happens on its own goroutine so Run can honour cancellation
// while blocked on input.
func scanLines(in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			ch <- strings.TrimRight(sc.Text(), "\r")
		}
		if err := sc.Err(); err != nil {
			slog.Debug("menu: read input", "error", err)
		}
	}()
	return ch
}

// Run prints the banner and serves choices until the user exits, input ends,
// or ctx is cancelled. Only a cancelled context is reported as an error.
func (m *Menu) Run(ctx context.Context) error {
	m.println(m.styles.banner.Render(m.cfg.Banner))

	for {
		m.println("")
		for _, o := range options {
			m.println(m.styles.muted.Render(o))
		}

		choice, err := m.prompt(ctx, "Choose an option: ")
		if err == nil {
			err = m.dispatch(ctx, strings.TrimSpace(choice))
		}
		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			m.println(m.cfg.Farewell)
			return nil
		default:
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		m.listRecipes("")
	case "2":
		cat, err := m.prompt(ctx, "Enter category: ")
		if err != nil {
			return err
		}
		m.listRecipes(cat)
	case "3":
		name, err := m.prompt(ctx, "Enter recipe name: ")
		if err != nil {
			return err
		}
		m.viewRecipe(name)
	case "4":
		m.listCategories()
	case "5":
		return m.editRecipe(ctx)
	case "6":
		name, err := m.prompt(ctx, "Enter recipe name to delete: ")
		if err != nil {
			return err
		}
		m.deleteRecipe(name)
	case "7":
		m.suggest()
	case "8":
		m.save()
	case "9":
		m.load()
	case "10":
		return errExit
	case "11":
		return m.addRecipe(ctx)
	default:
		m.warn("Invalid option. Try again.")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

func (m *Menu) listRecipes(category string) {
	m.println("")
	m.println(m.styles.header.Render("Available Recipes:"))
	for _, r := range m.store.ListRecipes(category) {
		m.println(render.Summary(r))
	}
}

func (m *Menu) listCategories() {
	m.println("")
	m.println(m.styles.header.Render("Available Categories:"))
	for _, c := range m.store.ListCategories() {
		m.println("- " + c)
	}
}

func (m *Menu) viewRecipe(name string) {
	r, err := m.store.Find(name)
	if err != nil {
		m.warn("Recipe not found.")
		return
	}
	m.print(render.Recipe(r))
}

func (m *Menu) editRecipe(ctx context.Context) error {
	name, err := m.prompt(ctx, "Enter recipe name to edit: ")
	if err != nil {
		return err
	}
	if _, err := m.store.Find(name); err != nil {
		m.warn("Recipe not found.")
		return nil
	}

	var u store.Update
	fields := []struct {
		label string
		dst   *string
	}{
		{"New name (leave blank to keep): ", &u.Name},
		{"New category (leave blank to keep): ", &u.Category},
		{"New ingredients (comma-separated, leave blank to keep): ", &u.Ingredients},
		{"New steps (comma-separated, leave blank to keep): ", &u.Steps},
	}
	for _, f := range fields {
		if *f.dst, err = m.prompt(ctx, f.label); err != nil {
			return err
		}
	}

	if _, err := m.store.Edit(name, u); err != nil {
		m.warn("Recipe not found.")
		return nil
	}
	m.ok("Recipe updated!")
	return nil
}

func (m *Menu) deleteRecipe(name string) {
	if _, err := m.store.Delete(name); err != nil {
		m.warn("Recipe not found.")
		return
	}
	m.ok(fmt.Sprintf("'%s' deleted successfully.", name))
}

func (m *Menu) addRecipe(ctx context.Context) error {
	answers := make([]string, 4)
	labels := []string{
		"Recipe name: ",
		"Category: ",
		"Ingredients (comma-separated): ",
		"Steps (comma-separated): ",
	}
	for i, label := range labels {
		a, err := m.prompt(ctx, label)
		if err != nil {
			return err
		}
		answers[i] = a
	}

	if strings.TrimSpace(answers[0]) == "" {
		m.warn("Recipe name cannot be empty.")
		return nil
	}
	m.store.Add(models.New(
		strings.TrimSpace(answers[0]),
		optionalList(answers[2]),
		optionalList(answers[3]),
		strings.TrimSpace(answers[1]),
	))
	m.ok("Recipe added!")
	return nil
}

func (m *Menu) suggest() {
	r, err := m.store.SuggestRandom()
	if err != nil {
		m.warn("No recipes available.")
		return
	}
	m.print(render.Recipe(r))
}

func (m *Menu) save() {
	if err := m.store.Save(m.dataPath); err != nil {
		slog.Warn("menu: save failed", "path", m.dataPath, "error", err)
		m.warn("Could not save recipes: " + err.Error())
		return
	}
	m.ok("Recipes saved to file.")
}

func (m *Menu) load() {
	err := m.store.Load(m.dataPath)
	switch {
	case err == nil:
		m.ok("Recipes loaded from file.")
	case errors.Is(err, store.ErrNoSavedData):
		m.warn("No saved file found.")
	case errors.Is(err, store.ErrMalformedData):
		slog.Warn("menu: malformed data file", "path", m.dataPath, "error", err)
		m.warn("Saved file is malformed; recipes left unchanged.")
	default:
		m.warn("Could not load recipes: " + err.Error())
	}
}

// ---------------------------------------------------------------------------
// I/O helpers
// ---------------------------------------------------------------------------

// prompt writes label and waits for the next line. It returns io.EOF once
// input is exhausted.
func (m *Menu) prompt(ctx context.Context, label string) (string, error) {
	m.print(label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-m.lines:
		if !ok {
			m.println("")
			return "", io.EOF
		}
		return line, nil
	}
}

// optionalList parses a comma-separated answer; blank means no items.
func optionalList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	return models.ParseList(text)
}

func (m *Menu) print(s string)   { fmt.Fprint(m.out, s) }
func (m *Menu) println(s string) { fmt.Fprintln(m.out, s) }
func (m *Menu) ok(s string)      { m.println(m.styles.ok.Render(s)) }
func (m *Menu) warn(s string)    { m.println(m.styles.warn.Render(s)) }
