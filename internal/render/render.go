// Package render formats recipes as console text blocks and Markdown.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-ports/cookbook/internal/models"
)

// Separator closes every rendered recipe block.
var Separator = strings.Repeat("-", 30)

// Recipe produces the human-readable block for r: title, category, the
// ingredient list in order, 1-based numbered steps, and a trailing separator.
func Recipe(r *models.Recipe) string {
	var sb strings.Builder
	sb.WriteString("\n--- ")
	sb.WriteString(r.Name)
	sb.WriteString(" ---\n")
	sb.WriteString("Category: ")
	sb.WriteString(r.Category)
	sb.WriteString("\n\nIngredients:\n")
	for _, ing := range r.Ingredients {
		sb.WriteString("- ")
		sb.WriteString(ing)
		sb.WriteString("\n")
	}
	sb.WriteString("\nSteps:\n")
	for i, step := range r.Steps {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(step)
		sb.WriteString("\n")
	}
	sb.WriteString(Separator)
	sb.WriteString("\n")
	return sb.String()
}

// Write renders r to w.
func Write(w io.Writer, r *models.Recipe) error {
	_, err := io.WriteString(w, Recipe(r))
	return err
}

// Summary is the one-line listing form of r.
func Summary(r *models.Recipe) string {
	return fmt.Sprintf("- %s (%s)", r.Name, r.Category)
}

// ---------------------------------------------------------------------------
// Markdown export
// ---------------------------------------------------------------------------

// Markdown renders recipes as a cookbook document. Recipes are grouped under
// one H2 per category; categories appear in the order they are first seen and
// recipes keep their relative order within a category. Category grouping is
// case-insensitive and the heading uses the first spelling encountered.
func Markdown(title string, recipes []*models.Recipe) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n")

	if len(recipes) == 0 {
		sb.WriteString("\n_No recipes yet._\n")
		return sb.String()
	}

	for _, g := range groupByCategory(recipes) {
		sb.WriteString("\n## ")
		if g.heading == "" {
			sb.WriteString("Uncategorized")
		} else {
			sb.WriteString(g.heading)
		}
		sb.WriteString("\n")
		for _, r := range g.recipes {
			sb.WriteString("\n")
			sb.WriteString(markdownSection(r))
		}
	}
	return sb.String()
}

// markdownSection produces a single ### block for a recipe.
func markdownSection(r *models.Recipe) string {
	var sb strings.Builder
	sb.WriteString("### ")
	sb.WriteString(r.Name)
	sb.WriteString("\n\n**Ingredients:**\n\n")
	for _, ing := range r.Ingredients {
		sb.WriteString("- ")
		sb.WriteString(ing)
		sb.WriteString("\n")
	}
	sb.WriteString("\n**Steps:**\n\n")
	for i, step := range r.Steps {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(step)
		sb.WriteString("\n")
	}
	return sb.String()
}

type categoryGroup struct {
	heading string
	recipes []*models.Recipe
}

func groupByCategory(recipes []*models.Recipe) []*categoryGroup {
	index := make(map[string]*categoryGroup)
	var groups []*categoryGroup
	for _, r := range recipes {
		key := strings.ToLower(r.Category)
		g, ok := index[key]
		if !ok {
			g = &categoryGroup{heading: r.Category}
			index[key] = g
			groups = append(groups, g)
		}
		g.recipes = append(g.recipes, r)
	}
	return groups
}
