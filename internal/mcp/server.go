// Package mcp provides the stdio MCP server exposing cookbook tools to agents.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/cookbook/internal/buildinfo"
	"github.com/go-ports/cookbook/internal/models"
	"github.com/go-ports/cookbook/internal/service"
	"github.com/go-ports/cookbook/internal/store"
)

const listDescription = `List recipes in insertion order. Pass a category to filter (case-insensitive); omit it to list everything.`

const addDescription = `
Add a recipe to the cookbook. The recipe is appended after existing ones and saved immediately.

Names are not unique: adding a second recipe with an existing name keeps both, and name lookups always hit the first one.`

const editDescription = `Edit the first recipe whose name matches (case-insensitive). Every field is optional; omitted or blank fields keep their current value. Ingredients and steps are comma-separated and replace the whole list.` //nolint:lll

// NewServer creates and registers all cookbook tools on a new MCP server.
// It is separate from Serve so that tests can obtain a configured server
// without the stdio transport.
func NewServer(svc *service.Service) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("cookbook", buildinfo.Version)
	registerTools(s, svc)
	return s
}

// Serve starts the stdio MCP server for the cookbook at home, blocking until
// stdin closes.
func Serve(_ context.Context, home string) error {
	svc, err := service.New(home)
	if err != nil {
		return fmt.Errorf("mcp: init service: %w", err)
	}
	return mcpserver.ServeStdio(NewServer(svc))
}

func registerTools(s *mcpserver.MCPServer, svc *service.Service) {
	s.AddTool(mcp.NewTool("recipe_list",
		mcp.WithDescription(listDescription),
		mcp.WithString("category",
			mcp.Description("Only list recipes in this category."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(recipeList(svc.List(req.GetString("category", ""))))
	})

	s.AddTool(mcp.NewTool("recipe_view",
		mcp.WithDescription("Show one recipe by name (case-insensitive)."),
		mcp.WithString("name",
			mcp.Description("Recipe name."),
			mcp.Required(),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return mcp.NewToolResultError("name is required"), nil
		}
		r, err := svc.View(name)
		if err != nil {
			return toolError(err, name), nil
		}
		return jsonResult(recipeJSON(r))
	})

	s.AddTool(mcp.NewTool("recipe_categories",
		mcp.WithDescription("List the distinct recipe categories."),
	), func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(sortedCategories(svc.Categories()))
	})

	s.AddTool(mcp.NewTool("recipe_suggest",
		mcp.WithDescription("Suggest a random recipe."),
	), func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		r, err := svc.Suggest()
		if err != nil {
			return toolError(err, ""), nil
		}
		return jsonResult(recipeJSON(r))
	})

	s.AddTool(mcp.NewTool("recipe_add",
		mcp.WithDescription(addDescription),
		mcp.WithString("name",
			mcp.Description("Recipe name."),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Category label, e.g. Breakfast."),
		),
		mcp.WithArray("ingredients",
			mcp.Description("Ingredients in order."),
			mcp.WithStringItems(),
		),
		mcp.WithArray("steps",
			mcp.Description("Preparation steps in order."),
			mcp.WithStringItems(),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAdd(svc, req)
	})

	s.AddTool(mcp.NewTool("recipe_edit",
		mcp.WithDescription(editDescription),
		mcp.WithString("name",
			mcp.Description("Name of the recipe to edit."),
			mcp.Required(),
		),
		mcp.WithString("new_name", mcp.Description("Replacement name.")),
		mcp.WithString("category", mcp.Description("Replacement category.")),
		mcp.WithString("ingredients", mcp.Description("Replacement ingredients, comma-separated.")),
		mcp.WithString("steps", mcp.Description("Replacement steps, comma-separated.")),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleEdit(svc, req)
	})

	s.AddTool(mcp.NewTool("recipe_delete",
		mcp.WithDescription("Delete the first recipe whose name matches (case-insensitive)."),
		mcp.WithString("name",
			mcp.Description("Recipe name."),
			mcp.Required(),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return mcp.NewToolResultError("name is required"), nil
		}
		r, err := svc.Delete(name)
		if err != nil {
			return toolError(err, name), nil
		}
		return jsonResult(map[string]any{"action": "deleted", "name": r.Name})
	})

	s.AddTool(mcp.NewTool("recipe_export",
		mcp.WithDescription("Render the whole cookbook as Markdown."),
		mcp.WithString("title", mcp.Description("Document title (default Cookbook).")),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(svc.Export(req.GetString("title", "Cookbook"))), nil
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleAdd(svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	r := models.New(
		name,
		req.GetStringSlice("ingredients", make([]string, 0)),
		req.GetStringSlice("steps", make([]string, 0)),
		req.GetString("category", ""),
	)
	if err := svc.Add(r); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"action": "added", "name": r.Name})
}

func handleEdit(svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	u := store.Update{
		Name:        req.GetString("new_name", ""),
		Category:    req.GetString("category", ""),
		Ingredients: req.GetString("ingredients", ""),
		Steps:       req.GetString("steps", ""),
	}
	r, err := svc.Edit(name, u)
	if err != nil {
		return toolError(err, name), nil
	}

	action := "updated"
	if u.IsEmpty() {
		action = "unchanged"
	}
	return jsonResult(map[string]any{"action": action, "recipe": recipeJSON(r)})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// toolError turns a domain error into a tool-level error result.
func toolError(err error, name string) *mcp.CallToolResult {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("recipe not found: %q", name))
	case errors.Is(err, store.ErrEmpty):
		return mcp.NewToolResultError("no recipes available")
	default:
		return mcp.NewToolResultError(err.Error())
	}
}

func recipeJSON(r *models.Recipe) map[string]any {
	return r.ToMap()
}

func recipeList(recipes []*models.Recipe) []map[string]any {
	out := make([]map[string]any, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipeJSON(r))
	}
	return out
}

// sortedCategories gives agents a stable order; the store itself makes no
// ordering promise.
func sortedCategories(cats []string) []string {
	out := append(make([]string, 0, len(cats)), cats...)
	sort.Strings(out)
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
