// Package addcmd implements the `cookbook add` command.
package addcmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/models"
)

// Command implements `cookbook add`.
type Command struct {
	ctx         *shared.Context
	cmd         *cobra.Command
	name        string
	category    string
	ingredients string
	steps       string
}

// New creates the add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "add",
		Short: "Add a recipe and save the cookbook",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	f := c.cmd.Flags()
	f.StringVar(&c.name, "name", "", "Recipe name (required)")
	f.StringVar(&c.category, "category", "", "Category label")
	f.StringVar(&c.ingredients, "ingredients", "", "Comma-separated ingredients")
	f.StringVar(&c.steps, "steps", "", "Comma-separated steps")
	_ = c.cmd.MarkFlagRequired("name")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	name := strings.TrimSpace(c.name)
	if name == "" {
		return errors.New("add: --name must not be blank")
	}

	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	r := models.New(name, splitList(c.ingredients), splitList(c.steps), strings.TrimSpace(c.category))
	if err := svc.Add(r); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %s (%s)\n", r.Name, r.Category)
	return nil
}

func splitList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	return models.ParseList(text)
}
