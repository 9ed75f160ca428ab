// Package editcmd implements the `cookbook edit` command.
package editcmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/store"
)

// Command implements `cookbook edit`.
type Command struct {
	ctx    *shared.Context
	cmd    *cobra.Command
	update store.Update
}

// New creates the edit command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit the first recipe matching name; omitted flags keep their value",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run,
	}
	f := c.cmd.Flags()
	f.StringVar(&c.update.Name, "name", "", "New name")
	f.StringVar(&c.update.Category, "category", "", "New category")
	f.StringVar(&c.update.Ingredients, "ingredients", "", "New comma-separated ingredients (replaces the list)")
	f.StringVar(&c.update.Steps, "steps", "", "New comma-separated steps (replaces the list)")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, err = svc.Edit(strings.Join(args, " "), c.update)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintln(out, "Recipe not found.")
		return nil
	}
	if err != nil {
		return err
	}
	if c.update.IsEmpty() {
		fmt.Fprintln(out, "Nothing to change.")
		return nil
	}
	fmt.Fprintln(out, "Recipe updated!")
	return nil
}
