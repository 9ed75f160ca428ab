// Package viewcmd implements the `cookbook view` command.
package viewcmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/render"
	"github.com/go-ports/cookbook/internal/store"
)

// Command implements `cookbook view`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the view command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "view <name>",
		Short: "Show a recipe by name (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	r, err := svc.View(strings.Join(args, " "))
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "Recipe not found.")
		return nil
	}
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), r)
}
