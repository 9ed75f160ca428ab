// Package deletecmd implements the `cookbook delete` command.
package deletecmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/store"
)

// Command implements `cookbook delete`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the delete command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete the first recipe matching name (case-insensitive)",
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

	name := strings.Join(args, " ")
	_, err = svc.Delete(name)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "Recipe not found.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "'%s' deleted successfully.\n", name)
	return nil
}
