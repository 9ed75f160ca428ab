// Package suggestcmd implements the `cookbook suggest` command.
package suggestcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/render"
	"github.com/go-ports/cookbook/internal/store"
)

// Command implements `cookbook suggest`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the suggest command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "suggest",
		Short: "Show a randomly chosen recipe",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	r, err := svc.Suggest()
	if errors.Is(err, store.ErrEmpty) {
		fmt.Fprintln(cmd.OutOrStdout(), "No recipes available.")
		return nil
	}
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), r)
}
