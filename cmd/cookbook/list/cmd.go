// Package listcmd implements the `cookbook list` command.
package listcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/render"
)

// Command implements `cookbook list`.
type Command struct {
	ctx      *shared.Context
	cmd      *cobra.Command
	category string
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "List recipes in insertion order",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().StringVar(&c.category, "category", "", "Only list recipes in this category (case-insensitive)")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	recipes := svc.List(c.category)
	if len(recipes) == 0 {
		fmt.Fprintln(out, "No recipes found.")
		return nil
	}
	for _, r := range recipes {
		fmt.Fprintln(out, render.Summary(r))
	}
	return nil
}
