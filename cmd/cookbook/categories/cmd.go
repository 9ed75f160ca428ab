// Package categoriescmd implements the `cookbook categories` command.
package categoriescmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
)

// Command implements `cookbook categories`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the categories command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "categories",
		Short: "List the distinct recipe categories",
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

	cats := svc.Categories()
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", cat)
	}
	return nil
}
