// Package initcmd implements the `cookbook init` command.
package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
)

// Command implements `cookbook init`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the init command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize the cookbook home and its data file",
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := os.Stat(svc.DataPath); err == nil {
		fmt.Fprintf(out, "Cookbook already initialized at %s\n", svc.Home)
		return nil
	}
	if err := svc.Persist(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	fmt.Fprintf(out, "Cookbook initialized at %s (%d recipes)\n", svc.Home, svc.Count())
	return nil
}
