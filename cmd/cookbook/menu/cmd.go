// Package menucmd implements the `cookbook menu` command.
package menucmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/menu"
)

// Command implements `cookbook menu`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the menu command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive numbered menu",
		Long: `Start the interactive numbered menu.

Changes made in the menu live in memory until option 8 saves them to the
cookbook data file. Option 9 reloads the data file.`,
		RunE: c.run,
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

	m := menu.New(svc.Store(), svc.DataPath, svc.Config.Menu, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := m.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
