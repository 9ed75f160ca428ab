// Package mcpcmd implements the `cookbook mcp` command.
package mcpcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	internalmcp "github.com/go-ports/cookbook/internal/mcp"
)

// Command implements `cookbook mcp`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the mcp command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "mcp",
		Short: "Start the cookbook MCP server (stdio transport)",
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	return internalmcp.Serve(cmd.Context(), c.ctx.Home)
}
