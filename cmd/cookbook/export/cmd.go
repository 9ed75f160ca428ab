// Package exportcmd implements the `cookbook export` command.
package exportcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
)

// Command implements `cookbook export`.
type Command struct {
	ctx   *shared.Context
	cmd   *cobra.Command
	out   string
	title string
}

// New creates the export command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "export",
		Short: "Render the cookbook as Markdown",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().StringVar(&c.out, "out", "", "Write to this file instead of stdout")
	c.cmd.Flags().StringVar(&c.title, "title", "Cookbook", "Document title")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	doc := svc.Export(c.title)
	if c.out == "" {
		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.out), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(c.out, []byte(doc), 0o644); err != nil { //nolint:gosec // exported cookbook is meant to be readable
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d recipes to %s\n", svc.Count(), c.out)
	return nil
}
