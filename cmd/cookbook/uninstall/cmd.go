// Package uninstallcmd implements the `cookbook uninstall` command group.
package uninstallcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	setupcmd "github.com/go-ports/cookbook/cmd/cookbook/setup"
	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/setup"
)

// Command implements `cookbook uninstall`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the uninstall command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the cookbook MCP server from an agent",
		RunE:  func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	c.cmd.AddCommand(
		newUninstall("claude-code", ".claude", "Claude Code", func(dir string, project bool) (setup.Result, error) {
			return setup.UninstallClaudeCode(dir, project)
		}),
		newUninstall("cursor", ".cursor", "Cursor", func(dir string, _ bool) (setup.Result, error) {
			return setup.UninstallCursor(dir)
		}),
		newUninstall("codex", ".codex", "Codex", func(dir string, _ bool) (setup.Result, error) {
			return setup.UninstallCodex(dir)
		}),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func newUninstall(use, dotDir, agent string, remove func(dir string, project bool) (setup.Result, error)) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   use,
		Short: "Remove the cookbook MCP server from " + agent,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := remove(setupcmd.ResolveConfigDir(dotDir, configDir, project), project)
			if err != nil {
				return fmt.Errorf("uninstall: %s: %w", res.Path, err)
			}
			if res.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed cookbook MCP server from %s\n", res.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to remove in %s\n", res.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to "+dotDir+" directory")
	cmd.Flags().BoolVar(&project, "project", false, "Uninstall from current project instead of globally")
	return cmd
}
