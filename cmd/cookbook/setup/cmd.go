// Package setupcmd implements the `cookbook setup` command group.
package setupcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/setup"
)

// Command implements `cookbook setup`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the setup command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "setup",
		Short: "Register the cookbook MCP server with an agent",
		RunE:  func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	c.cmd.AddCommand(
		newSetupClaudeCode(ctx),
		newSetupCursor(ctx),
		newSetupCodex(ctx),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func newSetupClaudeCode(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "claude-code",
		Short: "Register the cookbook MCP server in Claude Code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := setup.InstallClaudeCode(ResolveConfigDir(".claude", configDir, project), project, server(ctx))
			return report(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .claude directory")
	cmd.Flags().BoolVar(&project, "project", false, "Install in current project instead of globally")
	return cmd
}

func newSetupCursor(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Register the cookbook MCP server in Cursor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := setup.InstallCursor(ResolveConfigDir(".cursor", configDir, project), server(ctx))
			return report(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .cursor directory")
	cmd.Flags().BoolVar(&project, "project", false, "Install in current project instead of globally")
	return cmd
}

func newSetupCodex(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "codex",
		Short: "Register the cookbook MCP server in Codex config.toml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := setup.InstallCodex(ResolveConfigDir(".codex", configDir, project), server(ctx))
			return report(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .codex directory")
	cmd.Flags().BoolVar(&project, "project", false, "Install in current project instead of globally")
	return cmd
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// server pins the registered server to the --home flag when one was given.
func server(ctx *shared.Context) setup.Server {
	srv := setup.Server{}
	if ctx.Home != "" {
		if abs, err := filepath.Abs(ctx.Home); err == nil {
			srv.Home = abs
		}
	}
	return srv
}

func report(cmd *cobra.Command, res setup.Result, err error) error {
	if err != nil {
		return fmt.Errorf("setup: %s: %w", res.Path, err)
	}
	if res.Changed {
		fmt.Fprintf(cmd.OutOrStdout(), "Installed cookbook MCP server in %s\n", res.Path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Already installed in %s\n", res.Path)
	}
	return nil
}

// ResolveConfigDir picks the agent config directory: an explicit
// --config-dir, the current project, or the user's home.
//
//revive:disable:flag-parameter
func ResolveConfigDir(dotDir, configDir string, project bool) string {
	if configDir != "" {
		return configDir
	}
	if project {
		cwd, _ := os.Getwd()
		return filepath.Join(cwd, dotDir)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, dotDir)
}

//revive:enable:flag-parameter
