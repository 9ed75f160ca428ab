// Package configcmd implements the `cookbook config` command group.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	"github.com/go-ports/cookbook/internal/config"
)

const configTemplate = `# Cookbook configuration

# Where recipes are saved. Relative paths resolve against the cookbook home.
# Use a .db, .sqlite or .sqlite3 extension to store recipes in SQLite.
data_file: recipes.json

# Add the two sample recipes when no data file exists yet.
seed_samples: true

# Interactive menu text.
menu:
  banner: Welcome to the Vegan Cooking App!
  farewell: Thanks for cooking vegan! See you next time!
`

// Command implements `cookbook config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		RunE:  c.runShow,
	}
	c.cmd.AddCommand(
		newConfigInit(ctx),
		newSetHome(),
		newClearHome(),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	home, source := c.ctx.ResolveHome()
	cfg, err := config.Load(filepath.Join(home, config.FileName))
	if err != nil {
		return err
	}
	data := map[string]any{
		"data_file":    cfg.DataFile,
		"data_path":    cfg.DataPath(home),
		"seed_samples": cfg.SeedSamples,
		"menu": map[string]any{
			"banner":   cfg.Menu.Banner,
			"farewell": cfg.Menu.Farewell,
		},
		"cookbook_home":        home,
		"cookbook_home_source": source,
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config init
// ---------------------------------------------------------------------------

func newConfigInit(ctx *shared.Context) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a starter config.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, _ := ctx.ResolveHome()
			cfgPath := filepath.Join(home, config.FileName)
			out := cmd.OutOrStdout()
			if _, err := os.Stat(cfgPath); err == nil && !force {
				fmt.Fprintf(out, "Config already exists at %s\n", cfgPath)
				fmt.Fprintln(out, "Use --force to overwrite.")
				return nil
			}
			if err := os.MkdirAll(home, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(cfgPath, []byte(configTemplate), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s\n", cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config")
	return cmd
}

// ---------------------------------------------------------------------------
// config set-home
// ---------------------------------------------------------------------------

func newSetHome() *cobra.Command {
	return &cobra.Command{
		Use:   "set-home <path>",
		Short: "Persist cookbook home location (used when COOKBOOK_HOME is unset)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := config.SetPersistedHome(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(resolved, 0o755); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Persisted cookbook home: %s\n", resolved)
			fmt.Fprintf(out, "Override anytime with %s.\n", config.HomeEnv)
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// config clear-home
// ---------------------------------------------------------------------------

func newClearHome() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-home",
		Short: "Remove persisted cookbook home location from global config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			changed, err := config.ClearPersistedHome()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if changed {
				fmt.Fprintln(out, "Cleared persisted cookbook home setting.")
			} else {
				fmt.Fprintln(out, "No persisted cookbook home setting was found.")
			}
			return nil
		},
	}
}
