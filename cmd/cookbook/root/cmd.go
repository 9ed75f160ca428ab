// Package rootcmd wires the root cobra.Command for the cookbook CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	addcmd "github.com/go-ports/cookbook/cmd/cookbook/add"
	categoriescmd "github.com/go-ports/cookbook/cmd/cookbook/categories"
	configcmd "github.com/go-ports/cookbook/cmd/cookbook/config"
	deletecmd "github.com/go-ports/cookbook/cmd/cookbook/delete"
	editcmd "github.com/go-ports/cookbook/cmd/cookbook/edit"
	exportcmd "github.com/go-ports/cookbook/cmd/cookbook/export"
	initcmd "github.com/go-ports/cookbook/cmd/cookbook/init"
	listcmd "github.com/go-ports/cookbook/cmd/cookbook/list"
	mcpcmd "github.com/go-ports/cookbook/cmd/cookbook/mcp"
	menucmd "github.com/go-ports/cookbook/cmd/cookbook/menu"
	setupcmd "github.com/go-ports/cookbook/cmd/cookbook/setup"
	"github.com/go-ports/cookbook/cmd/cookbook/shared"
	suggestcmd "github.com/go-ports/cookbook/cmd/cookbook/suggest"
	uninstallcmd "github.com/go-ports/cookbook/cmd/cookbook/uninstall"
	versioncmd "github.com/go-ports/cookbook/cmd/cookbook/version"
	viewcmd "github.com/go-ports/cookbook/cmd/cookbook/view"
)

// New creates and returns the root cobra.Command for the cookbook CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "cookbook",
		Short:         "Cookbook: a small vegan recipe catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(
		&ctx.Home, "home", "",
		"Override cookbook home directory (default: $COOKBOOK_HOME env → persisted config → ~/.cookbook)",
	)

	root.AddCommand(
		initcmd.New(ctx).Cmd(),
		menucmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		categoriescmd.New(ctx).Cmd(),
		viewcmd.New(ctx).Cmd(),
		addcmd.New(ctx).Cmd(),
		editcmd.New(ctx).Cmd(),
		deletecmd.New(ctx).Cmd(),
		suggestcmd.New(ctx).Cmd(),
		exportcmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		setupcmd.New(ctx).Cmd(),
		uninstallcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
		versioncmd.New(ctx).Cmd(),
	)

	return root
}
