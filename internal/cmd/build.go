package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/workspace"
)

var buildCmd = &cobra.Command{
	Use:     "build <app> [-- args]",
	Aliases: []string{"b"},
	Short:   "Construye una imagen de Packer para una aplicación",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	positional, extra := splitDashArgs(cmd, args)
	appName := first(positional)
	appPath, err := workspace.ValidateApp(a.root, appName)
	if err != nil {
		return err
	}
	style.PrintHeader("Packer Build - App: " + appName)
	return a.pk.Build(appPath, extra)
}
