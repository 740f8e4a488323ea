package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/workspace"
)

var applyCmd = &cobra.Command{
	Use:     "apply <entorno> [-- args]",
	Aliases: []string{"a"},
	Short:   "Aplica los cambios de un plan de Terraform",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	positional, extra := splitDashArgs(cmd, args)
	env := first(positional)
	envPath, err := workspace.ValidateEnvironment(a.root, env)
	if err != nil {
		return err
	}
	if err := a.tf.EnsureInit(envPath); err != nil {
		return err
	}
	style.PrintHeader("Terraform Apply - Entorno: " + env)
	return a.tf.Apply(envPath, extra)
}
