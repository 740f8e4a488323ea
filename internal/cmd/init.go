package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init <entorno> [-- args]",
	Short: "Inicializa el backend de Terraform en un entorno",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
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
	style.PrintHeader("Terraform Init - Entorno: " + env)
	return a.tf.Init(envPath, extra)
}
