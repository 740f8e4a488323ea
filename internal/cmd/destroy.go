package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/workspace"
)

var destroyInteractive bool

var destroyCmd = &cobra.Command{
	Use:     "destroy <entorno> [-- args]",
	Aliases: []string{"d"},
	Short:   "Destruye la infraestructura de un entorno",
	Long: `Destruye la infraestructura gestionada de un entorno.

Con --interactive, muestra los recursos a destruir numerados y permite
destruir uno solo (como objetivo dirigido), todos, o cancelar.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDestroy,
}

func init() {
	destroyCmd.Flags().BoolVarP(&destroyInteractive, "interactive", "i", false, "Activa el modo interactivo")
	rootCmd.AddCommand(destroyCmd)
}

func runDestroy(cmd *cobra.Command, args []string) error {
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
	if destroyInteractive {
		style.PrintHeader("Modo Interactivo (destroy) - Entorno: " + env)
		return a.tf.InteractiveRun(envPath, "destroy", extra)
	}
	style.PrintHeader("Terraform Destroy - Entorno: " + env)
	return a.tf.Destroy(envPath, extra)
}
