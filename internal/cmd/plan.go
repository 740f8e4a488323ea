package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/workspace"
)

var planInteractive bool

var planCmd = &cobra.Command{
	Use:     "plan <entorno> [-- args]",
	Aliases: []string{"p"},
	Short:   "Genera un plan de cambios de Terraform",
	Long: `Genera un plan de cambios de Terraform para un entorno.

Con --interactive, muestra los cambios propuestos numerados y permite
aplicar uno solo (como objetivo dirigido), todos, o cancelar.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVarP(&planInteractive, "interactive", "i", false, "Activa el modo interactivo")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
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
	if planInteractive {
		style.PrintHeader("Modo Interactivo (plan) - Entorno: " + env)
		return a.tf.InteractiveRun(envPath, "plan", extra)
	}
	style.PrintHeader("Terraform Plan - Entorno: " + env)
	return a.tf.Plan(envPath, extra)
}
