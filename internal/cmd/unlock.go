package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/workspace"
)

var unlockCmd = &cobra.Command{
	Use:     "unlock <entorno>",
	Aliases: []string{"u"},
	Short:   "Libera un 'lock' del estado de Terraform",
	Long: `Comprueba si el estado del entorno tiene un lock activo y, previa
confirmación, lo libera con force-unlock. El identificador del lock se
extrae del diagnóstico de Terraform cuando es posible; si no, se pide
manualmente.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnlock,
}

func init() {
	rootCmd.AddCommand(unlockCmd)
}

func runUnlock(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	envPath, err := workspace.ValidateEnvironment(a.root, args[0])
	if err != nil {
		return err
	}
	style.PrintHeader("Verificación de Locks - Entorno: " + args[0])
	return a.tf.Unlock(envPath)
}
