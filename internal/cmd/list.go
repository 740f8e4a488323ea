package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/workspace"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "Muestra los entornos y aplicaciones disponibles",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	fmt.Println(style.Bold("Entornos de Terraform:"))
	envs := workspace.Environments(a.root)
	if len(envs) == 0 {
		fmt.Println(style.Dim("  (ninguno)"))
	}
	for _, env := range envs {
		fmt.Printf("  %s\n", env)
	}

	fmt.Println(style.Bold("\nAplicaciones de Packer:"))
	apps := workspace.Apps(a.root)
	if len(apps) == 0 {
		fmt.Println(style.Dim("  (ninguna)"))
	}
	for _, name := range apps {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
