// Package cmd implements the homer command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FranckyCastell/homer/internal/config"
	"github.com/FranckyCastell/homer/internal/constants"
	"github.com/FranckyCastell/homer/internal/packer"
	"github.com/FranckyCastell/homer/internal/proc"
	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/tempdir"
	"github.com/FranckyCastell/homer/internal/terraform"
	"github.com/FranckyCastell/homer/internal/workspace"
)

var noColorFlag bool

const banner = `
██╗░░██╗░█████╗░███╗░░███╗███████╗██████╗
██║░░██║██╔══██╗████╗████║██╔════╝██╔══██╗
███████║██║░░██║██╔███╔██║█████╗░░██████╔╝
██╔══██║██╔══██║██║╚█╔╝██║██╔══╝░░██╔══██╗
██║░░██║░█████╗░██║░╚═╝░██║███████╗██║░░██║
╚═╝░░╚═╝░╚════╝░╚═╝░░░░░╚═╝╚══════╝╚═╝░░╚═╝
`

var rootCmd = &cobra.Command{
	Use:   "homer <comando> <objetivo> [opciones]",
	Short: "Herramienta de automatización para IaC con Terraform y Packer",
	Long: banner + `
HOMER-CLI: Herramienta de Automatización para IaC

Herramienta para optimizar y automatizar tareas de IaC con Terraform y Packer.
Los argumentos tras '--' se pasan sin cambios a la herramienta envuelta.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			style.SetEnabled(false)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Desactiva la salida con colores")
}

// app wires the collaborators one command run needs.
type app struct {
	root string
	cfg  config.Config
	sup  *proc.Supervisor
	tmp  *tempdir.Dir
	tf   *terraform.Terraform
	pk   *packer.Packer
}

var currentApp *app

// getApp discovers the project root and builds the shared collaborators.
// The first call also verifies the pinned terraform version.
func getApp() (*app, error) {
	if currentApp != nil {
		return currentApp, nil
	}

	root, err := workspace.FindRoot(".")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if cfg.NoColor {
		style.SetEnabled(false)
	}

	tmp, err := tempdir.New()
	if err != nil {
		return nil, err
	}
	sup := proc.NewSupervisor()
	installSignalGuard(sup, tmp)

	a := &app{
		root: root,
		cfg:  cfg,
		sup:  sup,
		tmp:  tmp,
		tf:   terraform.New(cfg.TerraformBin, sup, tmp),
		pk:   packer.New(cfg.PackerBin, sup),
	}
	currentApp = a

	if err := a.checkPinnedVersion(); err != nil {
		return nil, err
	}
	return a, nil
}

// checkPinnedVersion compares the .terraform-version pin against the
// installed binary. Probe failures only skip the check; a real mismatch
// aborts the run.
func (a *app) checkPinnedVersion() error {
	required := workspace.PinnedVersion(a.root)
	if required == "" {
		return nil
	}
	current, err := a.tf.Version(a.root)
	if err != nil {
		if errors.Is(err, proc.ErrInterrupted) {
			return err
		}
		style.PrintWarning("no se pudo determinar la versión de Terraform. Se omitirá la comprobación: %v", err)
		return nil
	}
	if current != required {
		style.PrintWarning("la versión de Terraform (%s) no es la requerida por %s (%s)", current, constants.VersionPinFile, required)
		fmt.Fprintln(os.Stderr, style.Info("Ejecute 'tfenv install' para instalar la versión correcta."))
		return fmt.Errorf("versión de Terraform incompatible: %s != %s", current, required)
	}
	return nil
}

// installSignalGuard handles interrupts that arrive outside a supervised
// call: clean up and exit with the standard interrupted status. While the
// supervisor owns a call its escalation handler takes precedence, so the
// guard stands down.
func installSignalGuard(sup *proc.Supervisor, tmp *tempdir.Dir) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range ch {
			if sup.Active() {
				continue
			}
			fmt.Fprintln(os.Stderr, style.Warning("\nScript interrumpido. Realizando limpieza..."))
			tmp.Cleanup()
			os.Exit(130)
		}
	}()
}

// Cleanup removes the process temp directory. Runs on every exit path.
func Cleanup() {
	if currentApp != nil {
		currentApp.tmp.Cleanup()
	}
}

// knownCommand reports whether name matches a registered command or alias.
func knownCommand(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return true
		}
		for _, alias := range c.Aliases {
			if alias == name {
				return true
			}
		}
	}
	return false
}

// normalizeArgs accepts both `homer plan pro` and `homer pro plan`: when
// the first positional is not a command but the second is, the two are
// swapped before dispatch.
func normalizeArgs(args []string) []string {
	if len(args) >= 2 &&
		!strings.HasPrefix(args[0], "-") && !knownCommand(args[0]) &&
		knownCommand(args[1]) {
		args = append([]string{}, args...)
		args[0], args[1] = args[1], args[0]
	}
	return args
}

// Execute runs the CLI.
func Execute() error {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	return rootCmd.Execute()
}

// splitDashArgs separates cobra positionals from the pass-through args
// given after '--'.
func splitDashArgs(cmd *cobra.Command, args []string) (positional, extra []string) {
	if i := cmd.ArgsLenAtDash(); i >= 0 {
		return args[:i], args[i:]
	}
	return args, nil
}

func first(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
