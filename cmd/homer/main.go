package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/FranckyCastell/homer/internal/cmd"
	"github.com/FranckyCastell/homer/internal/proc"
	"github.com/FranckyCastell/homer/internal/style"
	"github.com/FranckyCastell/homer/internal/workspace"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer cmd.Cleanup()

	if err := cmd.Execute(); err != nil {
		return report(err)
	}
	fmt.Printf("\n%s %s %s\n\n", rule(), style.Success("Operación completada con éxito"), rule())
	return 0
}

// report prints err and maps it to the process exit status: 130 for an
// operator interrupt, 1 for everything else.
func report(err error) int {
	if errors.Is(err, proc.ErrInterrupted) {
		return 130
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix(), err)

	var cmdErr *proc.CommandError
	if errors.As(err, &cmdErr) {
		if out := strings.TrimSpace(cmdErr.Stdout); out != "" {
			fmt.Printf("%s\n%s\n", style.Error("--- STDOUT ---"), out)
		}
		if out := strings.TrimSpace(cmdErr.Stderr); out != "" {
			fmt.Printf("%s\n%s\n", style.Error("--- STDERR ---"), out)
		}
	}

	if errors.Is(err, workspace.ErrNoProject) {
		fmt.Fprintln(os.Stderr, style.Info("Asegúrese de estar en un directorio de proyecto válido o en uno de sus subdirectorios."))
		fmt.Fprintln(os.Stderr, style.Info("Para ver la ayuda en cualquier momento, ejecute: homer -h"))
	}

	fmt.Printf("\n%s %s %s\n\n", rule(), style.Error("La operación falló"), rule())
	return 1
}

func rule() string {
	return strings.Repeat("=", 20)
}
