package terraform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FranckyCastell/homer/internal/deps"
	"github.com/FranckyCastell/homer/internal/style"
)

// InvalidSelectionError reports an out-of-range or non-numeric selection.
type InvalidSelectionError struct {
	Input string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("selección inválida: '%s'", e.Input)
}

// InteractiveRun drives the human-in-the-loop workflow for plan or
// destroy: compute the changes, show them, and re-invoke terraform with
// the operator's choice. Selection mistakes and prompt cancellations are
// reported as a cancelled operation, never returned as errors; failures
// from the supervised calls propagate.
func (t *Terraform) InteractiveRun(envPath, command string, extraArgs []string) error {
	if err := deps.Check(t.bin); err != nil {
		return err
	}

	planFile := t.tmp.PlanFile()
	changes, err := t.Changes(envPath, command == "destroy", planFile, extraArgs)
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		fmt.Fprintln(t.out, style.Success("El plan no contiene cambios. No hay nada que hacer."))
		return nil
	}

	t.displayChanges(changes)
	return t.promptSelection(envPath, command, planFile, changes, extraArgs)
}

// displayChanges prints the numbered change list. Coloring is purely
// presentational: red for deletes, green for creates, yellow otherwise.
func (t *Terraform) displayChanges(changes []ResourceChange) {
	fmt.Fprintln(t.out, "\nCambios de recursos propuestos:")
	for i, change := range changes {
		line := fmt.Sprintf("%s (%s)", change.Address, change.ActionList())
		switch {
		case change.IsDestructive():
			line = style.Error(line)
		case change.IsAdditive():
			line = style.Success(line)
		default:
			line = style.Warning(line)
		}
		fmt.Fprintf(t.out, "  %2d) %s\n", i+1, line)
	}
}

func (t *Terraform) promptSelection(envPath, command, planFile string, changes []ResourceChange, extraArgs []string) error {
	choice, err := t.readLine(fmt.Sprintf("\nElige un recurso (1-%d), 't' para todos, o 'c' para cancelar: ", len(changes)))
	if err != nil {
		t.reportCancelled(err)
		return nil
	}
	choice = strings.ToLower(choice)

	switch choice {
	case "c", "cancelar":
		return nil
	}

	followUp := "apply"
	if command == "destroy" {
		followUp = "destroy"
	}

	// "Todos" reuses the plan artifact: the operator already saw every
	// change, so no further confirmation is asked.
	switch choice {
	case "t", "todos":
		_, err := t.exec(envPath, false, followUp, "-auto-approve", planFile)
		return err
	}

	index, convErr := strconv.Atoi(choice)
	if convErr != nil || index < 1 || index > len(changes) {
		t.reportCancelled(&InvalidSelectionError{Input: choice})
		return nil
	}

	// A single target runs as a fresh targeted command with the original
	// extra args; the saved plan covers more resources than the operator
	// picked, so it is not reused here.
	target := "-target=" + changes[index-1].Address
	if !t.confirmed(fmt.Sprintf("¿Confirmas la operación '%s' para el recurso seleccionado? (s/N): ", followUp)) {
		return nil
	}
	args := append([]string{followUp, "-auto-approve", target}, extraArgs...)
	_, err = t.exec(envPath, false, args...)
	return err
}

func (t *Terraform) reportCancelled(reason error) {
	fmt.Fprintln(t.out, style.Error(fmt.Sprintf("\nOperación cancelada. %v", reason)))
}
