package terraform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/FranckyCastell/homer/internal/proc"
	"github.com/FranckyCastell/homer/internal/style"
)

// lockErrorMarker is the diagnostic text terraform emits when the state
// lock is held.
const lockErrorMarker = "Error acquiring the state lock"

// lockIDPattern extracts the lock identifier from the diagnostic text:
// a hex-and-hyphen token following an "ID:" label.
var lockIDPattern = regexp.MustCompile(`ID:\s*([a-f0-9-]+)`)

// ExtractLockID returns the lock identifier found in diagnostic text, or
// "" when no match exists. A missing match is not an error: the operator
// can supply the identifier manually.
func ExtractLockID(text string) string {
	if m := lockIDPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// Unlock probes the environment for an active state lock and, with
// operator confirmation, force-unlocks it. A probe failure unrelated to
// locking is reported verbatim and left alone.
func (t *Terraform) Unlock(envPath string) error {
	_, err := t.exec(envPath, true, "plan", "-input=false")
	if err == nil {
		fmt.Fprintln(t.out, style.Success("No se detectaron locks activos."))
		return nil
	}

	var cmdErr *proc.CommandError
	if !errors.As(err, &cmdErr) {
		return err
	}

	if !strings.Contains(cmdErr.Stderr, lockErrorMarker) {
		fmt.Fprintln(t.out, style.Error("Error inesperado al comprobar los locks:"))
		fmt.Fprintln(t.out, cmdErr.Stderr)
		return nil
	}

	fmt.Fprintln(t.out, style.Warning("Se ha detectado un lock de Terraform."))
	lockID := ExtractLockID(cmdErr.Stderr)
	if lockID != "" {
		fmt.Fprintf(t.out, "  - Lock ID: %s\n", lockID)
	}

	if !t.confirmed("¿Forzar desbloqueo? (s/N): ") {
		return nil
	}

	if lockID == "" {
		manual, err := t.readLine("Introduce el Lock ID manualmente: ")
		if err != nil || manual == "" {
			// An empty identifier is treated like a decline: the intent
			// is ambiguous, so nothing is forced.
			return nil
		}
		lockID = manual
	}

	if _, err := t.exec(envPath, false, "force-unlock", "-force", lockID); err != nil {
		return err
	}
	fmt.Fprintln(t.out, style.Success("Lock liberado."))
	return nil
}
