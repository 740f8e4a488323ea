// Package deps checks for required external executables.
package deps

import (
	"os/exec"
	"strings"
)

// MissingError names the executables that could not be found on PATH.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return "dependencias requeridas no encontradas: " + strings.Join(e.Names, ", ")
}

// Check verifies that every named executable is present on PATH.
// Returns a *MissingError listing all absent names.
func Check(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Names: missing}
	}
	return nil
}
