// Package tempdir manages the process-scoped temporary directory that holds
// transient plan artifacts. One directory is created per process and removed
// once at shutdown, regardless of how the run ended.
package tempdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/FranckyCastell/homer/internal/constants"
	"github.com/FranckyCastell/homer/internal/style"
)

// Dir is a process-scoped temporary directory.
type Dir struct {
	path string
}

// New creates the temporary directory.
func New() (*Dir, error) {
	path, err := os.MkdirTemp("", "homer-")
	if err != nil {
		return nil, fmt.Errorf("creando directorio temporal: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path joins filename onto the temporary directory.
func (d *Dir) Path(filename string) string {
	return filepath.Join(d.path, filename)
}

// PlanFile returns a fresh, unique path for a plan artifact. Each workflow
// invocation gets its own artifact so repeated interactive runs within one
// process never read a stale plan.
func (d *Dir) PlanFile() string {
	return d.Path(uuid.NewString() + constants.PlanFileSuffix)
}

// Cleanup removes the directory and everything in it. Failures are reported
// as a warning rather than an error: shutdown must not fail over leftovers.
func (d *Dir) Cleanup() {
	if d == nil || d.path == "" {
		return
	}
	if err := os.RemoveAll(d.path); err != nil {
		style.PrintWarning("no se pudo eliminar el directorio temporal %s: %v", d.path, err)
	}
	d.path = ""
}
