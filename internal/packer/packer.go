// Package packer wraps packer image builds behind the process supervisor,
// so the interrupt escalation protocol covers builds too.
package packer

import (
	"github.com/FranckyCastell/homer/internal/proc"
)

// Runner executes a supervised command. *proc.Supervisor satisfies it.
type Runner interface {
	Run(args []string, dir string, capture bool) (proc.Result, error)
}

// Packer wraps packer operations.
type Packer struct {
	bin string
	run Runner
}

// New creates a Packer facade.
func New(bin string, runner Runner) *Packer {
	return &Packer{bin: bin, run: runner}
}

func (p *Packer) exec(dir string, args ...string) error {
	_, err := p.run.Run(append([]string{p.bin}, args...), dir, false)
	return err
}

// Build initializes the application directory and builds the image with
// pass-through args.
func (p *Packer) Build(appPath string, extraArgs []string) error {
	if err := p.exec(appPath, "init", "."); err != nil {
		return err
	}
	args := append([]string{"build"}, extraArgs...)
	args = append(args, ".")
	return p.exec(appPath, args...)
}
