// Package terraform wraps terraform invocations behind the process
// supervisor and implements the interactive plan/apply/destroy and lock
// recovery workflows.
package terraform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FranckyCastell/homer/internal/proc"
	"github.com/FranckyCastell/homer/internal/tempdir"
)

// Runner executes a supervised command. *proc.Supervisor satisfies it;
// tests substitute fakes.
type Runner interface {
	Run(args []string, dir string, capture bool) (proc.Result, error)
}

// Terraform wraps terraform operations for one project.
type Terraform struct {
	bin string
	run Runner
	tmp *tempdir.Dir

	in  *bufio.Reader
	out io.Writer
}

// New creates a Terraform facade. Operator prompts read from stdin and
// write to stdout unless overridden with SetPrompt.
func New(bin string, runner Runner, tmp *tempdir.Dir) *Terraform {
	return &Terraform{
		bin: bin,
		run: runner,
		tmp: tmp,
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// SetPrompt redirects operator prompt input and output. Used by tests.
func (t *Terraform) SetPrompt(in io.Reader, out io.Writer) {
	t.in = bufio.NewReader(in)
	t.out = out
}

// exec runs a terraform subcommand in dir through the supervisor.
func (t *Terraform) exec(dir string, capture bool, args ...string) (proc.Result, error) {
	return t.run.Run(append([]string{t.bin}, args...), dir, capture)
}

// Init runs `terraform init` in the environment with pass-through args.
func (t *Terraform) Init(envPath string, extraArgs []string) error {
	_, err := t.exec(envPath, false, append([]string{"init"}, extraArgs...)...)
	return err
}

// EnsureInit reconfigures the backend before plan/apply/destroy runs.
func (t *Terraform) EnsureInit(envPath string) error {
	_, err := t.exec(envPath, false, "init", "-input=false", "-reconfigure")
	return err
}

// Plan runs a plain `terraform plan` with inherited streams.
func (t *Terraform) Plan(envPath string, extraArgs []string) error {
	_, err := t.exec(envPath, false, append([]string{"plan"}, extraArgs...)...)
	return err
}

// Apply runs a plain `terraform apply` with inherited streams.
func (t *Terraform) Apply(envPath string, extraArgs []string) error {
	_, err := t.exec(envPath, false, append([]string{"apply"}, extraArgs...)...)
	return err
}

// Destroy runs a plain `terraform destroy` with inherited streams.
func (t *Terraform) Destroy(envPath string, extraArgs []string) error {
	_, err := t.exec(envPath, false, append([]string{"destroy"}, extraArgs...)...)
	return err
}

// readLine prints prompt and reads one line of operator input, trimmed.
// An input error (EOF included) counts as a cancellation.
func (t *Terraform) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("entrada cancelada")
	}
	return strings.TrimSpace(line), nil
}

// confirmed reports whether the operator answered yes ("s"/"si").
func (t *Terraform) confirmed(prompt string) bool {
	answer, err := t.readLine(prompt)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "s", "si", "sí":
		return true
	}
	return false
}
