// Package proc runs external commands under a signal-escalation supervisor.
//
// The supervisor owns interrupt handling for the duration of each call: the
// first Ctrl-C asks the child's process group to shut down cleanly, the
// second kills it outright. Outside a supervised call, signals fall through
// to whatever handler the rest of the process installed.
package proc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/FranckyCastell/homer/internal/style"
)

// ErrInterrupted is returned when one or more interrupt signals arrived
// while a supervised command was running. It overrides the child's own
// exit code.
var ErrInterrupted = errors.New("proceso interrumpido por el usuario")

// CommandError reports a supervised command that exited non-zero without
// being interrupted. Stdout and Stderr are empty unless the call captured
// output.
type CommandError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("el comando `%s` falló (código de salida %d)", strings.Join(e.Args, " "), e.ExitCode)
}

// Result holds the outcome of a supervised command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supervisor runs one external command at a time. It is not designed for
// concurrent overlapping calls from the same instance: the interrupt
// counter and the current-process reference only make sense for a single
// in-flight command. Callers that need parallelism should use one
// Supervisor per command stream.
type Supervisor struct {
	mu         sync.Mutex
	current    *os.Process
	exited     bool
	interrupts int
	active     bool

	// Notices receives operator-facing interrupt messages.
	// Defaults to os.Stderr.
	Notices io.Writer
}

// NewSupervisor returns a Supervisor that writes notices to stderr.
func NewSupervisor() *Supervisor {
	return &Supervisor{Notices: os.Stderr}
}

// Active reports whether a supervised command is currently in flight.
// The process-wide signal guard uses it to stand down while the
// supervisor owns interrupt handling.
func (s *Supervisor) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Run executes args in dir and blocks until the child exits. The child
// heads its own process group so interrupts reach its whole subtree.
// With capture true, stdout and stderr are buffered into the Result;
// otherwise the child inherits the controlling terminal.
//
// One or more interrupts during the call produce ErrInterrupted regardless
// of the exit code. A clean run with non-zero exit produces *CommandError.
func (s *Supervisor) Run(args []string, dir string, capture bool) (Result, error) {
	if len(args) == 0 {
		return Result{}, errors.New("vector de argumentos vacío")
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	s.mu.Lock()
	s.interrupts = 0
	s.exited = false
	s.active = true
	s.mu.Unlock()

	sigCh := make(chan os.Signal, 4)
	done := make(chan struct{})
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		for {
			select {
			case <-sigCh:
				s.interrupt()
			case <-done:
				return
			}
		}
	}()

	// Signal ownership is released on every exit path, including error
	// returns below: Stop detaches the channel and the goroutine drains.
	defer func() {
		signal.Stop(sigCh)
		close(done)
		s.mu.Lock()
		s.current = nil
		s.active = false
		s.mu.Unlock()
	}()

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("lanzando `%s`: %w", strings.Join(args, " "), err)
	}

	s.mu.Lock()
	s.current = cmd.Process
	s.mu.Unlock()

	waitErr := cmd.Wait()

	s.mu.Lock()
	s.exited = true
	interrupted := s.interrupts > 0
	s.mu.Unlock()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return res, fmt.Errorf("esperando `%s`: %w", strings.Join(args, " "), waitErr)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	if interrupted {
		return res, ErrInterrupted
	}
	if res.ExitCode != 0 {
		return res, &CommandError{
			Args:     args,
			ExitCode: res.ExitCode,
			Stdout:   res.Stdout,
			Stderr:   res.Stderr,
		}
	}
	return res, nil
}

// interrupt records one interrupt signal and escalates accordingly.
// Safe to call when no child is active or after the child exited: both
// are no-ops beyond counting.
func (s *Supervisor) interrupt() {
	s.mu.Lock()
	s.interrupts++
	count := s.interrupts
	proc := s.current
	gone := s.exited
	s.mu.Unlock()

	if proc == nil || gone {
		return
	}

	if count == 1 {
		fmt.Fprintln(s.notices(), style.Warning("\nInterrupción detectada. Enviando señal al proceso para un cierre seguro..."))
		signalGroup(proc.Pid, syscall.SIGINT)
	} else {
		fmt.Fprintln(s.notices(), style.Error("\nForzando terminación inmediata..."))
		signalGroup(proc.Pid, syscall.SIGKILL)
	}
}

func (s *Supervisor) notices() io.Writer {
	if s.Notices != nil {
		return s.Notices
	}
	return os.Stderr
}

// signalGroup delivers sig to the child's whole process group, falling
// back to the single process when group lookup fails. "Process already
// gone" errors are swallowed.
func signalGroup(pid int, sig syscall.Signal) {
	if pgid, err := syscall.Getpgid(pid); err == nil {
		_ = syscall.Kill(-pgid, sig)
		return
	}
	_ = syscall.Kill(pid, sig)
}
