package packer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/FranckyCastell/homer/internal/proc"
)

type fakeRunner struct {
	calls [][]string
	errs  []error
}

func (f *fakeRunner) Run(args []string, dir string, capture bool) (proc.Result, error) {
	f.calls = append(f.calls, args)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return proc.Result{}, err
	}
	return proc.Result{}, nil
}

func TestBuildRunsInitThenBuild(t *testing.T) {
	run := &fakeRunner{}
	p := New("packer", run)

	if err := p.Build("/proyecto/amis/web", []string{"-var", "x=1"}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := [][]string{
		{"packer", "init", "."},
		{"packer", "build", "-var", "x=1", "."},
	}
	if !reflect.DeepEqual(run.calls, want) {
		t.Errorf("calls = %v, want %v", run.calls, want)
	}
}

func TestBuildStopsOnInitFailure(t *testing.T) {
	boom := &proc.CommandError{Args: []string{"packer", "init", "."}, ExitCode: 1}
	run := &fakeRunner{errs: []error{boom}}
	p := New("packer", run)

	err := p.Build("/proyecto/amis/web", nil)
	var cmdErr *proc.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error = %v, want *proc.CommandError", err)
	}
	if len(run.calls) != 1 {
		t.Errorf("calls = %d after init failure, want 1", len(run.calls))
	}
}
