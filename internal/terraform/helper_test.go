package terraform

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/FranckyCastell/homer/internal/proc"
	"github.com/FranckyCastell/homer/internal/tempdir"
)

// recordedCall is one invocation that reached the fake runner.
type recordedCall struct {
	Args    []string
	Dir     string
	Capture bool
}

// fakeRunner scripts supervised-call outcomes and records every call.
// Outcomes are matched by the terraform subcommand (args[1]).
type fakeRunner struct {
	calls    []recordedCall
	outcomes map[string]fakeOutcome
}

type fakeOutcome struct {
	res proc.Result
	err error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{outcomes: make(map[string]fakeOutcome)}
}

func (f *fakeRunner) on(subcommand string, res proc.Result, err error) {
	f.outcomes[subcommand] = fakeOutcome{res: res, err: err}
}

func (f *fakeRunner) Run(args []string, dir string, capture bool) (proc.Result, error) {
	f.calls = append(f.calls, recordedCall{Args: args, Dir: dir, Capture: capture})
	if len(args) >= 2 {
		if outcome, ok := f.outcomes[args[1]]; ok {
			return outcome.res, outcome.err
		}
	}
	return proc.Result{}, nil
}

// followUps returns the calls recorded after the plan+show pair.
func (f *fakeRunner) followUps() []recordedCall {
	var out []recordedCall
	for _, call := range f.calls {
		if len(call.Args) < 2 {
			continue
		}
		switch call.Args[1] {
		case "plan", "show":
			continue
		}
		out = append(out, call)
	}
	return out
}

func hasArg(call recordedCall, want string) bool {
	for _, a := range call.Args {
		if a == want {
			return true
		}
	}
	return false
}

// newTestTerraform builds a Terraform facade over the fake runner with
// scripted operator input and a buffered output for assertions.
func newTestTerraform(t *testing.T, run *fakeRunner, input string) (*Terraform, *bytes.Buffer) {
	t.Helper()
	tmp, err := tempdir.New()
	if err != nil {
		t.Fatalf("tempdir.New: %v", err)
	}
	t.Cleanup(tmp.Cleanup)

	// "sh" keeps the LookPath pre-flight green without requiring a real
	// terraform install; the fake runner intercepts every call anyway.
	tf := New("sh", run, tmp)
	out := &bytes.Buffer{}
	tf.SetPrompt(strings.NewReader(input), out)
	return tf, out
}

// planJSON builds a show -json payload from (address, actions...) pairs.
func planJSON(entries ...[2]string) string {
	var parts []string
	for _, e := range entries {
		actions := `"` + strings.ReplaceAll(e[1], ",", `","`) + `"`
		parts = append(parts, fmt.Sprintf(`{"address":%q,"change":{"actions":[%s]}}`, e[0], actions))
	}
	return `{"resource_changes":[` + strings.Join(parts, ",") + `]}`
}
