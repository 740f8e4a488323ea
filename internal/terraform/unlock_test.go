package terraform

import (
	"strings"
	"testing"

	"github.com/FranckyCastell/homer/internal/proc"
)

const lockedStderr = `Error: Error acquiring the state lock

Lock Info:
  ID:        abcd1234-ef00-4a1b-9c2d-0123456789ab
  Path:      estados/pro/terraform.tfstate
  Operation: OperationTypePlan
`

func TestExtractLockID(t *testing.T) {
	if got := ExtractLockID(lockedStderr); got != "abcd1234-ef00-4a1b-9c2d-0123456789ab" {
		t.Errorf("ExtractLockID = %q", got)
	}
}

func TestExtractLockIDAbsent(t *testing.T) {
	if got := ExtractLockID("Error acquiring the state lock, sin identificador"); got != "" {
		t.Errorf("ExtractLockID = %q, want empty", got)
	}
}

func TestUnlockNoActiveLock(t *testing.T) {
	run := newFakeRunner()
	tf, out := newTestTerraform(t, run, "")

	if err := tf.Unlock("/env"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if len(run.calls) != 1 {
		t.Errorf("calls = %d, want 1 (probe only)", len(run.calls))
	}
	if !run.calls[0].Capture {
		t.Error("probe must capture output to inspect diagnostics")
	}
	if !strings.Contains(out.String(), "No se detectaron locks activos") {
		t.Errorf("missing no-lock notice in %q", out.String())
	}
}

func TestUnlockConfirmedWithExtractedID(t *testing.T) {
	run := newFakeRunner()
	run.on("plan", proc.Result{}, &proc.CommandError{ExitCode: 1, Stderr: lockedStderr})
	tf, out := newTestTerraform(t, run, "s\n")

	if err := tf.Unlock("/env"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if len(run.calls) != 2 {
		t.Fatalf("calls = %d, want probe + force-unlock", len(run.calls))
	}
	unlock := run.calls[1]
	for _, want := range []string{"force-unlock", "-force", "abcd1234-ef00-4a1b-9c2d-0123456789ab"} {
		if !hasArg(unlock, want) {
			t.Errorf("force-unlock missing %q: %v", want, unlock.Args)
		}
	}
	if !strings.Contains(out.String(), "Lock ID: abcd1234-ef00-4a1b-9c2d-0123456789ab") {
		t.Errorf("extracted ID not shown in %q", out.String())
	}
}

func TestUnlockDeclined(t *testing.T) {
	run := newFakeRunner()
	run.on("plan", proc.Result{}, &proc.CommandError{ExitCode: 1, Stderr: lockedStderr})
	tf, _ := newTestTerraform(t, run, "n\n")

	if err := tf.Unlock("/env"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if len(run.calls) != 1 {
		t.Errorf("calls = %d after decline, want 1", len(run.calls))
	}
}

func TestUnlockManualID(t *testing.T) {
	stderr := "Error acquiring the state lock: detalle sin identificador"
	run := newFakeRunner()
	run.on("plan", proc.Result{}, &proc.CommandError{ExitCode: 1, Stderr: stderr})
	tf, _ := newTestTerraform(t, run, "s\nffff-0000\n")

	if err := tf.Unlock("/env"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if len(run.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(run.calls))
	}
	if !hasArg(run.calls[1], "ffff-0000") {
		t.Errorf("manual ID not used: %v", run.calls[1].Args)
	}
}

func TestUnlockManualIDEmptyDoesNothing(t *testing.T) {
	stderr := "Error acquiring the state lock: detalle sin identificador"
	run := newFakeRunner()
	run.on("plan", proc.Result{}, &proc.CommandError{ExitCode: 1, Stderr: stderr})
	// Confirms the unlock but supplies an empty ID: treated as a decline.
	tf, _ := newTestTerraform(t, run, "s\n\n")

	if err := tf.Unlock("/env"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if len(run.calls) != 1 {
		t.Errorf("calls = %d with empty manual ID, want 1", len(run.calls))
	}
}

func TestUnlockUnrelatedFailureReportedVerbatim(t *testing.T) {
	run := newFakeRunner()
	run.on("plan", proc.Result{}, &proc.CommandError{ExitCode: 1, Stderr: "Error: backend no inicializado"})
	tf, out := newTestTerraform(t, run, "")

	if err := tf.Unlock("/env"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if len(run.calls) != 1 {
		t.Errorf("calls = %d, want 1 (no unlock attempt)", len(run.calls))
	}
	if !strings.Contains(out.String(), "Error: backend no inicializado") {
		t.Errorf("probe stderr not reported verbatim in %q", out.String())
	}
}

func TestUnlockInterruptedProbePropagates(t *testing.T) {
	run := newFakeRunner()
	run.on("plan", proc.Result{}, proc.ErrInterrupted)
	tf, _ := newTestTerraform(t, run, "")

	if err := tf.Unlock("/env"); err != proc.ErrInterrupted {
		t.Fatalf("error = %v, want ErrInterrupted unchanged", err)
	}
}
