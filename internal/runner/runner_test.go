package runner

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunCapturesStdout(t *testing.T) {
	requireShell(t)

	// sh with no arguments reads the program from stdin, same shape as
	// piping a buffer to "python3 -".
	r := New("sh", nil)
	res, err := r.Run(context.Background(), []byte("echo hello"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.Output != "hello\n" {
		t.Errorf("Output = %q, want %q", res.Output, "hello\n")
	}
	if res.Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", res.Duration)
	}
}

func TestRunIncludesStderrInOutput(t *testing.T) {
	requireShell(t)

	r := New("sh", nil)
	res, err := r.Run(context.Background(), []byte("echo oops >&2"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Output, "oops") {
		t.Errorf("Output = %q, want stderr text included", res.Output)
	}
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	requireShell(t)

	r := New("sh", nil)
	res, err := r.Run(context.Background(), []byte("echo failing; exit 3"))
	if err != nil {
		t.Fatalf("Run returned error for non-zero exit: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if !strings.Contains(res.Output, "failing") {
		t.Errorf("Output = %q, want output before exit", res.Output)
	}
}

func TestRunMissingInterpreter(t *testing.T) {
	r := New("definitely-not-an-interpreter-9b1c", nil)
	_, err := r.Run(context.Background(), []byte("print(1)"))
	if err == nil {
		t.Fatal("Run with missing interpreter succeeded, want error")
	}
}

func TestRunCancelledContext(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := New("sh", nil)
	_, err := r.Run(ctx, []byte("sleep 5"))
	if err == nil {
		t.Fatal("Run survived context cancellation, want error")
	}
}

func TestRunPassesInterpreterArgs(t *testing.T) {
	requireShell(t)

	// -s makes sh read from stdin while still accepting positional args
	r := New("sh", []string{"-s", "world"})
	res, err := r.Run(context.Background(), []byte(`echo "hi $1"`))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Output != "hi world\n" {
		t.Errorf("Output = %q, want %q", res.Output, "hi world\n")
	}
}
