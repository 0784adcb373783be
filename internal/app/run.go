// internal/app/run.go
package app

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/scribe-editor/scribe/internal/event"
	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/runner"
	"github.com/scribe-editor/scribe/internal/tui"
)

// runResult carries the interpreter outcome from the worker goroutine back
// to the input goroutine, wrapped in a tcell interrupt event.
type runResult struct {
	result runner.Result
	err    error
}

// startRun launches the interpreter on a snapshot of the buffer. The editor
// stays responsive while the run is in flight; only one run at a time.
func (a *App) startRun() {
	if !a.runPending.CompareAndSwap(false, true) {
		a.statusBar.SetTemporaryMessage("A run is already in progress")
		return
	}

	// Snapshot the buffer now; later edits don't affect this run
	src := a.editor.GetBuffer().Bytes()
	interpreter := a.runner.Interpreter()

	a.eventManager.Dispatch(event.TypeRunStarted, event.RunStartedData{Interpreter: interpreter})
	a.statusBar.SetTemporaryMessage("Running %s... (%d bytes)", interpreter, len(src))

	go func() {
		result, err := a.runner.Run(context.Background(), src)
		// Post rather than mutate: mode state belongs to the input goroutine.
		a.tuiManager.PostEvent(tcell.NewEventInterrupt(runResult{result: result, err: err}))
	}()
}

// handleInterrupt consumes events posted by worker goroutines. Returns true
// when the event was recognized and a redraw is needed.
func (a *App) handleInterrupt(ev *tcell.EventInterrupt) bool {
	if r, ok := ev.Data().(runResult); ok {
		a.finishRun(r)
		return true
	}
	logger.Debugf("App: ignoring interrupt event with payload %T", ev.Data())
	return false
}

// finishRun consumes a run result and shows the output view.
func (a *App) finishRun(r runResult) {
	a.runPending.Store(false)

	a.eventManager.Dispatch(event.TypeRunFinished, event.RunFinishedData{
		Output:   r.result.Output,
		ExitCode: r.result.ExitCode,
		Duration: r.result.Duration,
		Err:      r.err,
	})

	if r.err != nil {
		// Interpreter missing or failed to start; nothing to show but the error
		logger.Errorf("Run failed: %v", r.err)
		a.statusBar.SetTemporaryMessage("Run failed: %v", r.err)
		return
	}

	output := r.result.Output
	if output == "" {
		output = "(no output)"
	}
	title := tui.OutputTitle(a.runner.Interpreter(), r.result.ExitCode, r.result.Duration.Milliseconds())
	a.modeHandler.EnterOutputMode(title, output)
}
