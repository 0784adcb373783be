// internal/event/event.go
package event

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/scribe-editor/scribe/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Editor Events
	TypeBufferModified  // Fired when buffer content changes (insert/delete)
	TypeBufferLoaded    // Fired after a buffer is successfully loaded
	TypeBufferSaved     // Fired after a buffer is successfully saved
	TypeCursorMoved     // Fired when the cursor position changes
	TypeViewportChanged // Fired when scroll position or view size changes

	// Runner Events
	TypeRunStarted  // Fired when a buffer run begins
	TypeRunFinished // Fired when the interpreter process exits

	// Input Events
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// BufferModifiedData contains info about buffer changes.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
	Encoding string // "utf-8" or "latin-1", whichever decode succeeded
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ViewportChangedData contains the new viewport origin and size.
type ViewportChangedData struct {
	FirstLine int
	Height    int
	Width     int
}

// RunStartedData identifies the interpreter invocation that began.
type RunStartedData struct {
	Interpreter string
}

// RunFinishedData carries the captured result of a buffer run.
// Output holds interleaved stdout and stderr regardless of exit code.
type RunFinishedData struct {
	Output   string
	ExitCode int
	Duration time.Duration
	Err      error // Non-nil only when the process could not be started
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
