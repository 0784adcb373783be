// internal/core/editor.go
package core

import (
	"unicode/utf8"

	"github.com/scribe-editor/scribe/internal/buffer"
	"github.com/scribe-editor/scribe/internal/config"
	"github.com/scribe-editor/scribe/internal/core/history"
	"github.com/scribe-editor/scribe/internal/event"
	"github.com/scribe-editor/scribe/internal/highlight"
	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/types"
)

// Editor owns the buffer, the cursor, and the viewport. All mutations go
// through it so history recording and event dispatch stay consistent.
type Editor struct {
	buffer     buffer.Buffer
	Cursor     types.Position
	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible *visual* column (0-based) - Horizontal scroll
	viewWidth  int // Cached text area width (excluding gutter)
	viewHeight int // Cached text area height (excluding status bar)
	ScrollOff  int // Number of lines to keep visible above/below cursor

	eventManager *event.Manager
	history      *history.Manager
	clipboard    *Clipboard
	highlighter  *highlight.Highlighter
}

// NewEditor creates a new Editor instance with a given buffer.
func NewEditor(buf buffer.Buffer) *Editor {
	e := &Editor{
		buffer:    buf,
		Cursor:    types.Position{Line: 0, Col: 0},
		ViewportY: 0,
		ViewportX: 0,
		ScrollOff: config.DefaultScrollOff,
		clipboard: NewClipboard(config.SystemClipboard),
	}
	e.history = history.NewManager(e, history.DefaultMaxHistory)
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager (needed by the history manager).
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// SetHighlighter injects the syntax highlighter.
func (e *Editor) SetHighlighter(h *highlight.Highlighter) {
	e.highlighter = h
}

// Highlighter returns the configured highlighter, or nil when plain text.
func (e *Editor) Highlighter() *highlight.Highlighter {
	return e.highlighter
}

// SetClipboard replaces the clipboard, e.g. to honor the system_clipboard setting.
func (e *Editor) SetClipboard(c *Clipboard) {
	if c != nil {
		e.clipboard = c
	}
}

// SetViewSize updates the cached view dimensions. Called on resize or before drawing.
func (e *Editor) SetViewSize(width, height int) {
	changed := width != e.viewWidth || height != e.viewHeight
	e.viewWidth = width
	if height > 0 {
		e.viewHeight = height
	} else {
		e.viewHeight = 0 // No space to draw buffer
	}

	// After resize, we might need to adjust viewport/cursor
	e.ScrollToCursor()

	if changed {
		e.notifyViewportChanged()
	}
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// SetCursor sets the current cursor position, clamped to the buffer.
func (e *Editor) SetCursor(pos types.Position) {
	e.Cursor = pos     // Set temporarily
	e.MoveCursor(0, 0) // Use MoveCursor to handle clamping
	// MoveCursor already calls ScrollToCursor
}

// GetViewport returns the top visible line and leftmost visible column.
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// --- gutter.ViewState ---

// FirstVisibleLine returns the top line of the viewport.
func (e *Editor) FirstVisibleLine() int { return e.ViewportY }

// VisibleLineCount returns the height of the text area in rows.
func (e *Editor) VisibleLineCount() int { return e.viewHeight }

// LineCount returns the buffer's line count.
func (e *Editor) LineCount() int { return e.buffer.LineCount() }

// CursorLine returns the line the cursor is on.
func (e *Editor) CursorLine() int { return e.Cursor.Line }

// --- File operations ---

// LoadFile replaces the buffer contents with the given file, resetting the
// cursor, viewport, and undo history.
func (e *Editor) LoadFile(filePath string) error {
	if err := e.buffer.Load(filePath); err != nil {
		// Buffer contents are untouched on load failure
		return err
	}

	e.Cursor = types.Position{Line: 0, Col: 0}
	e.ViewportY = 0
	e.ViewportX = 0
	e.history.Clear()

	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{
			FilePath: e.buffer.FilePath(),
			Encoding: e.buffer.Encoding(),
		})
	}
	return nil
}

// SaveBuffer handles buffer saving, accepting an optional override path.
func (e *Editor) SaveBuffer(filePath ...string) error {
	savePath := ""
	if len(filePath) > 0 {
		savePath = filePath[0] // Use first provided path if given
	}
	if err := e.buffer.Save(savePath); err != nil {
		return err
	}
	// Dispatch save event with the ACTUAL path saved to
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	}
	return nil
}

// --- Undo / Redo ---

// Undo reverts the most recent edit.
func (e *Editor) Undo() (bool, error) {
	undone, err := e.history.Undo()
	if err != nil {
		logger.Warnf("Editor.Undo: %v", err)
	}
	return undone, err
}

// Redo reapplies the most recently undone edit.
func (e *Editor) Redo() (bool, error) {
	redone, err := e.history.Redo()
	if err != nil {
		logger.Warnf("Editor.Redo: %v", err)
	}
	return redone, err
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// --- Event helpers ---

func (e *Editor) notifyCursorMoved() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.Cursor})
	}
}

func (e *Editor) notifyViewportChanged() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeViewportChanged, event.ViewportChangedData{
			FirstLine: e.ViewportY,
			Height:    e.viewHeight,
			Width:     e.viewWidth,
		})
	}
}

func (e *Editor) notifyBufferModified(editInfo types.EditInfo) {
	if e.eventManager != nil && (editInfo != types.EditInfo{}) {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: editInfo})
	}
}

// --- Helper functions for rune/byte offset conversion ---

// runeIndexToByteOffset converts a rune index to a byte offset in a byte slice.
// Out-of-range indices clamp to the end of the line.
func runeIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(line) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
		currentRune++
	}
	return len(line)
}
