package core

import (
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/types"
)

// Clipboard wraps the system clipboard with an internal register fallback.
// Headless environments (no X11/Wayland) fall back transparently.
type Clipboard struct {
	useSystem bool
	register  []byte
}

// NewClipboard creates a clipboard. With useSystem false only the internal
// register is used.
func NewClipboard(useSystem bool) *Clipboard {
	return &Clipboard{useSystem: useSystem}
}

// Write stores data in the clipboard. The internal register is always
// updated so a failed system write still allows paste within the editor.
func (c *Clipboard) Write(data []byte) {
	c.register = append(c.register[:0], data...)
	if c.useSystem {
		if err := clipboard.WriteAll(string(data)); err != nil {
			logger.DebugTagf("clipboard", "System clipboard write failed: %v", err)
		}
	}
}

// Read returns the clipboard contents, preferring the system clipboard.
func (c *Clipboard) Read() []byte {
	if c.useSystem {
		s, err := clipboard.ReadAll()
		if err == nil {
			return []byte(s)
		}
		logger.DebugTagf("clipboard", "System clipboard read failed: %v", err)
	}
	return append([]byte(nil), c.register...)
}

// CopyLine copies the current line (with its newline) to the clipboard.
func (e *Editor) CopyLine() error {
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		return err
	}
	text := make([]byte, 0, len(lineBytes)+1)
	text = append(text, lineBytes...)
	text = append(text, '\n')
	e.clipboard.Write(text)
	return nil
}

// CutLine copies the current line to the clipboard and removes it.
func (e *Editor) CutLine() error {
	if err := e.CopyLine(); err != nil {
		return err
	}

	line := e.Cursor.Line
	start := types.Position{Line: line, Col: 0}
	var end types.Position
	if line < e.buffer.LineCount()-1 {
		end = types.Position{Line: line + 1, Col: 0}
	} else {
		// Last line has no trailing newline to remove
		lineBytes, err := e.buffer.Line(line)
		if err != nil {
			return err
		}
		end = types.Position{Line: line, Col: utf8.RuneCount(lineBytes)}
		if start == end {
			return nil // Empty last line, nothing to cut
		}
	}

	return e.deleteRange(start, end)
}

// Paste inserts the clipboard contents at the cursor. Returns true if
// anything was pasted.
func (e *Editor) Paste() (bool, error) {
	text := e.clipboard.Read()
	if len(text) == 0 {
		return false, nil
	}
	if err := e.insertText(text); err != nil {
		return false, err
	}
	return true, nil
}
