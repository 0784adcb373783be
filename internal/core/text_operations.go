package core

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/scribe-editor/scribe/internal/core/history"
	"github.com/scribe-editor/scribe/internal/types"
)

// InsertRune inserts a single rune at the cursor and records it for undo.
func (e *Editor) InsertRune(r rune) error {
	runeBytes := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(runeBytes, r)
	return e.insertText(runeBytes)
}

// InsertNewLine inserts a newline and scrolls.
func (e *Editor) InsertNewLine() error {
	return e.InsertRune('\n')
}

// InsertTab inserts a literal tab character; expansion happens at draw time.
func (e *Editor) InsertTab() error {
	return e.InsertRune('\t')
}

// insertText inserts arbitrary text at the cursor, recording history and
// dispatching the modification event. The cursor lands after the insertion.
func (e *Editor) insertText(text []byte) error {
	if len(text) == 0 {
		return nil
	}

	cursorBefore := e.Cursor
	editInfo, err := e.buffer.Insert(cursorBefore, text)
	if err != nil {
		return fmt.Errorf("buffer insert failed: %w", err)
	}

	e.history.RecordChange(history.Change{
		Type:          history.InsertAction,
		Text:          append([]byte(nil), text...),
		StartPosition: cursorBefore,
		EndPosition:   editInfo.NewEnd,
		CursorBefore:  cursorBefore,
	})

	e.Cursor = editInfo.NewEnd
	e.ScrollToCursor()
	e.notifyBufferModified(editInfo)
	return nil
}

// DeleteBackward deletes the rune before the cursor, joining lines at BOL.
func (e *Editor) DeleteBackward() error {
	start := e.Cursor
	end := e.Cursor

	if e.Cursor.Col > 0 {
		start.Col--
	} else if e.Cursor.Line > 0 {
		start.Line--
		prevLineBytes, err := e.buffer.Line(start.Line)
		if err != nil {
			return fmt.Errorf("cannot get previous line %d: %w", start.Line, err)
		}
		start.Col = utf8.RuneCount(prevLineBytes)
	} else {
		return nil // At start of buffer
	}

	return e.deleteRange(start, end)
}

// DeleteForward deletes the rune under the cursor, joining lines at EOL.
func (e *Editor) DeleteForward() error {
	start := e.Cursor
	end := e.Cursor

	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		return fmt.Errorf("cannot get current line %d: %w", e.Cursor.Line, err)
	}
	lineRuneCount := utf8.RuneCount(lineBytes)

	if e.Cursor.Col < lineRuneCount {
		end.Col++
	} else if e.Cursor.Line < e.buffer.LineCount()-1 {
		end.Line++
		end.Col = 0
	} else {
		return nil // At end of buffer
	}

	return e.deleteRange(start, end)
}

// deleteRange removes [start, end), recording the removed text for undo.
// The cursor lands at 'start'.
func (e *Editor) deleteRange(start, end types.Position) error {
	deletedText, err := e.textInRange(start, end)
	if err != nil {
		return fmt.Errorf("cannot read range for delete: %w", err)
	}

	cursorBefore := e.Cursor
	editInfo, err := e.buffer.Delete(start, end)
	if err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}

	e.history.RecordChange(history.Change{
		Type:          history.DeleteAction,
		Text:          deletedText,
		StartPosition: start,
		EndPosition:   end,
		CursorBefore:  cursorBefore,
	})

	e.Cursor = start
	e.ScrollToCursor()
	e.notifyBufferModified(editInfo)
	return nil
}

// textInRange extracts the text between two positions, newline-joined.
// Positions are rune indices; out-of-range columns clamp to line ends.
func (e *Editor) textInRange(start, end types.Position) ([]byte, error) {
	if start.Line == end.Line {
		lineBytes, err := e.buffer.Line(start.Line)
		if err != nil {
			return nil, err
		}
		startByte := runeIndexToByteOffset(lineBytes, start.Col)
		endByte := runeIndexToByteOffset(lineBytes, end.Col)
		if startByte > endByte {
			startByte, endByte = endByte, startByte
		}
		return append([]byte(nil), lineBytes[startByte:endByte]...), nil
	}

	var buf bytes.Buffer
	for lineIdx := start.Line; lineIdx <= end.Line; lineIdx++ {
		lineBytes, err := e.buffer.Line(lineIdx)
		if err != nil {
			return nil, err
		}
		switch lineIdx {
		case start.Line:
			buf.Write(lineBytes[runeIndexToByteOffset(lineBytes, start.Col):])
		case end.Line:
			buf.WriteByte('\n')
			buf.Write(lineBytes[:runeIndexToByteOffset(lineBytes, end.Col)])
		default:
			buf.WriteByte('\n')
			buf.Write(lineBytes)
		}
	}
	return buf.Bytes(), nil
}
