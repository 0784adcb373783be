package core

import (
	"testing"

	"github.com/scribe-editor/scribe/internal/buffer"
	"github.com/scribe-editor/scribe/internal/types"
)

func newTestEditor(t *testing.T, content string) *Editor {
	t.Helper()
	buf := buffer.NewSliceBuffer()
	if content != "" {
		if _, err := buf.Insert(types.Position{Line: 0, Col: 0}, []byte(content)); err != nil {
			t.Fatalf("seeding buffer: %v", err)
		}
	}
	e := NewEditor(buf)
	// Internal register only so tests never touch the system clipboard
	e.SetClipboard(NewClipboard(false))
	e.SetViewSize(80, 24)
	return e
}

func bufferText(e *Editor) string {
	return string(e.GetBuffer().Bytes())
}

func TestInsertRuneAdvancesCursor(t *testing.T) {
	e := newTestEditor(t, "")
	for _, r := range "ab" {
		if err := e.InsertRune(r); err != nil {
			t.Fatalf("InsertRune(%q): %v", r, err)
		}
	}
	if got := bufferText(e); got != "ab" {
		t.Errorf("buffer = %q, want %q", got, "ab")
	}
	if want := (types.Position{Line: 0, Col: 2}); e.GetCursor() != want {
		t.Errorf("cursor = %+v, want %+v", e.GetCursor(), want)
	}
}

func TestInsertNewLineSplitsLine(t *testing.T) {
	e := newTestEditor(t, "split")
	e.SetCursor(types.Position{Line: 0, Col: 2})
	if err := e.InsertNewLine(); err != nil {
		t.Fatalf("InsertNewLine: %v", err)
	}
	if got := bufferText(e); got != "sp\nlit" {
		t.Errorf("buffer = %q, want %q", got, "sp\nlit")
	}
	if want := (types.Position{Line: 1, Col: 0}); e.GetCursor() != want {
		t.Errorf("cursor = %+v, want %+v", e.GetCursor(), want)
	}
}

func TestDeleteBackwardJoinsLines(t *testing.T) {
	e := newTestEditor(t, "one\ntwo")
	e.SetCursor(types.Position{Line: 1, Col: 0})
	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("DeleteBackward: %v", err)
	}
	if got := bufferText(e); got != "onetwo" {
		t.Errorf("buffer = %q, want %q", got, "onetwo")
	}
	if want := (types.Position{Line: 0, Col: 3}); e.GetCursor() != want {
		t.Errorf("cursor = %+v, want %+v", e.GetCursor(), want)
	}
}

func TestDeleteBackwardAtBufferStartIsNoop(t *testing.T) {
	e := newTestEditor(t, "text")
	e.SetCursor(types.Position{Line: 0, Col: 0})
	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("DeleteBackward: %v", err)
	}
	if got := bufferText(e); got != "text" {
		t.Errorf("buffer = %q, want unchanged", got)
	}
}

func TestDeleteForwardJoinsLinesAtEOL(t *testing.T) {
	e := newTestEditor(t, "one\ntwo")
	e.SetCursor(types.Position{Line: 0, Col: 3})
	if err := e.DeleteForward(); err != nil {
		t.Fatalf("DeleteForward: %v", err)
	}
	if got := bufferText(e); got != "onetwo" {
		t.Errorf("buffer = %q, want %q", got, "onetwo")
	}
}

func TestUndoRedoTyping(t *testing.T) {
	e := newTestEditor(t, "")
	for _, r := range "hi" {
		if err := e.InsertRune(r); err != nil {
			t.Fatalf("InsertRune: %v", err)
		}
	}

	undone, err := e.Undo()
	if err != nil || !undone {
		t.Fatalf("Undo = %v, %v; want true, nil", undone, err)
	}
	if got := bufferText(e); got != "h" {
		t.Errorf("buffer after undo = %q, want %q", got, "h")
	}

	redone, err := e.Redo()
	if err != nil || !redone {
		t.Fatalf("Redo = %v, %v; want true, nil", redone, err)
	}
	if got := bufferText(e); got != "hi" {
		t.Errorf("buffer after redo = %q, want %q", got, "hi")
	}
	if want := (types.Position{Line: 0, Col: 2}); e.GetCursor() != want {
		t.Errorf("cursor after redo = %+v, want %+v", e.GetCursor(), want)
	}
}

func TestUndoDeleteRestoresText(t *testing.T) {
	e := newTestEditor(t, "one\ntwo")
	e.SetCursor(types.Position{Line: 1, Col: 0})
	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("DeleteBackward: %v", err)
	}

	undone, err := e.Undo()
	if err != nil || !undone {
		t.Fatalf("Undo = %v, %v; want true, nil", undone, err)
	}
	if got := bufferText(e); got != "one\ntwo" {
		t.Errorf("buffer after undo = %q, want %q", got, "one\ntwo")
	}
	if e.CanRedo() != true {
		t.Error("CanRedo() = false after undo")
	}
}

func TestMoveCursorWrapsAtLineEnds(t *testing.T) {
	e := newTestEditor(t, "ab\ncd")

	// Right at EOL wraps to the next line
	e.SetCursor(types.Position{Line: 0, Col: 2})
	e.MoveCursor(0, 1)
	if want := (types.Position{Line: 1, Col: 0}); e.GetCursor() != want {
		t.Errorf("cursor after right wrap = %+v, want %+v", e.GetCursor(), want)
	}

	// Left at BOL wraps to the previous line end
	e.MoveCursor(0, -1)
	if want := (types.Position{Line: 0, Col: 2}); e.GetCursor() != want {
		t.Errorf("cursor after left wrap = %+v, want %+v", e.GetCursor(), want)
	}
}

func TestMoveCursorClampsToLineLength(t *testing.T) {
	e := newTestEditor(t, "long line\nab")
	e.SetCursor(types.Position{Line: 0, Col: 9})
	e.MoveCursor(1, 0)
	if want := (types.Position{Line: 1, Col: 2}); e.GetCursor() != want {
		t.Errorf("cursor = %+v, want clamped %+v", e.GetCursor(), want)
	}
}

func TestHomeAndEnd(t *testing.T) {
	e := newTestEditor(t, "content")
	e.SetCursor(types.Position{Line: 0, Col: 3})

	e.End()
	if e.GetCursor().Col != 7 {
		t.Errorf("End(): Col = %d, want 7", e.GetCursor().Col)
	}
	e.Home()
	if e.GetCursor().Col != 0 {
		t.Errorf("Home(): Col = %d, want 0", e.GetCursor().Col)
	}
}

func TestCutLineAndPaste(t *testing.T) {
	e := newTestEditor(t, "first\nsecond\nthird")
	e.SetCursor(types.Position{Line: 1, Col: 3})

	if err := e.CutLine(); err != nil {
		t.Fatalf("CutLine: %v", err)
	}
	if got := bufferText(e); got != "first\nthird" {
		t.Errorf("buffer after cut = %q, want %q", got, "first\nthird")
	}

	// Paste at start of first line reinserts the cut line
	e.SetCursor(types.Position{Line: 0, Col: 0})
	pasted, err := e.Paste()
	if err != nil || !pasted {
		t.Fatalf("Paste = %v, %v; want true, nil", pasted, err)
	}
	if got := bufferText(e); got != "second\nfirst\nthird" {
		t.Errorf("buffer after paste = %q, want %q", got, "second\nfirst\nthird")
	}
}

func TestCutLastLineLeavesEmptyLine(t *testing.T) {
	e := newTestEditor(t, "only")
	if err := e.CutLine(); err != nil {
		t.Fatalf("CutLine: %v", err)
	}
	if got := bufferText(e); got != "" {
		t.Errorf("buffer = %q, want empty", got)
	}
	if e.GetBuffer().LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", e.GetBuffer().LineCount())
	}
}

func TestPasteEmptyClipboard(t *testing.T) {
	e := newTestEditor(t, "text")
	pasted, err := e.Paste()
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if pasted {
		t.Error("Paste() = true with empty clipboard")
	}
}

func TestScrollToCursorKeepsCursorVisible(t *testing.T) {
	content := ""
	for i := 0; i < 100; i++ {
		content += "line\n"
	}
	e := newTestEditor(t, content)
	e.SetViewSize(80, 10)

	e.SetCursor(types.Position{Line: 50, Col: 0})
	top, _ := e.GetViewport()
	if 50 < top || 50 >= top+10 {
		t.Errorf("cursor line 50 outside viewport [%d,%d)", top, top+10)
	}

	e.SetCursor(types.Position{Line: 0, Col: 0})
	if top, _ := e.GetViewport(); top != 0 {
		t.Errorf("viewport top = %d, want 0 after moving to start", top)
	}
}

func TestLoadFileResetsHistoryAndCursor(t *testing.T) {
	e := newTestEditor(t, "")
	if err := e.InsertRune('x'); err != nil {
		t.Fatalf("InsertRune: %v", err)
	}
	if !e.CanUndo() {
		t.Fatal("expected undoable change before load")
	}

	// Missing file loads as an empty bound buffer
	if err := e.LoadFile(t.TempDir() + "/fresh.py"); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if e.CanUndo() {
		t.Error("history survived LoadFile")
	}
	if e.GetCursor() != (types.Position{}) {
		t.Errorf("cursor = %+v, want origin after load", e.GetCursor())
	}
}
