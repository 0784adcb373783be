package gutter

import (
	"testing"

	"github.com/scribe-editor/scribe/internal/event"
)

// fakeView is a scriptable ViewState for gutter tests.
type fakeView struct {
	firstLine  int
	visible    int
	lineCount  int
	cursorLine int
}

func (v *fakeView) FirstVisibleLine() int { return v.firstLine }
func (v *fakeView) VisibleLineCount() int { return v.visible }
func (v *fakeView) LineCount() int        { return v.lineCount }
func (v *fakeView) CursorLine() int       { return v.cursorLine }

func rowString(cells []Cell) string {
	runes := make([]rune, len(cells))
	for i, c := range cells {
		runes[i] = c.Rune
	}
	return string(runes)
}

func TestWidthTracksDigitCount(t *testing.T) {
	tests := []struct {
		lineCount int
		want      int // digits(min 2) + 1 padding
	}{
		{0, 3},
		{1, 3},
		{9, 3},
		{99, 3},
		{100, 4},
		{9999, 5},
	}
	for _, tt := range tests {
		view := &fakeView{lineCount: tt.lineCount, visible: 10}
		g := New(DefaultConfig(), view)
		if got := g.Width(); got != tt.want {
			t.Errorf("Width() with %d lines = %d, want %d", tt.lineCount, got, tt.want)
		}
	}
}

func TestWidthGrowsWhenBufferCrossesDigitBoundary(t *testing.T) {
	view := &fakeView{lineCount: 99, visible: 50}
	g := New(DefaultConfig(), view)
	before := g.Width()

	view.lineCount = 100 // Edit appended a line

	after := g.Width()
	if after != before+1 {
		t.Errorf("Width() after crossing 99->100 lines = %d, want %d", after, before+1)
	}
}

func TestWidthZeroWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowLineNumbers = false
	g := New(cfg, &fakeView{lineCount: 500, visible: 10})
	if got := g.Width(); got != 0 {
		t.Errorf("Width() = %d, want 0 when line numbers disabled", got)
	}
}

func TestRenderRowRightAlignsNumbers(t *testing.T) {
	view := &fakeView{firstLine: 0, visible: 5, lineCount: 120, cursorLine: 99}
	g := New(DefaultConfig(), view)

	// Line count 120 -> 3 digit columns + 1 padding
	tests := []struct {
		row  int
		want string
	}{
		{0, "  1 "},
		{1, "  2 "},
		{4, "  5 "},
	}
	for _, tt := range tests {
		if got := rowString(g.RenderRow(tt.row)); got != tt.want {
			t.Errorf("RenderRow(%d) = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestRenderRowScrolledViewport(t *testing.T) {
	view := &fakeView{firstLine: 97, visible: 5, lineCount: 120}
	g := New(DefaultConfig(), view)

	if got := rowString(g.RenderRow(0)); got != " 98 " {
		t.Errorf("RenderRow(0) = %q, want %q", got, " 98 ")
	}
	if got := rowString(g.RenderRow(3)); got != "101 " {
		t.Errorf("RenderRow(3) = %q, want %q", got, "101 ")
	}
}

func TestRenderRowPastEndOfBufferIsBlank(t *testing.T) {
	view := &fakeView{firstLine: 0, visible: 10, lineCount: 3}
	g := New(DefaultConfig(), view)

	cells := g.RenderRow(5)
	if rowString(cells) != "   " {
		t.Errorf("RenderRow(5) = %q, want blank filler", rowString(cells))
	}
	for i, c := range cells {
		if c.Style != StyleFiller {
			t.Errorf("cell[%d].Style = %v, want StyleFiller", i, c.Style)
		}
	}
}

func TestRenderRowCurrentLineStyle(t *testing.T) {
	view := &fakeView{firstLine: 0, visible: 10, lineCount: 10, cursorLine: 2}
	g := New(DefaultConfig(), view)

	cells := g.RenderRow(2)
	for i, c := range cells[:2] { // digit columns only
		if c.Style != StyleCurrentLine {
			t.Errorf("cursor row cell[%d].Style = %v, want StyleCurrentLine", i, c.Style)
		}
	}

	cells = g.RenderRow(3)
	for i, c := range cells[:2] {
		if c.Style != StyleNormal {
			t.Errorf("non-cursor row cell[%d].Style = %v, want StyleNormal", i, c.Style)
		}
	}
}

func TestRenderRowOutOfViewport(t *testing.T) {
	view := &fakeView{firstLine: 0, visible: 5, lineCount: 10}
	g := New(DefaultConfig(), view)
	if cells := g.RenderRow(-1); cells != nil {
		t.Errorf("RenderRow(-1) = %v, want nil", cells)
	}
	if cells := g.RenderRow(5); cells != nil {
		t.Errorf("RenderRow(5) = %v, want nil", cells)
	}
}

func TestAttachRequestsRedrawOnEvents(t *testing.T) {
	view := &fakeView{firstLine: 0, visible: 5, lineCount: 10}
	g := New(DefaultConfig(), view)

	events := event.NewManager()
	redraws := 0
	g.Attach(events, func() { redraws++ })

	events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
	events.Dispatch(event.TypeViewportChanged, event.ViewportChangedData{FirstLine: 1, Height: 5, Width: 80})
	if redraws != 2 {
		t.Errorf("redraw count = %d, want 2", redraws)
	}

	// Malformed payload must not redraw, and must not panic
	events.Dispatch(event.TypeBufferModified, "bogus")
	if redraws != 2 {
		t.Errorf("redraw count after bogus payload = %d, want 2", redraws)
	}
}
