// Package gutter renders the line-number panel beside the editor text.
//
// The gutter owns no document state: it holds a non-owning ViewState handle
// and derives everything it draws from that handle at render time. Width is
// dynamic, growing with the digit count of the line count so 9 -> 10 lines
// widens the panel instead of clipping.
package gutter

import (
	"strconv"

	"github.com/scribe-editor/scribe/internal/event"
	"github.com/scribe-editor/scribe/internal/logger"
)

// ViewState is the read-only view of the editor the gutter queries.
type ViewState interface {
	FirstVisibleLine() int
	VisibleLineCount() int
	LineCount() int
	CursorLine() int
}

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables line number display.
	ShowLineNumbers bool

	// MinDigits is the minimum digit column width.
	MinDigits int

	// Padding is the number of blank columns between numbers and text.
	Padding int
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers: true,
		MinDigits:       2,
		Padding:         1,
	}
}

// CellStyle describes how to style a gutter cell.
type CellStyle uint8

const (
	StyleNormal CellStyle = iota
	StyleCurrentLine
	StyleFiller
)

// Cell represents a single gutter cell.
type Cell struct {
	Rune  rune
	Style CellStyle
}

// Gutter renders line numbers for whatever viewport the ViewState reports.
type Gutter struct {
	config Config
	view   ViewState
}

// New creates a gutter over a view handle.
func New(config Config, view ViewState) *Gutter {
	return &Gutter{config: config, view: view}
}

// Attach subscribes the gutter to content and viewport notifications so a
// redraw is requested whenever its numbers could change.
func (g *Gutter) Attach(events *event.Manager, requestRedraw func()) {
	handler := func(e event.Event) bool {
		switch e.Data.(type) {
		case event.BufferModifiedData, event.ViewportChangedData:
			requestRedraw()
		default:
			// Cosmetic only: skip the redraw rather than fail.
			logger.Warnf("gutter: unexpected event payload %T for type %v, skipping redraw", e.Data, e.Type)
		}
		return false
	}
	events.Subscribe(event.TypeBufferModified, handler)
	events.Subscribe(event.TypeViewportChanged, handler)
}

// Width returns the current gutter width in cells, derived from the digit
// count of the document's line count. Returns 0 when numbers are disabled.
func (g *Gutter) Width() int {
	if !g.config.ShowLineNumbers {
		return 0
	}
	return g.digits() + g.config.Padding
}

// digits returns the digit column width for the current line count.
func (g *Gutter) digits() int {
	count := g.view.LineCount()
	if count < 1 {
		count = 1
	}
	d := len(strconv.Itoa(count))
	if d < g.config.MinDigits {
		d = g.config.MinDigits
	}
	return d
}

// RenderRow produces the gutter cells for one screen row. The buffer line is
// derived from the view's first visible line at call time; rows past the end
// of the document render as blank filler.
func (g *Gutter) RenderRow(row int) []Cell {
	width := g.Width()
	if width == 0 || row < 0 || row >= g.view.VisibleLineCount() {
		return nil
	}

	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: StyleFiller}
	}

	line := g.view.FirstVisibleLine() + row
	if line >= g.view.LineCount() {
		return cells
	}

	style := StyleNormal
	if line == g.view.CursorLine() {
		style = StyleCurrentLine
	}

	// Right-align the 1-based line number within the digit columns.
	num := strconv.Itoa(line + 1)
	digits := g.digits()
	start := digits - len(num)
	for i := 0; i < digits; i++ {
		cells[i].Style = style
		if i >= start {
			cells[i].Rune = rune(num[i-start])
		}
	}
	return cells
}
