package core

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/scribe-editor/scribe/internal/logger"
)

// MoveCursor moves the cursor AND adjusts the viewport, handling line wraps.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	currentLine := e.Cursor.Line
	currentCol := e.Cursor.Col
	lineCount := e.buffer.LineCount()

	// --- Handle Horizontal Wrap-Around FIRST ---
	// If deltaLine is non-zero, we are moving vertically, wrap doesn't apply here.
	if deltaLine == 0 && lineCount > 0 {
		if deltaCol > 0 { // Attempting to move Right
			lineBytes, err := e.buffer.Line(currentLine)
			if err == nil {
				maxCol := utf8.RuneCount(lineBytes)
				if currentCol >= maxCol && currentLine < lineCount-1 { // At or past EOL and not on the last line
					e.Cursor.Line++
					e.Cursor.Col = 0
					e.ScrollToCursor()
					e.notifyCursorMoved()
					return // Wrap handled
				}
			}
		} else if deltaCol < 0 { // Attempting to move Left
			if currentCol <= 0 && currentLine > 0 { // At or before BOL and not on the first line
				e.Cursor.Line--
				prevLineBytes, err := e.buffer.Line(e.Cursor.Line)
				if err == nil {
					e.Cursor.Col = utf8.RuneCount(prevLineBytes) // Move to end of that line
				} else {
					e.Cursor.Col = 0 // Fallback if error reading prev line
				}
				e.ScrollToCursor()
				e.notifyCursorMoved()
				return // Wrap handled
			}
		}
	}

	// --- Default Movement & Clamping ---
	targetLine := currentLine + deltaLine
	targetCol := currentCol + deltaCol

	// Clamp targetLine vertically
	if targetLine < 0 {
		targetLine = 0
	}
	if lineCount == 0 {
		targetLine = 0
	} else if targetLine >= lineCount {
		targetLine = lineCount - 1
	}

	// Clamp targetCol horizontally based on the *target* line's content
	if targetCol < 0 {
		targetCol = 0
	}
	if lineCount > 0 {
		targetLineBytes, err := e.buffer.Line(targetLine)
		if err == nil {
			maxCol := utf8.RuneCount(targetLineBytes)
			if targetCol > maxCol {
				targetCol = maxCol
			}
		} else {
			targetCol = 0
		}
	} else {
		targetCol = 0 // No lines in buffer
	}

	e.Cursor.Line = targetLine
	e.Cursor.Col = targetCol

	e.ScrollToCursor()
	e.notifyCursorMoved()
}

// calculateVisualColumn computes the visual screen column for a given rune
// index within a line, handling wide characters and grapheme clusters.
func calculateVisualColumn(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	str := string(line)
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(str)

	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		runes := gr.Runes()
		visualWidth += gr.Width()
		currentRuneIndex += len(runes)
	}
	return visualWidth
}

// ScrollToCursor adjusts the viewport incorporating ScrollOff and visual width.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return // Cannot scroll if view has no dimensions
	}

	prevY, prevX := e.ViewportY, e.ViewportX

	// Effective scrolloff (cannot be larger than half the view height)
	effectiveScrollOff := e.ScrollOff
	if effectiveScrollOff*2 >= e.viewHeight {
		effectiveScrollOff = (e.viewHeight - 1) / 2
	}

	// Vertical scrolling with scrolloff
	if e.Cursor.Line < e.ViewportY+effectiveScrollOff {
		e.ViewportY = e.Cursor.Line - effectiveScrollOff
		if e.ViewportY < 0 {
			e.ViewportY = 0 // Don't scroll past the beginning of the file
		}
	} else if e.Cursor.Line >= e.ViewportY+e.viewHeight-effectiveScrollOff {
		e.ViewportY = e.Cursor.Line - e.viewHeight + 1 + effectiveScrollOff
	}

	// --- Horizontal Scrolling (based on visual column) ---
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	cursorVisualCol := 0
	if err == nil {
		cursorVisualCol = calculateVisualColumn(lineBytes, e.Cursor.Col)
	} else {
		logger.Debugf("ScrollToCursor: Error getting line %d: %v", e.Cursor.Line, err)
	}

	if cursorVisualCol < e.ViewportX {
		e.ViewportX = cursorVisualCol
	} else if cursorVisualCol >= e.ViewportX+e.viewWidth {
		// Keep the cursor at the last visible column
		e.ViewportX = cursorVisualCol - e.viewWidth + 1
	}

	// Clamp viewport origins
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	if e.ViewportX < 0 {
		e.ViewportX = 0
	}

	if prevY != e.ViewportY || prevX != e.ViewportX {
		e.notifyViewportChanged()
	}
}

// PageMove moves the cursor and viewport up or down by one page height.
// 'deltaPages' is typically +1 (PageDown) or -1 (PageUp).
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return // Cannot page if view has no height
	}

	targetLine := e.Cursor.Line + (e.viewHeight * deltaPages)

	lineCount := e.buffer.LineCount()
	if targetLine < 0 {
		targetLine = 0
	} else if targetLine >= lineCount {
		targetLine = lineCount - 1
	}

	e.Cursor.Line = targetLine
	// Try to maintain horizontal position (Col), clamping if necessary
	e.MoveCursor(0, 0) // Use MoveCursor's logic to clamp Col and scroll

	// Explicitly move viewport - ScrollToCursor might not jump a full page
	e.ViewportY += (e.viewHeight * deltaPages)
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	maxViewportY := lineCount - e.viewHeight
	if maxViewportY < 0 {
		maxViewportY = 0
	}
	if e.ViewportY > maxViewportY {
		e.ViewportY = maxViewportY
	}

	// Final scroll check to ensure cursor visibility *after* the jump
	e.ScrollToCursor()
}

// Home moves the cursor to the beginning of the current line (column 0).
func (e *Editor) Home() {
	e.Cursor.Col = 0
	e.ScrollToCursor()
	e.notifyCursorMoved()
}

// End moves the cursor to the end of the current line.
func (e *Editor) End() {
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		logger.Debugf("Error getting line %d for End key: %v", e.Cursor.Line, err)
		e.Cursor.Col = 0 // Fallback to beginning
	} else {
		e.Cursor.Col = utf8.RuneCount(lineBytes) // Move to position *after* last rune
	}
	e.ScrollToCursor()
	e.notifyCursorMoved()
}
