// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"github.com/scribe-editor/scribe/internal/core"
	"github.com/scribe-editor/scribe/internal/gutter"
	"github.com/scribe-editor/scribe/internal/highlight"
	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/theme"
)

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

// gutterCellStyle maps a gutter cell style to the active theme.
func gutterCellStyle(activeTheme *theme.Theme, cs gutter.CellStyle) tcell.Style {
	switch cs {
	case gutter.StyleCurrentLine:
		return activeTheme.GetStyle("LineNumberActive")
	default:
		return activeTheme.GetStyle("LineNumber")
	}
}

// DrawEditor draws the visible portion of the buffer, the line-number
// gutter, and syntax highlighting. Spans are computed per visible line at
// draw time; nothing is cached between frames.
func DrawEditor(tuiManager *TUI, editor *core.Editor, gut *gutter.Gutter, activeTheme *theme.Theme, tabWidth int) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}
	if tabWidth <= 0 {
		tabWidth = 4
	}

	defaultStyle := activeTheme.GetStyle("Default")

	width, height := tuiManager.Size()
	viewY, viewX := editor.GetViewport()
	statusBarHeight := 1
	viewHeight := height - statusBarHeight

	if viewHeight <= 0 || width <= 0 {
		return
	}

	gutterWidth := gut.Width()
	if gutterWidth >= width {
		gutterWidth = 0 // Disable gutter if screen too narrow
	}
	textAreaWidth := width - gutterWidth

	buf := editor.GetBuffer()
	lineCount := buf.LineCount()
	highlighter := editor.Highlighter()

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + viewY

		// Fill the entire row with the theme's default style
		for fillX := 0; fillX < width; fillX++ {
			tuiManager.screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		// Line-number gutter
		if gutterWidth > 0 {
			for i, cell := range gut.RenderRow(screenY) {
				if i >= gutterWidth {
					break
				}
				tuiManager.screen.SetContent(i, screenY, cell.Rune, nil, gutterCellStyle(activeTheme, cell.Style))
			}
		}

		if bufferLineIdx < 0 || bufferLineIdx >= lineCount {
			continue // Below buffer content, row stays blank
		}

		lineBytes, err := buf.Line(bufferLineIdx)
		if err != nil {
			logger.Debugf("DrawEditor: Error getting line %d: %v", bufferLineIdx, err)
			continue
		}

		// Highlighting is recomputed from the current text on every draw, so
		// it can never go stale after an edit.
		var spans []highlight.Span
		if highlighter != nil {
			spans = highlighter.SpansForLine(lineBytes)
		}

		lineStr := string(lineBytes)
		gr := uniseg.NewGraphemes(lineStr)
		currentVisualX := 0

		for gr.Next() {
			startByte, _ := gr.Positions()
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			mainRune := clusterRunes[0]

			isTab := mainRune == '\t'
			if isTab {
				// Expand to the next tab stop
				clusterWidth = tabWidth - (currentVisualX % tabWidth)
			}

			clusterVisualStart := currentVisualX
			clusterVisualEnd := currentVisualX + clusterWidth
			screenX := (clusterVisualStart - viewX) + gutterWidth

			if clusterVisualEnd > viewX && clusterVisualStart < viewX+textAreaWidth {
				currentStyle := defaultStyle
				if styleName, ok := highlight.StyleAt(spans, startByte); ok {
					currentStyle = activeTheme.GetStyle(styleName)
				}

				if screenX >= gutterWidth && screenX < width {
					if isTab {
						for i := 0; i < clusterWidth && screenX+i < width; i++ {
							tuiManager.screen.SetContent(screenX+i, screenY, ' ', nil, currentStyle)
						}
					} else {
						combining := clusterRunes[1:]
						tuiManager.screen.SetContent(screenX, screenY, mainRune, combining, currentStyle)
						// Fill remaining cells for wide characters
						for cw := 1; cw < clusterWidth; cw++ {
							fillX := screenX + cw
							if fillX < width {
								tuiManager.screen.SetContent(fillX, screenY, ' ', nil, currentStyle)
							}
						}
					}
				}
			}

			currentVisualX += clusterWidth
			if currentVisualX >= viewX+textAreaWidth {
				break // Past the right edge of the text area
			}
		}
	}
}

// DrawOutput renders the run-output view over the whole text area: a title
// row followed by the captured interpreter output, scrolled vertically.
func DrawOutput(tuiManager *TUI, activeTheme *theme.Theme, title string, lines []string, scroll int) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}

	outputStyle := activeTheme.GetStyle("Output")
	titleStyle := activeTheme.GetStyle("OutputTitle")

	width, height := tuiManager.Size()
	statusBarHeight := 1
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	// Title row
	for x := 0; x < width; x++ {
		tuiManager.screen.SetContent(x, 0, ' ', nil, titleStyle)
	}
	drawText(tuiManager.screen, 0, 0, width, title, titleStyle)

	// Output rows
	for screenY := 1; screenY < viewHeight; screenY++ {
		for x := 0; x < width; x++ {
			tuiManager.screen.SetContent(x, screenY, ' ', nil, outputStyle)
		}
		lineIdx := scroll + screenY - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}
		drawText(tuiManager.screen, 0, screenY, width, lines[lineIdx], outputStyle)
	}

	tuiManager.screen.HideCursor()
}

// drawText draws a string, truncated to maxWidth visual columns.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	currentX := x
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > x+maxWidth {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			if mainRune == '\t' {
				mainRune = ' '
			}
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combining, style)
		}
		if clusterWidth == 0 {
			clusterWidth = 1
		}
		currentX += clusterWidth
	}
}

// OutputTitle formats the title row for the run-output view.
func OutputTitle(interpreter string, exitCode int, durationMs int64) string {
	return fmt.Sprintf(" %s output -- exit %d (%dms) -- Esc/q to dismiss, j/k to scroll", interpreter, exitCode, durationMs)
}

// DrawCursor positions the terminal cursor using visual width calculations.
func DrawCursor(tuiManager *TUI, editor *core.Editor, gut *gutter.Gutter) {
	cursor := editor.GetCursor()
	viewY, viewX := editor.GetViewport()

	width, height := tuiManager.Size()
	gutterWidth := gut.Width()
	if gutterWidth >= width {
		gutterWidth = 0
	}

	lineBytes, err := editor.GetBuffer().Line(cursor.Line)
	cursorVisualCol := 0
	if err == nil {
		cursorVisualCol = calculateVisualColumn(lineBytes, cursor.Col)
	} else {
		logger.Debugf("DrawCursor: Error getting line %d: %v", cursor.Line, err)
	}

	screenX := (cursorVisualCol - viewX) + gutterWidth
	screenY := cursor.Line - viewY

	statusBarHeight := 1
	viewHeight := height - statusBarHeight
	textAreaWidth := width - gutterWidth

	if screenX < gutterWidth || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 || textAreaWidth <= 0 {
		tuiManager.screen.HideCursor()
	} else {
		tuiManager.screen.ShowCursor(screenX, screenY)
	}
}
