// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/scribe-editor/scribe/internal/logger"
)

// Theme maps style names to resolved tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style by name, falling back to the base name before
// the first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Scribe Dark Theme Definition ---

var ScribeDark Theme

func init() {
	// --- Palette ---
	sdBackground := tcell.NewHexColor(0x2a2f38) // Muted dark blue/grey (StatusBar BG)
	sdForeground := tcell.NewHexColor(0xc5cdd9) // Soft off-white (Default Text)
	sdGutter := tcell.NewHexColor(0x5c6370)     // Muted Grey (Line numbers)
	sdBlue := tcell.NewHexColor(0x61afef)       // Keywords
	sdGreen := tcell.NewHexColor(0x98c379)      // Comments
	sdRed := tcell.NewHexColor(0xe06c75)        // Strings
	sdOrange := tcell.NewHexColor(0xd19a66)     // Numbers
	sdCyan := tcell.NewHexColor(0x56b6c2)       // def/class names
	sdYellow := tcell.NewHexColor(0xe5c07b)     // Modified indicator

	// Use terminal background for the editing surface
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(sdForeground)

	ScribeDark = Theme{
		Name:   "Scribe Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// --- UI Elements ---
			"Default":           baseStyle,
			"LineNumber":        baseStyle.Foreground(sdGutter),
			"LineNumberActive":  baseStyle.Foreground(sdForeground).Bold(true),
			"StatusBar":         tcell.StyleDefault.Background(sdBackground).Foreground(sdForeground),
			"StatusBarModified": tcell.StyleDefault.Background(sdBackground).Foreground(sdYellow),
			"StatusBarMessage":  tcell.StyleDefault.Background(sdBackground).Foreground(sdForeground).Bold(true),
			"StatusBarCommand":  tcell.StyleDefault.Background(sdBackground).Foreground(sdGreen).Bold(true),

			// --- Run Output View ---
			"Output":      baseStyle,
			"OutputTitle": tcell.StyleDefault.Background(sdBackground).Foreground(sdCyan).Bold(true),
			"OutputError": baseStyle.Foreground(sdRed),

			// --- Syntax Highlighting ---
			"keyword":    baseStyle.Foreground(sdBlue).Bold(true),
			"comment":    baseStyle.Foreground(sdGreen).Italic(true),
			"string":     baseStyle.Foreground(sdRed),
			"number":     baseStyle.Foreground(sdOrange),
			"definition": baseStyle.Foreground(sdCyan).Bold(true),
		},
	}

	CurrentTheme = &ScribeDark
}

var CurrentTheme *Theme

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() *Theme {
	if CurrentTheme == nil {
		CurrentTheme = &ScribeDark
	}
	return CurrentTheme
}

// SetCurrentTheme switches the active theme.
func SetCurrentTheme(theme *Theme) {
	if theme != nil {
		CurrentTheme = theme
		logger.Infof("Theme switched to: %s", theme.Name)
	}
}
