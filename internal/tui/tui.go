// Package tui owns the tcell screen lifecycle and all drawing primitives.
//
// TUI is a thin seam between the editor and tcell: production code runs on
// the real terminal screen, while tests attach a tcell SimulationScreen
// through NewWithScreen. It also carries the event queue that worker
// goroutines use to hand results back to the input goroutine.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/scribe-editor/scribe/internal/theme"
)

// TUI wraps a tcell screen.
type TUI struct {
	screen tcell.Screen
}

// New creates a TUI on the real terminal, styled with the active theme.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes a TUI over a caller-supplied screen, typically a
// simulation screen in tests.
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(theme.GetCurrentTheme().GetStyle("Default"))
	return &TUI{screen: s}, nil
}

// Close finalizes the screen and releases the terminal.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent blocks until the next input, resize, or posted event arrives.
// Returns nil once the screen is finalized.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent injects an event into the poll queue. Safe to call from worker
// goroutines; blocks until the queue accepts the event so results are never
// dropped.
func (t *TUI) PostEvent(ev tcell.Event) {
	t.screen.PostEventWait(ev)
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes pending changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
