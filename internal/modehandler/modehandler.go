// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/scribe-editor/scribe/internal/core"
	"github.com/scribe-editor/scribe/internal/event"
	"github.com/scribe-editor/scribe/internal/input"
	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/statusbar"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
	ModeOutput // Read-only run-output view
)

// Name returns the display name of a mode for the status bar.
func (m InputMode) Name() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeOutput:
		return "OUTPUT"
	default:
		return ""
	}
}

// CommandFunc is the signature of a ':' command implementation.
type CommandFunc func(args []string) error

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{} // Channel to signal app termination
	requestRun     func()          // Starts an interpreter run (async, app-owned)

	// Internal State
	currentMode      InputMode
	cmdBuffer        string
	commands         map[string]CommandFunc // Command registry
	forceQuitPending bool
	quitOnce         sync.Once

	// Output view state
	outputTitle  string
	outputLines  []string
	outputScroll int
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
	RequestRun     func()          // Invoked for the run-buffer action
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		// Panic indicates a programming error during setup
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		requestRun:     cfg.RequestRun,
		currentMode:    ModeNormal,
		commands:       make(map[string]CommandFunc),
		cmdBuffer:      "",
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	// Dispatch raw key event first
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	var actionProcessed bool
	switch mh.currentMode {
	case ModeNormal:
		actionProcessed = mh.executeAction(actionEvent.Action, actionEvent)
	case ModeCommand:
		actionProcessed = mh.handleActionCommand(actionEvent)
	case ModeOutput:
		actionProcessed = mh.handleActionOutput(actionEvent)
	default:
		logger.Debugf("Warning: Unknown input mode: %v", mh.currentMode)
		actionProcessed = false
	}

	needsRedraw := actionProcessed || (actionEvent.Action == input.ActionQuit && mh.forceQuitPending)
	return needsRedraw
}

// SignalQuit closes the quit channel exactly once, no matter how many quit
// paths fire before the app loop notices.
func (mh *ModeHandler) SignalQuit() {
	mh.quitOnce.Do(func() {
		close(mh.quitSignal)
	})
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the current command buffer content (for display).
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}
