// internal/app/app.go
package app

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/scribe-editor/scribe/internal/buffer"
	"github.com/scribe-editor/scribe/internal/config"
	"github.com/scribe-editor/scribe/internal/core"
	"github.com/scribe-editor/scribe/internal/event"
	"github.com/scribe-editor/scribe/internal/gutter"
	"github.com/scribe-editor/scribe/internal/highlight"
	"github.com/scribe-editor/scribe/internal/input"
	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/modehandler"
	"github.com/scribe-editor/scribe/internal/runner"
	"github.com/scribe-editor/scribe/internal/statusbar"
	"github.com/scribe-editor/scribe/internal/theme"
	"github.com/scribe-editor/scribe/internal/tui"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	lineGutter   *gutter.Gutter
	runner       *runner.Runner
	activeTheme  *theme.Theme
	filePath     string
	tabWidth     int

	// Channels managed by the App. Run results are NOT channeled here: the
	// worker goroutine posts them into the screen's event queue, so mode
	// state is only ever touched from the input goroutine.
	quit          chan struct{}
	redrawRequest chan struct{}
	runPending    atomic.Bool
}

// NewApp creates and initializes a new application instance.
func NewApp(filePath string) (*App, error) {
	cfg := config.Get()

	// --- Create Core Components ---
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	buf := buffer.NewSliceBuffer()
	if loadErr := buf.Load(filePath); loadErr != nil {
		// Buffer stays empty; surface the problem in the status bar below
		logger.Warnf("App: error loading file '%s': %v", filePath, loadErr)
	}

	editor := core.NewEditor(buf)
	editor.ScrollOff = cfg.Editor.ScrollOff
	editor.SetClipboard(core.NewClipboard(cfg.Editor.SystemClipboard))
	editor.SetHighlighter(highlight.NewPython())

	inputProcessor := input.NewInputProcessor()
	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	activeTheme := theme.GetCurrentTheme()
	statusBar := statusbar.New(statusbar.Config{
		StyleDefault:      activeTheme.GetStyle("StatusBar"),
		StyleModified:     activeTheme.GetStyle("StatusBarModified"),
		StyleMessage:      activeTheme.GetStyle("StatusBarMessage"),
		StyleCommandInput: activeTheme.GetStyle("StatusBarCommand"),
		MessageTimeout:    config.MessageTimeout,
	})

	quitChan := make(chan struct{})

	appInstance := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		runner:        runner.New(cfg.Runner.Interpreter, cfg.Runner.Args),
		activeTheme:   activeTheme,
		filePath:      filePath,
		tabWidth:      cfg.Editor.TabWidth,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	// --- Create Mode Handler ---
	appInstance.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: inputProcessor,
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
		RequestRun:     appInstance.startRun,
	})

	// --- Line-number Gutter ---
	appInstance.lineGutter = gutter.New(gutter.DefaultConfig(), editor)
	appInstance.lineGutter.Attach(eventManager, appInstance.requestRedraw)

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeCursorMoved, appInstance.handleCursorMovedForStatus)
	eventManager.Subscribe(event.TypeBufferModified, appInstance.handleBufferModifiedForStatus)
	eventManager.Subscribe(event.TypeBufferSaved, appInstance.handleBufferSavedForStatus)
	eventManager.Subscribe(event.TypeBufferLoaded, appInstance.handleBufferLoadedForStatus)

	// --- Register Built-in Commands ---
	appInstance.registerCommands()

	// --- Final Setup ---
	appInstance.applyViewSize()

	return appInstance, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop() // Start event loop

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s -- Ctrl+S Save | Ctrl+R Run | ESC Quit", config.AppName)
	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.GetBuffer().IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil

		case <-a.redrawRequest:
			a.applyViewSize()
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating key events to ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true

		case *tcell.EventKey:
			// Delegate ALL key handling to ModeHandler
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)

		case *tcell.EventInterrupt:
			// Worker goroutines post their results through the event queue
			// so they land on the same goroutine as key handling.
			needsRedraw = a.handleInterrupt(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// --- Drawing ---

// applyViewSize recomputes the text area from the screen and gutter sizes.
func (a *App) applyViewSize() {
	w, h := a.tuiManager.Size()
	gutterWidth := a.lineGutter.Width()
	if gutterWidth >= w {
		gutterWidth = 0
	}
	a.editor.SetViewSize(w-gutterWidth, h-config.StatusBarHeight)
}

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	if a.modeHandler.GetCurrentMode() == modehandler.ModeOutput {
		title, lines, scroll := a.modeHandler.OutputView()
		tui.DrawOutput(a.tuiManager, a.activeTheme, title, lines, scroll)
	} else {
		tui.DrawEditor(a.tuiManager, a.editor, a.lineGutter, a.activeTheme, a.tabWidth)
		tui.DrawCursor(a.tuiManager, a.editor, a.lineGutter)
	}
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetEncoding(buf.Encoding())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().Name())

	// Keep the command prompt visible while typing
	if a.modeHandler.GetCurrentMode() == modehandler.ModeCommand {
		a.statusBar.SetTemporaryMessage(":%s", a.modeHandler.GetCommandBuffer())
	}
}

// --- Event Handlers (App reacts to events) ---

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
