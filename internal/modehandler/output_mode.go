package modehandler

import (
	"fmt"
	"strings"

	"github.com/scribe-editor/scribe/internal/config"
	"github.com/scribe-editor/scribe/internal/input"
	"github.com/scribe-editor/scribe/internal/logger"
)

// EnterOutputMode switches to the read-only output view. Each call replaces
// the previous output; only one output view exists at a time.
func (mh *ModeHandler) EnterOutputMode(title, output string) {
	mh.outputTitle = title
	mh.outputLines = strings.Split(strings.TrimRight(output, "\n"), "\n")
	mh.outputScroll = 0
	mh.currentMode = ModeOutput
	mh.statusBar.ResetTemporaryMessage()
	logger.Debugf("ModeHandler: Entering Output Mode (%d lines)", len(mh.outputLines))
}

// OutputView returns the content of the output view for drawing.
func (mh *ModeHandler) OutputView() (title string, lines []string, scroll int) {
	return mh.outputTitle, mh.outputLines, mh.outputScroll
}

// handleActionOutput handles actions when in ModeOutput. The buffer is not
// editable here; keys either scroll or dismiss the view.
func (mh *ModeHandler) handleActionOutput(actionEvent input.ActionEvent) bool {
	actionProcessed := true

	switch actionEvent.Action {
	case input.ActionMoveDown:
		mh.scrollOutput(1)
	case input.ActionMoveUp:
		mh.scrollOutput(-1)
	case input.ActionMovePageDown:
		mh.scrollOutput(10)
	case input.ActionMovePageUp:
		mh.scrollOutput(-10)
	case input.ActionMoveHome:
		mh.outputScroll = 0
	case input.ActionMoveEnd:
		mh.outputScroll = len(mh.outputLines) - 1
		if mh.outputScroll < 0 {
			mh.outputScroll = 0
		}

	case input.ActionQuit, input.ActionInsertNewLine:
		// Esc, Ctrl+C, or Enter dismisses the view
		mh.dismissOutput()

	case input.ActionInsertRune:
		switch actionEvent.Rune {
		case 'q':
			mh.dismissOutput()
		case 'j':
			mh.scrollOutput(1)
		case 'k':
			mh.scrollOutput(-1)
		default:
			actionProcessed = false
		}

	default:
		actionProcessed = false
	}

	return actionProcessed
}

func (mh *ModeHandler) scrollOutput(delta int) {
	mh.outputScroll += delta
	maxScroll := len(mh.outputLines) - 1
	if maxScroll < 0 {
		maxScroll = 0
	}
	if mh.outputScroll > maxScroll {
		mh.outputScroll = maxScroll
	}
	if mh.outputScroll < 0 {
		mh.outputScroll = 0
	}
}

func (mh *ModeHandler) dismissOutput() {
	mh.currentMode = ModeNormal
	mh.outputTitle = ""
	mh.outputLines = nil
	mh.outputScroll = 0
	logger.Debugf("ModeHandler: Dismissed Output Mode")
}

// ShowAbout displays the about text in the output view.
func (mh *ModeHandler) ShowAbout() {
	text := fmt.Sprintf("%s v%s\n\nA minimal terminal source-code editor.\n\nCtrl+S save, Ctrl+R run, Ctrl+Z undo, Ctrl+Y redo\nCtrl+K cut line, Ctrl+U paste, ':' command prompt",
		config.AppName, config.Version)
	mh.EnterOutputMode(" About -- Esc/q to dismiss", text)
}
