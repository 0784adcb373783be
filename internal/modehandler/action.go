package modehandler

import (
	"github.com/scribe-editor/scribe/internal/input"
	"github.com/scribe-editor/scribe/internal/logger"
)

// executeAction handles actions when in ModeNormal.
func (mh *ModeHandler) executeAction(action input.Action, actionEvent input.ActionEvent) bool {
	actionProcessed := true

	switch action {
	// Mode Switching
	case input.ActionEnterCommandMode:
		mh.currentMode = ModeCommand
		mh.cmdBuffer = ""
		mh.statusBar.SetTemporaryMessage(":")
		logger.Debugf("ModeHandler: Entering Command Mode")

	// Quit/Save actions
	case input.ActionQuit: // ESC or Ctrl+C in Normal Mode
		if mh.editor.GetBuffer().IsModified() && !mh.forceQuitPending {
			mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again or Ctrl+Q to force quit.")
			mh.forceQuitPending = true
			actionProcessed = false // Don't quit yet, redraw needed for status
		} else {
			mh.SignalQuit()
			actionProcessed = false
		}
	case input.ActionForceQuit:
		mh.SignalQuit()
		actionProcessed = false

	case input.ActionSave:
		err := mh.editor.SaveBuffer()
		savedPath := mh.editor.GetBuffer().FilePath()
		if savedPath == "" {
			savedPath = "[No Name]"
		}
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		} else {
			mh.statusBar.SetTemporaryMessage("Buffer saved to %s", savedPath)
		}

	case input.ActionRunBuffer:
		if mh.requestRun != nil {
			mh.requestRun()
		} else {
			mh.statusBar.SetTemporaryMessage("Run is not available")
			actionProcessed = false
		}

	case input.ActionShowAbout:
		mh.ShowAbout()

	// Movement actions
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()

	// Clipboard actions
	case input.ActionCutLine:
		if err := mh.editor.CutLine(); err != nil {
			mh.statusBar.SetTemporaryMessage("Cut failed: %v", err)
			logger.Debugf("CutLine error: %v", err)
			actionProcessed = false
		} else {
			mh.statusBar.SetTemporaryMessage("Line cut")
		}

	case input.ActionPaste:
		pasted, err := mh.editor.Paste()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			logger.Debugf("Paste error: %v", err)
			actionProcessed = false
		} else if !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
			actionProcessed = false
		}

	// Undo/Redo actions
	case input.ActionUndo:
		undone, err := mh.editor.Undo()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Undo failed: %v", err)
			actionProcessed = false
		} else if !undone {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
			actionProcessed = false
		}

	case input.ActionRedo:
		redone, err := mh.editor.Redo()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Redo failed: %v", err)
			actionProcessed = false
		} else if !redone {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
			actionProcessed = false
		}

	// Text Modification actions
	case input.ActionInsertRune:
		if err := mh.editor.InsertRune(actionEvent.Rune); err != nil {
			logger.Debugf("Err InsertRune: %v", err)
			actionProcessed = false
		}
	case input.ActionInsertNewLine:
		if err := mh.editor.InsertNewLine(); err != nil {
			logger.Debugf("Err InsertNewLine: %v", err)
			actionProcessed = false
		}
	case input.ActionInsertTab:
		if err := mh.editor.InsertTab(); err != nil {
			logger.Debugf("Err InsertTab: %v", err)
			actionProcessed = false
		}
	case input.ActionDeleteCharBackward:
		if err := mh.editor.DeleteBackward(); err != nil {
			logger.Debugf("Err DeleteBackward: %v", err)
			actionProcessed = false
		}
	case input.ActionDeleteCharForward:
		if err := mh.editor.DeleteForward(); err != nil {
			logger.Debugf("Err DeleteForward: %v", err)
			actionProcessed = false
		}

	case input.ActionUnknown:
		actionProcessed = false
	default:
		actionProcessed = false
	}

	// Reset force quit flag once any other action succeeds
	if action != input.ActionQuit && action != input.ActionUnknown && actionProcessed {
		mh.forceQuitPending = false
	}

	return actionProcessed
}
