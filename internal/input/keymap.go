// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For simple rune bindings (rarely needed beyond insert)
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionQuit // Primary quit action (checks modified)
	p.keymap[tcell.KeyCtrlC] = ActionQuit  // Also try to quit gracefully
	p.keymap[tcell.KeyF1] = ActionShowAbout

	// --- Modifier Keys ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlR] = ActionRunBuffer
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlK] = ActionCutLine
	ctrlMap[tcell.KeyCtrlU] = ActionPaste
	ctrlMap[tcell.KeyCtrlO] = ActionEnterCommandMode // Prompt for a file to open
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit

	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Rune Mappings (Special Case for :) ---
	p.runeKeymap[':'] = ActionEnterCommandMode // Trigger command mode
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// INPUT MODE IS NOT HANDLED HERE - the mode handler decides based on mode + action.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Check Modifier + Key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// tcell encodes Ctrl+letter as its own Key; some terminals still report
	// the Ctrl modifier alongside it. Check the Ctrl map by key alone too.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		if ctrlMap, ok := p.modKeymap[tcell.ModCtrl]; ok {
			if action, keyOk := ctrlMap[key]; keyOk {
				return ActionEvent{Action: action}
			}
		}
		mod &^= tcell.ModCtrl // Remove Ctrl modifier if the Key already implies it
	}

	// 2. Check simple Key mappings (no significant modifiers or handled above)
	if mod == tcell.ModNone || mod == tcell.ModShift { // Allow Shift with arrows etc.
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Check Rune mappings (like ':')
	if key == tcell.KeyRune && mod == tcell.ModNone {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
		// Default: Treat as rune insertion *request*.
		// The mode handler decides whether it goes to the buffer or command line.
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}
	// Shifted runes still insert
	if key == tcell.KeyRune && mod == tcell.ModShift {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	if key == tcell.KeyEnter {
		return ActionEvent{Action: ActionInsertNewLine} // Default intention is newline
	}

	// 4. No mapping found
	return ActionEvent{Action: ActionUnknown}
}
