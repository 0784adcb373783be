// internal/app/commands.go
package app

import (
	"fmt"

	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/theme"
)

// registerCommands wires the built-in ':' commands.
func (a *App) registerCommands() {
	register := func(name string, fn func(args []string) error) {
		if err := a.modeHandler.RegisterCommand(name, fn); err != nil {
			logger.Warnf("App: failed to register command '%s': %v", name, err)
		}
	}

	openFile := func(path string) error {
		if err := a.editor.LoadFile(path); err != nil {
			return fmt.Errorf("cannot open '%s': %w", path, err)
		}
		buf := a.editor.GetBuffer()
		a.statusBar.SetTemporaryMessage("Opened %s (%s)", buf.FilePath(), buf.Encoding())
		return nil
	}

	// Opening replaces the buffer and clears the undo history, so a modified
	// buffer refuses a plain open.
	openCmd := func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: open <path>")
		}
		if a.editor.GetBuffer().IsModified() {
			return fmt.Errorf("unsaved changes (use :w first, or :open! to discard)")
		}
		return openFile(args[0])
	}
	register("open", openCmd)
	register("e", openCmd)

	forceOpenCmd := func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: open! <path>")
		}
		return openFile(args[0])
	}
	register("open!", forceOpenCmd)
	register("e!", forceOpenCmd)

	register("w", func(args []string) error {
		var err error
		if len(args) > 0 {
			err = a.editor.SaveBuffer(args[0])
		} else {
			err = a.editor.SaveBuffer()
		}
		if err != nil {
			return err
		}
		a.statusBar.SetTemporaryMessage("Buffer saved to %s", a.editor.GetBuffer().FilePath())
		return nil
	})

	register("run", func(args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("usage: run")
		}
		a.startRun()
		return nil
	})

	register("about", func(args []string) error {
		a.modeHandler.ShowAbout()
		return nil
	})

	register("theme", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: theme <path.toml>")
		}
		loaded, err := theme.LoadThemeFromFile(args[0])
		if err != nil {
			return err
		}
		theme.SetCurrentTheme(loaded)
		a.activeTheme = loaded
		a.statusBar.SetTemporaryMessage("Theme set to %s", loaded.Name)
		return nil
	})

	register("q", func(args []string) error {
		if a.editor.GetBuffer().IsModified() {
			return fmt.Errorf("unsaved changes (use :q! to force quit)")
		}
		a.modeHandler.SignalQuit()
		return nil
	})

	register("q!", func(args []string) error {
		a.modeHandler.SignalQuit()
		return nil
	})
}
