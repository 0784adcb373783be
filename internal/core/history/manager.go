package history

import (
	"fmt"
	"sync"

	"github.com/scribe-editor/scribe/internal/buffer"
	"github.com/scribe-editor/scribe/internal/event"
	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface defines the methods the history manager needs from the editor.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	SetCursor(types.Position)
	GetEventManager() *event.Manager
	ScrollToCursor()
}

// Manager handles the undo/redo stack.
type Manager struct {
	editor       EditorInterface
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:       editor,
		changes:      make([]Change, 0, maxHistory),
		currentIndex: 0,
		maxHistory:   maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	// If current index isn't at the end, truncate the redo history
	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}

	m.changes = append(m.changes, change)

	// Limit history size (FIFO eviction of the oldest change)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}

	m.currentIndex = len(m.changes)

	logger.DebugTagf("history", "Recorded change %v. Index: %d, Count: %d", change.Type, m.currentIndex, len(m.changes))
}

// Undo reverts the last recorded change.
func (m *Manager) Undo() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex <= 0 {
		return false, nil // Nothing to undo
	}

	m.currentIndex--
	changeToUndo := m.changes[m.currentIndex]

	buf := m.editor.GetBuffer()
	var editInfo types.EditInfo
	var err error

	// Apply the inverse operation
	switch changeToUndo.Type {
	case InsertAction:
		// Undo an insert by deleting the inserted range
		editInfo, err = buf.Delete(changeToUndo.StartPosition, changeToUndo.EndPosition)
		if err != nil {
			m.currentIndex++ // Revert index change on error
			return false, fmt.Errorf("undo failed: %w", err)
		}

	case DeleteAction:
		// Undo a delete by inserting the deleted text back
		editInfo, err = buf.Insert(changeToUndo.StartPosition, changeToUndo.Text)
		if err != nil {
			m.currentIndex++
			return false, fmt.Errorf("undo failed: %w", err)
		}
	}

	m.editor.SetCursor(changeToUndo.CursorBefore)

	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: editInfo})
	}

	return true, nil
}

// Redo reapplies the last undone change.
func (m *Manager) Redo() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex >= len(m.changes) {
		return false, nil // Nothing to redo
	}

	changeToRedo := m.changes[m.currentIndex]

	buf := m.editor.GetBuffer()
	var editInfo types.EditInfo
	var err error
	var finalCursor types.Position

	// Apply the original operation
	switch changeToRedo.Type {
	case InsertAction:
		editInfo, err = buf.Insert(changeToRedo.StartPosition, changeToRedo.Text)
		if err == nil {
			finalCursor = changeToRedo.EndPosition
		}
	case DeleteAction:
		editInfo, err = buf.Delete(changeToRedo.StartPosition, changeToRedo.EndPosition)
		if err == nil {
			finalCursor = changeToRedo.StartPosition
		}
	}

	if err != nil {
		// Don't advance index if redo failed
		return false, fmt.Errorf("redo failed: %w", err)
	}

	m.editor.SetCursor(finalCursor)
	m.editor.ScrollToCursor()

	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: editInfo})
	}

	m.currentIndex++
	return true, nil
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changes = m.changes[:0]
	m.currentIndex = 0
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.changes)
}
