// internal/types/edit.go
package types

// EditInfo describes a single buffer mutation for event subscribers.
// Start is where the change began; OldEnd is the end of the replaced
// range before the edit, NewEnd the end of the inserted text after it.
// For a pure insert OldEnd == Start; for a pure delete NewEnd == Start.
type EditInfo struct {
	Start  Position
	OldEnd Position
	NewEnd Position
}
