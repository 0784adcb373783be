// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/scribe-editor/scribe/internal/types"
)

// SliceBuffer stores the document as a slice of line byte slices.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	encoding string
	modified bool // Track if buffer has unsaved changes
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		// Start with a single empty line, common for new files
		lines:    [][]byte{[]byte("")},
		encoding: EncodingUTF8,
		modified: false,
	}
}

// Load reads a file into the buffer, replacing existing content.
// The content is decoded as UTF-8 with a single Latin-1 fallback attempt.
// On read or decode failure the current buffer contents are left untouched.
func (sb *SliceBuffer) Load(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			sb.encoding = EncodingUTF8
			sb.modified = false
			return nil
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}

	decoded, encName, err := decodeContent(raw)
	if err != nil {
		return fmt.Errorf("failed to decode file '%s': %w", filePath, err)
	}

	newLines := bytes.Split(decoded, []byte("\n"))
	// A trailing newline produces a final empty element; drop it so the
	// visible line count matches what the user expects.
	if len(newLines) > 1 && len(newLines[len(newLines)-1]) == 0 {
		newLines = newLines[:len(newLines)-1]
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	for i, line := range newLines {
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines[i] = lineCopy
	}

	sb.lines = newLines
	sb.filePath = filePath
	sb.encoding = encName
	sb.modified = false
	return nil
}

// Lines returns the underlying line slices.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines in the buffer.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the bytes of a single line.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes reassembles the buffer into a single newline-joined byte slice.
func (sb *SliceBuffer) Bytes() []byte {
	var buffer bytes.Buffer
	for i, line := range sb.lines {
		buffer.Write(line)
		if i < len(sb.lines)-1 {
			buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

// Save writes the buffer content as UTF-8 to the stored filePath,
// overwriting any existing file without confirmation.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" { // Allow overriding path during save
		path = filePath
	}
	if path == "" {
		// Unbound buffer: derive a timestamped name instead of refusing
		path = DefaultSaveName()
	}

	content := sb.Bytes()
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	// Update internal path if saved to a new location
	sb.filePath = path
	sb.encoding = EncodingUTF8
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// FilePath returns the path the buffer is bound to ("" when unbound).
func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// Encoding returns the encoding the current content was decoded with.
func (sb *SliceBuffer) Encoding() string {
	return sb.encoding
}

// --- Buffer Modification Methods ---

// Insert inserts text at a given position. Handles single/multiple lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.EditInfo, error) {
	if len(text) == 0 {
		return types.EditInfo{}, nil
	}

	validPos, byteOffset, err := sb.validatePosition(pos)
	if err != nil {
		return types.EditInfo{}, fmt.Errorf("invalid insert position: %w", err)
	}

	sb.modified = true

	currentLine := sb.lines[validPos.Line]
	insertLines := bytes.Split(text, []byte("\n"))

	tail := make([]byte, len(currentLine[byteOffset:]))
	copy(tail, currentLine[byteOffset:])

	sb.lines[validPos.Line] = append(currentLine[:byteOffset], insertLines[0]...)

	edit := types.EditInfo{Start: validPos, OldEnd: validPos}
	if len(insertLines) > 1 {
		newLines := make([][]byte, len(insertLines)-1)
		for i := 1; i < len(insertLines); i++ {
			lineCopy := make([]byte, len(insertLines[i]))
			copy(lineCopy, insertLines[i])
			newLines[i-1] = lineCopy
		}
		lastLen := utf8.RuneCount(newLines[len(newLines)-1])
		newLines[len(newLines)-1] = append(newLines[len(newLines)-1], tail...)
		if validPos.Line+1 > len(sb.lines) {
			sb.lines = append(sb.lines, newLines...)
		} else {
			sb.lines = append(sb.lines[:validPos.Line+1], append(newLines, sb.lines[validPos.Line+1:]...)...)
		}
		edit.NewEnd = types.Position{Line: validPos.Line + len(newLines), Col: lastLen}
	} else {
		sb.lines[validPos.Line] = append(sb.lines[validPos.Line], tail...)
		edit.NewEnd = types.Position{Line: validPos.Line, Col: validPos.Col + utf8.RuneCount(insertLines[0])}
	}

	return edit, nil
}

// Delete removes text within a given range (start inclusive, end exclusive).
func (sb *SliceBuffer) Delete(start, end types.Position) (types.EditInfo, error) {
	if start == end {
		return types.EditInfo{}, nil
	}

	vStart, vEnd, startOffset, endOffset, err := sb.validateAndGetByteOffsets(start, end)
	if err != nil {
		return types.EditInfo{}, fmt.Errorf("invalid delete range: %w", err)
	}

	// If validation resulted in start == end after clamping, do nothing
	if vStart == vEnd && startOffset == endOffset {
		return types.EditInfo{}, nil
	}

	sb.modified = true
	edit := types.EditInfo{Start: vStart, OldEnd: vEnd, NewEnd: vStart}

	startLineBytes := sb.lines[vStart.Line]

	if vStart.Line == vEnd.Line {
		// Deletion within a single line
		if endOffset > len(startLineBytes) {
			endOffset = len(startLineBytes)
		}
		if startOffset > len(startLineBytes) {
			startOffset = len(startLineBytes)
		}
		if startOffset > endOffset {
			startOffset = endOffset
		}
		sb.lines[vStart.Line] = append(startLineBytes[:startOffset], startLineBytes[endOffset:]...)
	} else {
		// Deletion spans multiple lines
		endLineBytes := sb.lines[vEnd.Line]
		startPart := startLineBytes[:startOffset]
		endPart := endLineBytes[endOffset:]

		sb.lines[vStart.Line] = append(startPart, endPart...)

		firstLineToRemove := vStart.Line + 1
		lastLineToRemove := vEnd.Line

		if firstLineToRemove <= lastLineToRemove && lastLineToRemove < len(sb.lines) {
			if lastLineToRemove+1 >= len(sb.lines) {
				sb.lines = sb.lines[:firstLineToRemove]
			} else {
				sb.lines = append(sb.lines[:firstLineToRemove], sb.lines[lastLineToRemove+1:]...)
			}
		}
	}

	// Buffer always keeps at least one line
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}

	return edit, nil
}

// validateAndGetByteOffsets validates start and end positions and returns their
// byte offsets, ensuring start <= end.
func (sb *SliceBuffer) validateAndGetByteOffsets(start, end types.Position) (vStart types.Position, vEnd types.Position, startOffset int, endOffset int, err error) {
	if start.Line > end.Line || (start.Line == end.Line && start.Col > end.Col) {
		start, end = end, start
	}

	var startErr, endErr error
	vStart, startOffset, startErr = sb.validatePosition(start)
	vEnd, endOffset, endErr = sb.validatePosition(end)

	if startErr != nil || endErr != nil {
		return vStart, vEnd, 0, 0, fmt.Errorf("invalid range: startErr=%v, endErr=%v", startErr, endErr)
	}

	// If positions were clamped onto the same line, recompute the end offset
	// against that line so the offsets stay consistent.
	if vStart.Line == vEnd.Line {
		_, endOffset, _ = sb.validatePositionOnLine(vEnd.Col, vStart.Line)
		if startOffset > endOffset {
			startOffset = endOffset
		}
	}

	return vStart, vEnd, startOffset, endOffset, nil
}

// validatePositionOnLine returns the clamped column and byte offset for a
// column on a specific line.
func (sb *SliceBuffer) validatePositionOnLine(col int, lineIndex int) (validCol int, byteOffset int, err error) {
	if lineIndex < 0 || lineIndex >= len(sb.lines) {
		return 0, 0, fmt.Errorf("line index %d out of bounds", lineIndex)
	}
	currentLine := sb.lines[lineIndex]
	byteOff := 0
	runeCount := 0
	for i := 0; i < len(currentLine); {
		if runeCount == col {
			break
		}
		_, size := utf8.DecodeRune(currentLine[i:])
		byteOff += size
		runeCount++
		i += size
	}
	if runeCount < col {
		col = runeCount
		byteOff = len(currentLine)
	}
	return col, byteOff, nil
}

// validatePosition clamps a position into the buffer and returns its byte offset.
func (sb *SliceBuffer) validatePosition(pos types.Position) (validPos types.Position, byteOffset int, err error) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
		if pos.Line < 0 { // Buffer was empty?
			sb.lines = append(sb.lines, []byte(""))
			pos.Line = 0
		}
	}

	validLine := pos.Line
	var validCol int
	validCol, byteOffset, err = sb.validatePositionOnLine(pos.Col, validLine)
	if err != nil {
		return types.Position{}, 0, err
	}

	return types.Position{Line: validLine, Col: validCol}, byteOffset, nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
