package buffer

import (
	"io"
	"strings"
)

// Editing-mode labels reported to the frontend.
const (
	ModeNormal = "normal"
	ModeInsert = "insert"
)

// Buffer holds the text of one document as a slice of lines, together with
// the carets positioned within it and the current editing-mode label.
//
// Invariants: the buffer always contains at least one line (possibly empty),
// there is always at least one caret, and every caret addresses a valid
// position with Col <= the rune length of its line.
type Buffer struct {
	lines  []string
	carets []Position
	mode   string
}

// New creates an empty buffer with a single caret at the origin.
func New() *Buffer {
	return &Buffer{
		lines:  []string{""},
		carets: []Position{{}},
		mode:   ModeInsert,
	}
}

// FromString creates a buffer with initial content.
// Line endings are normalized to LF.
func FromString(s string) *Buffer {
	b := New()
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	b.lines = strings.Split(s, "\n")
	return b
}

// FromReader creates a buffer from an io.Reader.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(data)), nil
}

// String returns the full buffer content with LF line endings.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines in the buffer. Never zero.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the content of the given line, or the empty string if the
// index is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Lines returns up to count lines starting at first, clamped to the buffer
// bounds. The returned slice is a copy, safe to retain, and never nil: an
// out-of-range request yields an empty slice so the wire form stays an
// array.
func (b *Buffer) Lines(first, count int) []string {
	if first < 0 {
		first = 0
	}
	if first >= len(b.lines) || count <= 0 {
		return []string{}
	}
	end := first + count
	if end > len(b.lines) {
		end = len(b.lines)
	}
	out := make([]string, end-first)
	copy(out, b.lines[first:end])
	return out
}

// Carets returns a copy of the current caret positions.
func (b *Buffer) Carets() []Position {
	out := make([]Position, len(b.carets))
	copy(out, b.carets)
	return out
}

// Mode returns the current editing-mode label.
func (b *Buffer) Mode() string {
	return b.mode
}

// SetMode sets the editing-mode label reported to the frontend.
func (b *Buffer) SetMode(mode string) {
	b.mode = mode
}

// lineLen returns the rune length of the given line.
func (b *Buffer) lineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len([]rune(b.lines[i]))
}

// clamp forces a position into the valid range of the buffer.
func (b *Buffer) clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if max := b.lineLen(p.Line); p.Col > max {
		p.Col = max
	}
	return p
}
