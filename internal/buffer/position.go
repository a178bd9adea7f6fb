package buffer

import "fmt"

// Position represents a caret position within a document.
// Both Line and Col are 0-indexed. Col is measured in runes from the start
// of the line and may equal the line length (caret past the last rune).
type Position struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Col != other.Col {
		if p.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}
