package buffer

import "fmt"

// EditKind identifies the kind of an edit operation.
type EditKind uint8

const (
	// EditInsertRune inserts a single character at each caret.
	EditInsertRune EditKind = iota
	// EditInsertNewline splits the line at each caret.
	EditInsertNewline
	// EditDeleteBackward deletes the character before each caret (backspace).
	EditDeleteBackward
	// EditDeleteForward deletes the character under each caret (delete).
	EditDeleteForward
)

// EditOp is a content-changing operation applied at every caret.
// Rune is only meaningful for EditInsertRune.
type EditOp struct {
	Kind EditKind
	Rune rune
}

// String returns a human-readable representation of the edit.
func (op EditOp) String() string {
	switch op.Kind {
	case EditInsertRune:
		return fmt.Sprintf("Insert(%q)", op.Rune)
	case EditInsertNewline:
		return "InsertNewline"
	case EditDeleteBackward:
		return "DeleteBackward"
	case EditDeleteForward:
		return "DeleteForward"
	default:
		return fmt.Sprintf("EditOp(%d)", op.Kind)
	}
}

// MoveKind identifies the kind of a movement operation.
type MoveKind uint8

const (
	MoveCharLeft MoveKind = iota
	MoveCharRight
	MoveLineUp
	MoveLineDown
	MoveLineStart
	MoveLineEnd
	MovePageUp
	MovePageDown
)

// MoveOp is a caret movement operation. Page movements step by the height
// of the view the key was pressed in.
type MoveOp struct {
	Kind MoveKind
}

// ApplyEdit applies op at every caret and repositions the carets.
func (b *Buffer) ApplyEdit(op EditOp) {
	for i := range b.carets {
		b.carets[i] = b.applyEditAt(b.carets[i], op)
	}
}

func (b *Buffer) applyEditAt(p Position, op EditOp) Position {
	p = b.clamp(p)
	line := []rune(b.lines[p.Line])

	switch op.Kind {
	case EditInsertRune:
		out := make([]rune, 0, len(line)+1)
		out = append(out, line[:p.Col]...)
		out = append(out, op.Rune)
		out = append(out, line[p.Col:]...)
		b.lines[p.Line] = string(out)
		p.Col++

	case EditInsertNewline:
		head, tail := string(line[:p.Col]), string(line[p.Col:])
		b.lines[p.Line] = head
		rest := append([]string{tail}, b.lines[p.Line+1:]...)
		b.lines = append(b.lines[:p.Line+1], rest...)
		p.Line++
		p.Col = 0

	case EditDeleteBackward:
		if p.Col > 0 {
			b.lines[p.Line] = string(line[:p.Col-1]) + string(line[p.Col:])
			p.Col--
		} else if p.Line > 0 {
			// Join with the previous line.
			prevLen := b.lineLen(p.Line - 1)
			b.lines[p.Line-1] += b.lines[p.Line]
			b.lines = append(b.lines[:p.Line], b.lines[p.Line+1:]...)
			p.Line--
			p.Col = prevLen
		}

	case EditDeleteForward:
		if p.Col < len(line) {
			b.lines[p.Line] = string(line[:p.Col]) + string(line[p.Col+1:])
		} else if p.Line+1 < len(b.lines) {
			// Join with the next line.
			b.lines[p.Line] += b.lines[p.Line+1]
			b.lines = append(b.lines[:p.Line+1], b.lines[p.Line+2:]...)
		}
	}
	return p
}

// ApplyMovement applies op at every caret. viewHeight is the height of the
// view the movement originated in and drives page-sized steps.
func (b *Buffer) ApplyMovement(op MoveOp, viewHeight int) {
	for i := range b.carets {
		b.carets[i] = b.applyMovementAt(b.carets[i], op, viewHeight)
	}
}

func (b *Buffer) applyMovementAt(p Position, op MoveOp, viewHeight int) Position {
	p = b.clamp(p)

	switch op.Kind {
	case MoveCharLeft:
		if p.Col > 0 {
			p.Col--
		} else if p.Line > 0 {
			p.Line--
			p.Col = b.lineLen(p.Line)
		}
	case MoveCharRight:
		if p.Col < b.lineLen(p.Line) {
			p.Col++
		} else if p.Line+1 < len(b.lines) {
			p.Line++
			p.Col = 0
		}
	case MoveLineUp:
		p.Line--
	case MoveLineDown:
		p.Line++
	case MoveLineStart:
		p.Col = 0
	case MoveLineEnd:
		p.Col = b.lineLen(p.Line)
	case MovePageUp:
		p.Line -= viewHeight
	case MovePageDown:
		p.Line += viewHeight
	}
	return b.clamp(p)
}
