package input

import (
	"github.com/druskus20/bazed/internal/buffer"
	"github.com/druskus20/bazed/internal/input/key"
)

// movementKeys maps special keys to their movement operations.
var movementKeys = map[key.Key]buffer.MoveKind{
	key.KeyLeft:     buffer.MoveCharLeft,
	key.KeyRight:    buffer.MoveCharRight,
	key.KeyUp:       buffer.MoveLineUp,
	key.KeyDown:     buffer.MoveLineDown,
	key.KeyHome:     buffer.MoveLineStart,
	key.KeyEnd:      buffer.MoveLineEnd,
	key.KeyPageUp:   buffer.MovePageUp,
	key.KeyPageDown: buffer.MovePageDown,
}

// Interpret maps a key event to an editor operation. It is a pure function:
// the same event always yields the same result. The second return value is
// false when the event has no binding, in which case the event should be
// ignored without side effects.
func Interpret(ev key.Event) (Operation, bool) {
	// Chorded bindings.
	if ev.IsRune() && ev.Modifiers.HasCtrl() {
		switch ev.Rune {
		case 's':
			return SaveOp{}, true
		}
		return nil, false
	}

	// Plain character insertion. Shift is part of the character itself.
	if ev.IsChar() && !ev.IsModified() {
		return EditOp{Op: buffer.EditOp{Kind: buffer.EditInsertRune, Rune: ev.Rune}}, true
	}

	if ev.IsModified() {
		return nil, false
	}

	switch ev.Key {
	case key.KeyEnter:
		return EditOp{Op: buffer.EditOp{Kind: buffer.EditInsertNewline}}, true
	case key.KeyBackspace:
		return EditOp{Op: buffer.EditOp{Kind: buffer.EditDeleteBackward}}, true
	case key.KeyDelete:
		return EditOp{Op: buffer.EditOp{Kind: buffer.EditDeleteForward}}, true
	}

	if kind, ok := movementKeys[ev.Key]; ok {
		return MoveOp{Op: buffer.MoveOp{Kind: kind}}, true
	}
	return nil, false
}
