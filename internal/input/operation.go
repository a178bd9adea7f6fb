package input

import "github.com/druskus20/bazed/internal/buffer"

// Operation is a high-level editor operation produced by interpreting a key
// event. It is a closed union: SaveOp, EditOp and MoveOp are the only
// implementations.
type Operation interface {
	isOperation()
}

// SaveOp requests that the document be written to its source path.
type SaveOp struct{}

// EditOp wraps a content-changing buffer operation.
type EditOp struct {
	Op buffer.EditOp
}

// MoveOp wraps a caret movement buffer operation.
type MoveOp struct {
	Op buffer.MoveOp
}

func (SaveOp) isOperation() {}
func (EditOp) isOperation() {}
func (MoveOp) isOperation() {}
