// Package input maps structured key events to high-level editor operations.
//
// The mapping is a pure function from one key event to at most one
// Operation; events without a binding are reported as unrecognized and the
// caller ignores them. Operations form a closed union over the three things
// a key press can do: save the document, edit the buffer, or move carets.
package input
