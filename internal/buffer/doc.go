// Package buffer provides the line-based text buffer behind each open
// document. A buffer owns its content, the caret positions within it, and
// the current editing-mode label.
//
// The buffer package provides:
//
//   - Line-oriented reads for building view updates (visible slices)
//   - Edit operations (insert, newline, delete) applied at every caret
//   - Movement operations that reposition carets within valid bounds
//   - Serialization of the full content for save and open notifications
//
// Buffers are not safe for concurrent use. Each buffer is owned by exactly
// one document inside the session actor, which serializes all access.
package buffer
