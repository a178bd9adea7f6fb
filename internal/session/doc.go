// Package session implements the backend core of the editor: a single-writer
// actor that owns every open document and view, interprets protocol commands
// from the frontend one at a time, and pushes view-update notifications back
// through an outbound Notifier.
//
// The session processes each command to completion, including any outbound
// notification and any file I/O, before accepting the next one. Commands are
// therefore observed to execute atomically and in arrival order, and the
// frontend sees notifications in the same order the commands were issued.
//
// Per-command failures (unknown ids, I/O errors) are logged at the dispatch
// boundary and never terminate the session loop; failed lookups happen
// before any mutation, so a failed command leaves no partial state behind.
package session
