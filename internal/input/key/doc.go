// Package key defines structured keyboard events as they arrive from the
// frontend over the protocol.
//
// An Event pairs a Key with optional modifiers; character keys use KeyRune
// with the character stored in the Rune field. Events carry a JSON wire
// form (lower-case key names, modifier list) and can also be built from
// compact specification strings like "a", "<C-s>" or "Enter" in keymaps
// and tests.
package key
