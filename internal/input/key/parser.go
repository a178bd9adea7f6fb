package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// parseNames maps the spec aliases accepted by Parse to keys.
var parseNames = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"insert":    KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pagedown":  KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

// Parse builds an Event from a compact key specification.
//
// Accepted forms:
//
//	"a"       single character
//	"Enter"   special key by name (case-insensitive)
//	"<C-s>"   angle-bracket notation with C- (ctrl), A- (alt),
//	          S- (shift), M- (meta) prefixes
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, fmt.Errorf("empty key spec")
	}

	// Single character.
	if r, size := utf8.DecodeRuneInString(spec); size == len(spec) {
		return NewRuneEvent(r, ModNone), nil
	}

	// Angle-bracket notation.
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracketed(spec[1 : len(spec)-1])
	}

	// Named special key.
	if k, ok := parseNames[strings.ToLower(spec)]; ok {
		return NewSpecialEvent(k, ModNone), nil
	}
	return Event{}, fmt.Errorf("invalid key spec %q", spec)
}

func parseBracketed(body string) (Event, error) {
	parts := strings.Split(body, "-")
	var mods Modifier
	for len(parts) > 1 {
		switch strings.ToUpper(parts[0]) {
		case "C":
			mods = mods.With(ModCtrl)
		case "A":
			mods = mods.With(ModAlt)
		case "S":
			mods = mods.With(ModShift)
		case "M", "D":
			mods = mods.With(ModMeta)
		default:
			return Event{}, fmt.Errorf("unknown modifier prefix %q", parts[0])
		}
		parts = parts[1:]
	}

	name := parts[0]
	if name == "" {
		return Event{}, fmt.Errorf("empty key name in bracketed spec")
	}
	if r, size := utf8.DecodeRuneInString(name); size == len(name) {
		return NewRuneEvent(r, mods), nil
	}
	if k, ok := parseNames[strings.ToLower(name)]; ok {
		return NewSpecialEvent(k, mods), nil
	}
	return Event{}, fmt.Errorf("unknown key name %q", name)
}

// MustParse is like Parse but panics on error. For use in tables and tests.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}
