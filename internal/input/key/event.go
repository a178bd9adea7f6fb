package key

import (
	"encoding/json"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Event represents a single key press received from the frontend.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// String returns a canonical representation like "a", "ctrl+s" or "enter".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// wireEvent is the JSON wire form of an Event.
type wireEvent struct {
	Modifiers []string `json:"modifiers,omitempty"`
	Key       string   `json:"key"`
}

// MarshalJSON implements json.Marshaler using the protocol wire form.
func (e Event) MarshalJSON() ([]byte, error) {
	w := wireEvent{Modifiers: e.Modifiers.Names()}
	switch {
	case e.Key == KeyRune:
		w.Key = string(e.Rune)
	case e.Key.IsSpecial():
		w.Key = e.Key.String()
	default:
		return nil, fmt.Errorf("key event has no key")
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler for the protocol wire form.
// Single-rune key values are character keys; anything else must be a known
// special key name.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var mods Modifier
	for _, name := range w.Modifiers {
		mod, ok := ModifierByName(name)
		if !ok {
			return fmt.Errorf("unknown key modifier %q", name)
		}
		mods = mods.With(mod)
	}

	if r, size := utf8.DecodeRuneInString(w.Key); size == len(w.Key) && r != utf8.RuneError {
		*e = NewRuneEvent(r, mods)
		return nil
	}
	k, ok := KeyByName(w.Key)
	if !ok {
		return fmt.Errorf("unknown key %q", w.Key)
	}
	*e = NewSpecialEvent(k, mods)
	return nil
}
