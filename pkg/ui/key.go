package ui

import (
	"fmt"
	"strings"
)

// Mod represents a set of modifier keys.
type Mod uint32

// Values for Mod.
const (
	// None is the empty set of modifiers.
	None Mod = 0
	// Shift is the shift modifier. For letters it encodes the upper case; for
	// other keys it is only reported when the terminal sends a distinct
	// sequence for the shifted key (e.g. Shift-F1).
	Shift Mod = 1 << (iota - 1)
	// Alt is the alt modifier, traditionally known as the meta modifier.
	Alt
	Ctrl
)

// With returns the union of m and other.
func (m Mod) With(other Mod) Mod { return m | other }

// Contains reports whether all modifiers in other are present in m. It is
// always false when other is None.
func (m Mod) Contains(other Mod) bool {
	return other != None && m&other == other
}

// String renders the modifiers as space-separated names, in the order SHIFT,
// CTRL, ALT. It returns an empty string for None.
func (m Mod) String() string {
	var names []string
	if m&Shift != 0 {
		names = append(names, "SHIFT")
	}
	if m&Ctrl != 0 {
		names = append(names, "CTRL")
	}
	if m&Alt != 0 {
		names = append(names, "ALT")
	}
	return strings.Join(names, " ")
}

// modifierByName maps a name to an modifier. It is used for parsing keys where
// the modifier string is first turned to lower case, so that all of C, c,
// CTRL, Ctrl and ctrl can represent the Ctrl modifier.
var modifierByName = map[string]Mod{
	"s": Shift, "shift": Shift,
	"a": Alt, "alt": Alt,
	"m": Alt, "meta": Alt,
	"c": Ctrl, "ctrl": Ctrl,
}

// ParseMod parses the output of Mod.String. Names are case-insensitive and may
// also be separated by "-" or "+".
func ParseMod(s string) (Mod, error) {
	var m Mod
	for _, name := range strings.FieldsFunc(s, isModSep) {
		mod, ok := modifierByName[strings.ToLower(name)]
		if !ok {
			return None, fmt.Errorf("bad modifier: %q", name)
		}
		m |= mod
	}
	return m, nil
}

func isModSep(r rune) bool { return r == ' ' || r == '-' || r == '+' }

// Key is a key code together with the modifiers pressed with it.
type Key struct {
	Code KeyCode
	Mod  Mod
}

// MakeKey constructs a Key from a key code and any number of modifiers.
func MakeKey(c KeyCode, mods ...Mod) Key {
	var m Mod
	for _, mod := range mods {
		m |= mod
	}
	return Key{c, m}
}

func (k Key) String() string {
	var sb strings.Builder
	if k.Mod&Ctrl != 0 {
		sb.WriteString("Ctrl-")
	}
	if k.Mod&Alt != 0 {
		sb.WriteString("Alt-")
	}
	if k.Mod&Shift != 0 {
		sb.WriteString("Shift-")
	}
	if r := k.Code.Rune(); r != 0 {
		sb.WriteRune(r)
	} else {
		sb.WriteString(k.Code.String())
	}
	return sb.String()
}

// ParseKey parses a key. The syntax is:
//
//	Key = { Mod ('+' | '-') } BareKey
//
//	BareKey = KeyCodeName | SingleCharacter
//
// An upper-case letter as the bare key implies the Shift modifier, so "A" and
// "Shift-a" are the same key.
func ParseKey(s string) (Key, error) {
	var k Key
	for len(s) > 1 {
		i := strings.IndexAny(s, "+-")
		if i <= 0 {
			break
		}
		modname := strings.ToLower(s[:i])
		mod, ok := modifierByName[modname]
		if !ok {
			return Key{}, fmt.Errorf("bad modifier: %q", modname)
		}
		k.Mod |= mod
		s = s[i+1:]
	}

	code, ok := lookupKeyCode(s)
	if !ok {
		return Key{}, fmt.Errorf("bad key: %q", s)
	}
	k.Code = code
	if len(s) == 1 && 'A' <= s[0] && s[0] <= 'Z' {
		k.Mod |= Shift
	}
	return k, nil
}
