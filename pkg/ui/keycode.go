// Package ui contains the types that describe keyboard input independent of
// the platform it came from.
package ui

import "strings"

// KeyCode identifies a key on the keyboard. Letters are case-insensitive; the
// case of a letter is expressed with the Shift modifier.
type KeyCode uint32

// Values for KeyCode. The order is significant: printable keys come first in
// ASCII order, followed by the special keys.
const (
	Unknown KeyCode = iota

	ExclamationMark
	QuotationMark
	Hashtag
	Dollar
	Percent
	Ampersand
	Apostrophe
	OpeningParenthesis
	ClosingParenthesis
	Star
	Plus
	Comma
	Minus
	Dot
	Slash

	Number0
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Number9

	Colon
	Semicolon
	LeftAngleBracket
	EqualSign
	RightAngleBracket
	QuestionMark
	At
	LeftSquareBracket
	Backslash
	RightSquareBracket
	Caret
	Underscore
	GraveAccent

	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	LeftCurlyBracket
	VerticalBar
	RightCurlyBracket
	Tilde

	CursorUp
	CursorDown
	CursorLeft
	CursorRight

	Escape
	Space
	Enter
	Backspace
	Delete
	End
	PageDown
	PageUp
	Home
	Insert

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// EndOfKeyCodes bounds iteration over all key codes. It never identifies
	// a real key.
	EndOfKeyCodes
)

var keyCodeNames = [...]string{
	Unknown: "UNKNOWN",

	ExclamationMark:    "EXCLAMATION_MARK",
	QuotationMark:      "QUOTATION_MARK",
	Hashtag:            "HASHTAG_SIGN",
	Dollar:             "DOLLAR_SIGN",
	Percent:            "PERCENT_SIGN",
	Ampersand:          "AMPERSAND",
	Apostrophe:         "APOSTROPHE",
	OpeningParenthesis: "OPENING_PARENTHESIS",
	ClosingParenthesis: "CLOSING_PARENTHESIS",
	Star:               "STAR",
	Plus:               "PLUS",
	Comma:              "COMMA",
	Minus:              "MINUS",
	Dot:                "DOT",
	Slash:              "RIGHT_SLASH",

	Number0: "NUMBER_0", Number1: "NUMBER_1", Number2: "NUMBER_2",
	Number3: "NUMBER_3", Number4: "NUMBER_4", Number5: "NUMBER_5",
	Number6: "NUMBER_6", Number7: "NUMBER_7", Number8: "NUMBER_8",
	Number9: "NUMBER_9",

	Colon:              "COLON",
	Semicolon:          "SEMICOLON",
	LeftAngleBracket:   "LEFT_ANGLE_BRACKET",
	EqualSign:          "EQUAL_SIGN",
	RightAngleBracket:  "RIGHT_ANGLE_BRACKET",
	QuestionMark:       "QUESTION_MARK",
	At:                 "AT",
	LeftSquareBracket:  "LEFT_SQUARE_BRACKET",
	Backslash:          "BACK_SLASH",
	RightSquareBracket: "RIGHT_SQUARE_BRACKET",
	Caret:              "CARET",
	Underscore:         "UNDERSCORE_SIGN",
	GraveAccent:        "GRAVE_ACCENT_SIGN",

	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H", I: "I",
	J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P", Q: "Q", R: "R",
	S: "S", T: "T", U: "U", V: "V", W: "W", X: "X", Y: "Y", Z: "Z",

	LeftCurlyBracket:  "LEFT_CURLY_BRACKET",
	VerticalBar:       "VERTICAL_BAR",
	RightCurlyBracket: "RIGHT_CURLY_BRACKET",
	Tilde:             "TILDA",

	CursorUp:    "CURSOR_UP",
	CursorDown:  "CURSOR_DOWN",
	CursorLeft:  "CURSOR_LEFT",
	CursorRight: "CURSOR_RIGHT",

	Escape:    "ESCAPE",
	Space:     "SPACE",
	Enter:     "ENTER",
	Backspace: "BACK_SPACE",
	Delete:    "DELETE_KEY",
	End:       "END",
	PageDown:  "PG_DOWN",
	PageUp:    "PG_UP",
	Home:      "HOME",
	Insert:    "INSERT",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",

	EndOfKeyCodes: "END_OF_KEY_CODE_ENUM",
}

var keyCodeByName = map[string]KeyCode{}

func init() {
	for i, name := range keyCodeNames {
		keyCodeByName[name] = KeyCode(i)
	}
}

// String returns the stable name of the key code. Out-of-range values render
// as UNKNOWN.
func (c KeyCode) String() string {
	if c > EndOfKeyCodes {
		return keyCodeNames[Unknown]
	}
	return keyCodeNames[c]
}

// Next returns the key code that follows c, saturating at EndOfKeyCodes.
func (c KeyCode) Next() KeyCode {
	if c >= EndOfKeyCodes {
		return EndOfKeyCodes
	}
	return c + 1
}

// Valid reports whether c identifies a real key.
func (c KeyCode) Valid() bool { return Unknown < c && c < EndOfKeyCodes }

// KeyCodes returns all key codes that identify real keys, in order.
func KeyCodes() []KeyCode {
	codes := make([]KeyCode, 0, EndOfKeyCodes-1)
	for c := Unknown.Next(); c != EndOfKeyCodes; c = c.Next() {
		codes = append(codes, c)
	}
	return codes
}

// ParseKeyCode returns the key code with the given name. It returns Unknown if
// no key code has that name.
func ParseKeyCode(name string) KeyCode {
	if c, ok := keyCodeByName[name]; ok && c != EndOfKeyCodes {
		return c
	}
	return Unknown
}

// Rune returns the printable ASCII character of the key, using lower case for
// letters, or 0 if the key doesn't produce one. Space is not considered
// printable.
func (c KeyCode) Rune() rune {
	switch {
	case ExclamationMark <= c && c <= Slash:
		return '!' + rune(c-ExclamationMark)
	case Number0 <= c && c <= At:
		return '0' + rune(c-Number0)
	case LeftSquareBracket <= c && c <= GraveAccent:
		return '[' + rune(c-LeftSquareBracket)
	case A <= c && c <= Z:
		return 'a' + rune(c-A)
	case LeftCurlyBracket <= c && c <= Tilde:
		return '{' + rune(c-LeftCurlyBracket)
	}
	return 0
}

// KeyCodeOf returns the key code for a printable ASCII character. Both cases
// of a letter map to the same key code.
func KeyCodeOf(r rune) KeyCode {
	switch {
	case '!' <= r && r <= '/':
		return ExclamationMark + KeyCode(r-'!')
	case '0' <= r && r <= '@':
		return Number0 + KeyCode(r-'0')
	case 'A' <= r && r <= 'Z':
		return A + KeyCode(r-'A')
	case '[' <= r && r <= '`':
		return LeftSquareBracket + KeyCode(r-'[')
	case 'a' <= r && r <= 'z':
		return A + KeyCode(r-'a')
	case '{' <= r && r <= '~':
		return LeftCurlyBracket + KeyCode(r-'{')
	}
	return Unknown
}

// lookupKeyCode is like ParseKeyCode, but also accepts single characters and
// names in any case. It is used when parsing keys written by users.
func lookupKeyCode(s string) (KeyCode, bool) {
	if len(s) == 1 {
		if c := KeyCodeOf(rune(s[0])); c != Unknown {
			return c, true
		}
		if s == " " {
			return Space, true
		}
	}
	name := strings.ToUpper(s)
	if c, ok := keyCodeAliases[name]; ok {
		return c, true
	}
	if c := ParseKeyCode(name); c != Unknown {
		return c, true
	}
	return Unknown, false
}

// Short names that read better in configuration files.
var keyCodeAliases = map[string]KeyCode{
	"UP": CursorUp, "DOWN": CursorDown, "LEFT": CursorLeft, "RIGHT": CursorRight,
	"ESC": Escape, "BACKSPACE": Backspace, "DELETE": Delete,
	"PAGEUP": PageUp, "PAGEDOWN": PageDown,
	"CURSORUP": CursorUp, "CURSORDOWN": CursorDown,
	"CURSORLEFT": CursorLeft, "CURSORRIGHT": CursorRight,
}
