package kbd

import (
	"strconv"

	"github.com/elves/keyhandler/pkg/ui"
)

// TerminalTable maps the byte sequences sent by xterm-compatible terminals to
// keys.
var TerminalTable = newTable(xtermEntries())

// The modifier parameter of CSI sequences, for the modifiers that can be
// detected unambiguously. Combinations are not listed and decode to Unknown.
var xtermModParams = []struct {
	param int
	mod   ui.Mod
}{
	{2, ui.Shift},
	{3, ui.Alt},
	{5, ui.Ctrl},
}

// Keys sent as CSI or SS3 followed by a single letter.
var xtermLetterKeys = []struct {
	letter byte
	code   ui.KeyCode
}{
	{'A', ui.CursorUp}, {'B', ui.CursorDown},
	{'C', ui.CursorRight}, {'D', ui.CursorLeft},
	{'H', ui.Home}, {'F', ui.End},
}

// Function keys sent as SS3 followed by a letter when unmodified, and as CSI
// "1;m" followed by the same letter when modified.
var xtermSS3FunctionKeys = []struct {
	letter byte
	code   ui.KeyCode
}{
	{'P', ui.F1}, {'Q', ui.F2}, {'R', ui.F3}, {'S', ui.F4},
}

// Keys sent as CSI followed by a number and a tilde.
var xtermTildeKeys = []struct {
	num  int
	code ui.KeyCode
}{
	{2, ui.Insert}, {3, ui.Delete}, {5, ui.PageUp}, {6, ui.PageDown},
	{15, ui.F5}, {17, ui.F6}, {18, ui.F7}, {19, ui.F8},
	{20, ui.F9}, {21, ui.F10}, {23, ui.F11}, {24, ui.F12},
}

// Alternative sequences for the same keys, sent by some terminals or in some
// terminal modes. They are listed after the primary sequences, so they are
// never used for the reverse mapping.
var xtermAltSequences = []tableEntry[string]{
	{"\x1bOA", ui.MakeKey(ui.CursorUp)},
	{"\x1bOB", ui.MakeKey(ui.CursorDown)},
	{"\x1bOC", ui.MakeKey(ui.CursorRight)},
	{"\x1bOD", ui.MakeKey(ui.CursorLeft)},
	{"\x1bOH", ui.MakeKey(ui.Home)},
	{"\x1bOF", ui.MakeKey(ui.End)},
	{"\x1b[1~", ui.MakeKey(ui.Home)},
	{"\x1b[4~", ui.MakeKey(ui.End)},
	{"\x1b[7~", ui.MakeKey(ui.Home)},
	{"\x1b[8~", ui.MakeKey(ui.End)},
	{"\x1b[11~", ui.MakeKey(ui.F1)},
	{"\x1b[12~", ui.MakeKey(ui.F2)},
	{"\x1b[13~", ui.MakeKey(ui.F3)},
	{"\x1b[14~", ui.MakeKey(ui.F4)},
}

func xtermEntries() []tableEntry[string] {
	var entries []tableEntry[string]
	add := func(seq string, code ui.KeyCode, mod ui.Mod) {
		entries = append(entries, tableEntry[string]{seq, ui.Key{Code: code, Mod: mod}})
	}

	// Printable characters. Upper-case letters are absent; they are decoded
	// by folding to lower case.
	for r := rune('!'); r <= '~'; r++ {
		if 'A' <= r && r <= 'Z' {
			continue
		}
		add(string(r), ui.KeyCodeOf(r), ui.None)
	}
	add(" ", ui.Space, ui.None)
	add("\x1b", ui.Escape, ui.None)
	add("\n", ui.Enter, ui.None)
	add("\x7f", ui.Backspace, ui.None)

	for _, k := range xtermLetterKeys {
		add("\x1b["+string(k.letter), k.code, ui.None)
	}
	for _, k := range xtermSS3FunctionKeys {
		add("\x1bO"+string(k.letter), k.code, ui.None)
	}
	for _, k := range xtermTildeKeys {
		add("\x1b["+strconv.Itoa(k.num)+"~", k.code, ui.None)
	}

	for _, m := range xtermModParams {
		param := strconv.Itoa(m.param)
		for _, k := range xtermLetterKeys {
			add("\x1b[1;"+param+string(k.letter), k.code, m.mod)
		}
		for _, k := range xtermSS3FunctionKeys {
			add("\x1b[1;"+param+string(k.letter), k.code, m.mod)
		}
		for _, k := range xtermTildeKeys {
			add("\x1b["+strconv.Itoa(k.num)+";"+param+"~", k.code, m.mod)
		}
	}

	return append(entries, xtermAltSequences...)
}

// TerminalSequence returns the byte sequence an xterm-compatible terminal
// sends for the key when pressed without modifiers, or "" if there is none.
func TerminalSequence(code ui.KeyCode) string {
	seq, _ := TerminalTable.Native(code)
	return seq
}

// KeyCodeOfTerminalSequence returns the key code for an exact terminal byte
// sequence, or ui.Unknown. Modifiers implied by the sequence are ignored; use
// DecodeSequence to obtain them.
func KeyCodeOfTerminalSequence(seq string) ui.KeyCode {
	k, _ := TerminalTable.Lookup(seq)
	return k.Code
}
