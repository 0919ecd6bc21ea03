package kbd

import "github.com/elves/keyhandler/pkg/ui"

const escByte = 0x1b

// DecodeSequence decodes a chunk of bytes read from a terminal into a key
// code and modifiers. The decoding is heuristic, since the terminal protocol
// is lossy:
//
//   - A two-byte chunk starting with ESC is Alt plus the second byte.
//
//   - An upper-case letter is the lower-case letter plus Shift.
//
//   - A byte from 1 to 26 that has no entry in the table is the corresponding
//     letter plus Ctrl. This means that Ctrl with a digit cannot be told apart
//     from the bare digit, and that Enter (10) is never reported as Ctrl-J.
//
//   - Other chunks are looked up in the table as a whole. Modifiers implied by
//     the table entry are added.
//
// Chunks that are not recognized decode to ui.Unknown together with any
// modifiers already detected.
func DecodeSequence(t *Table[string], chunk []byte) (ui.KeyCode, ui.Mod) {
	mod := ui.None
	seq := chunk
	if len(seq) == 2 && seq[0] == escByte {
		mod = ui.Alt
		seq = seq[1:]
	}
	switch len(seq) {
	case 0:
		return ui.Unknown, mod
	case 1:
		return decodeChar(seq[0], mod, func(b byte) (ui.Key, bool) {
			return t.Lookup(string([]byte{b}))
		})
	}
	if k, ok := t.Lookup(string(seq)); ok {
		return k.Code, mod | k.Mod
	}
	return ui.Unknown, mod
}

// DecodeWinCodes decodes a chunk of bytes read from a Windows console device
// into a key code and modifiers. The chunk is split into getch-style codes,
// and then decoded with the same heuristics as DecodeSequence, treating each
// code as one byte.
func DecodeWinCodes(t *Table[WinCode], chunk []byte) (ui.KeyCode, ui.Mod) {
	mod := ui.None
	codes := splitWinCodes(chunk)
	if len(codes) == 2 && codes[0] == ch(escByte) {
		mod = ui.Alt
		codes = codes[1:]
	}
	if len(codes) != 1 {
		return ui.Unknown, mod
	}
	return decodeWinCode(t, codes[0], mod)
}

func decodeWinCode(t *Table[WinCode], c WinCode, mod ui.Mod) (ui.KeyCode, ui.Mod) {
	if c.Second == NotAKey && 0 <= c.First && c.First <= 0xff {
		return decodeChar(byte(c.First), mod, func(b byte) (ui.Key, bool) {
			return t.Lookup(ch(int(b)))
		})
	}
	if k, ok := t.Lookup(c); ok {
		return k.Code, mod | k.Mod
	}
	return ui.Unknown, mod
}

func decodeChar(b byte, mod ui.Mod, lookup func(byte) (ui.Key, bool)) (ui.KeyCode, ui.Mod) {
	if 'A' <= b && b <= 'Z' {
		b += 'a' - 'A'
		mod |= ui.Shift
	}
	if k, ok := lookup(b); ok {
		return k.Code, mod | k.Mod
	}
	if 1 <= b && b <= 26 {
		mod |= ui.Ctrl
		if k, ok := lookup(b + 'a' - 1); ok {
			return k.Code, mod | k.Mod
		}
	}
	return ui.Unknown, mod
}
