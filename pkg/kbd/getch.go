package kbd

import (
	"fmt"

	"github.com/elves/keyhandler/pkg/ui"
)

// NotAKey marks the absent second half of a WinCode.
const NotAKey = -1

// WinCode is a key code as returned by the _getch family of functions in the
// Windows C runtime: either a single character code, or a prefix (0 or 0xE0)
// followed by a scan code.
type WinCode struct {
	First, Second int
}

func (c WinCode) String() string {
	if c.Second == NotAKey {
		return fmt.Sprintf("{%d}", c.First)
	}
	return fmt.Sprintf("{%d, %d}", c.First, c.Second)
}

// Bytes returns the encoding of c in the byte stream read from a Windows
// console device.
func (c WinCode) Bytes() []byte {
	if c.Second == NotAKey {
		return []byte{byte(c.First)}
	}
	return []byte{byte(c.First), byte(c.Second)}
}

// Prefixes of two-part codes.
const (
	getchFuncPrefix = 0x00
	getchExtPrefix  = 0xE0
)

func isGetchPrefix(b byte) bool { return b == getchFuncPrefix || b == getchExtPrefix }

// ConsoleTable maps getch-style codes to keys.
var ConsoleTable = newTable(getchEntries())

func ch(b int) WinCode  { return WinCode{b, NotAKey} }
func ext(b int) WinCode { return WinCode{getchExtPrefix, b} }
func fn(b int) WinCode  { return WinCode{getchFuncPrefix, b} }

var getchSpecialKeys = []struct {
	native WinCode
	code   ui.KeyCode
}{
	{ch(' '), ui.Space},
	{ch(27), ui.Escape},
	{ch(13), ui.Enter},
	{ch(8), ui.Backspace},

	{ext(72), ui.CursorUp},
	{ext(80), ui.CursorDown},
	{ext(77), ui.CursorRight},
	{ext(75), ui.CursorLeft},
	{ext(83), ui.Delete},
	{ext(79), ui.End},
	{ext(81), ui.PageDown},
	{ext(73), ui.PageUp},
	{ext(71), ui.Home},
	{ext(82), ui.Insert},

	{fn(59), ui.F1}, {fn(60), ui.F2}, {fn(61), ui.F3}, {fn(62), ui.F4},
	{fn(63), ui.F5}, {fn(64), ui.F6}, {fn(65), ui.F7}, {fn(66), ui.F8},
	{fn(67), ui.F9}, {fn(68), ui.F10},
	{ext(133), ui.F11}, {ext(134), ui.F12},
}

// Scan codes of modified function and navigation keys.
var getchModifiedKeys = []struct {
	native WinCode
	key    ui.Key
}{
	{ext(135), ui.MakeKey(ui.F11, ui.Shift)}, {ext(136), ui.MakeKey(ui.F12, ui.Shift)},
	{ext(137), ui.MakeKey(ui.F11, ui.Ctrl)}, {ext(138), ui.MakeKey(ui.F12, ui.Ctrl)},
	{ext(139), ui.MakeKey(ui.F11, ui.Alt)}, {ext(140), ui.MakeKey(ui.F12, ui.Alt)},

	{ext(141), ui.MakeKey(ui.CursorUp, ui.Ctrl)},
	{ext(145), ui.MakeKey(ui.CursorDown, ui.Ctrl)},
	{ext(115), ui.MakeKey(ui.CursorLeft, ui.Ctrl)},
	{ext(116), ui.MakeKey(ui.CursorRight, ui.Ctrl)},
	{ext(119), ui.MakeKey(ui.Home, ui.Ctrl)},
	{ext(117), ui.MakeKey(ui.End, ui.Ctrl)},
	{ext(132), ui.MakeKey(ui.PageUp, ui.Ctrl)},
	{ext(118), ui.MakeKey(ui.PageDown, ui.Ctrl)},
	{ext(146), ui.MakeKey(ui.Insert, ui.Ctrl)},
	{ext(147), ui.MakeKey(ui.Delete, ui.Ctrl)},

	{fn(152), ui.MakeKey(ui.CursorUp, ui.Alt)},
	{fn(160), ui.MakeKey(ui.CursorDown, ui.Alt)},
	{fn(155), ui.MakeKey(ui.CursorLeft, ui.Alt)},
	{fn(157), ui.MakeKey(ui.CursorRight, ui.Alt)},
	{fn(151), ui.MakeKey(ui.Home, ui.Alt)},
	{fn(159), ui.MakeKey(ui.End, ui.Alt)},
	{fn(153), ui.MakeKey(ui.PageUp, ui.Alt)},
	{fn(161), ui.MakeKey(ui.PageDown, ui.Alt)},
	{fn(162), ui.MakeKey(ui.Insert, ui.Alt)},
	{fn(163), ui.MakeKey(ui.Delete, ui.Alt)},
}

// Offsets of the modified forms of F1 to F10 from the unmodified ones.
var getchFunctionKeyMods = []struct {
	offset int
	mod    ui.Mod
}{
	{25, ui.Shift},
	{35, ui.Ctrl},
	{45, ui.Alt},
}

func getchEntries() []tableEntry[WinCode] {
	var entries []tableEntry[WinCode]
	for r := '!'; r <= '~'; r++ {
		if 'A' <= r && r <= 'Z' {
			continue
		}
		entries = append(entries, tableEntry[WinCode]{ch(int(r)), ui.MakeKey(ui.KeyCodeOf(r))})
	}
	for _, k := range getchSpecialKeys {
		entries = append(entries, tableEntry[WinCode]{k.native, ui.MakeKey(k.code)})
	}
	for _, m := range getchFunctionKeyMods {
		for i := 0; i < 10; i++ {
			entries = append(entries,
				tableEntry[WinCode]{fn(59 + m.offset + i), ui.MakeKey(ui.F1+ui.KeyCode(i), m.mod)})
		}
	}
	for _, k := range getchModifiedKeys {
		entries = append(entries, tableEntry[WinCode]{k.native, k.key})
	}
	return entries
}

// splitWinCodes splits a byte stream read from a Windows console device into
// getch-style codes.
func splitWinCodes(chunk []byte) []WinCode {
	var codes []WinCode
	for i := 0; i < len(chunk); i++ {
		if isGetchPrefix(chunk[i]) && i+1 < len(chunk) {
			codes = append(codes, WinCode{int(chunk[i]), int(chunk[i+1])})
			i++
		} else {
			codes = append(codes, ch(int(chunk[i])))
		}
	}
	return codes
}

// WindowsCode returns the getch-style code for the key when pressed without
// modifiers. It returns WinCode{NotAKey, NotAKey} if there is none.
func WindowsCode(code ui.KeyCode) WinCode {
	if c, ok := ConsoleTable.Native(code); ok {
		return c
	}
	return WinCode{NotAKey, NotAKey}
}

// KeyOfWindowsCode decodes a single getch-style code, applying the same
// heuristics as DecodeWinCodes.
func KeyOfWindowsCode(c WinCode) (ui.KeyCode, ui.Mod) {
	return decodeWinCode(ConsoleTable, c, ui.None)
}
