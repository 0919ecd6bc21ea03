package kbd

import "github.com/elves/keyhandler/pkg/ui"

// A subset of constants listed in
// https://docs.microsoft.com/en-us/windows/console/key-event-record-str
const (
	rightAlt  = 0x01
	leftAlt   = 0x02
	rightCtrl = 0x04
	leftCtrl  = 0x08
	shift     = 0x10
)

// Virtual key codes of keys that don't input a character, from
// https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
var virtualKeyCodes = map[uint16]ui.KeyCode{
	0x21: ui.PageUp, 0x22: ui.PageDown, 0x23: ui.End, 0x24: ui.Home,
	0x25: ui.CursorLeft, 0x26: ui.CursorUp, 0x27: ui.CursorRight, 0x28: ui.CursorDown,
	0x2d: ui.Insert, 0x2e: ui.Delete,
	0x70: ui.F1, 0x71: ui.F2, 0x72: ui.F3, 0x73: ui.F4, 0x74: ui.F5, 0x75: ui.F6,
	0x76: ui.F7, 0x77: ui.F8, 0x78: ui.F9, 0x79: ui.F10, 0x7a: ui.F11, 0x7b: ui.F12,
}

// encodeConsoleKey converts a console key event into the getch-style byte
// stream decoded by DecodeWinCodes. It returns nil for events that should be
// ignored: key releases, lone modifier keys and non-ASCII characters.
//
// Characters are encoded as themselves, so that the decoder detects Shift
// from upper-case letters and Ctrl from control characters; Alt is encoded as
// an ESC prefix. Other keys are encoded with the code of the key combined
// with at most one modifier, chosen in the order Shift, Ctrl, Alt.
func encodeConsoleKey(keyDown bool, vk uint16, char uint16, state uint32) []byte {
	if !keyDown {
		return nil
	}
	alt := state&(leftAlt|rightAlt) != 0
	ctrl := state&(leftCtrl|rightCtrl) != 0
	if char != 0 {
		if char >= 0x80 {
			return nil
		}
		// Left Ctrl together with right Alt is AltGr, which is used to input
		// characters rather than as a modifier.
		altGr := state&(leftCtrl|rightAlt) == leftCtrl|rightAlt
		if alt && !altGr {
			return []byte{escByte, byte(char)}
		}
		return []byte{byte(char)}
	}

	code, ok := virtualKeyCodes[vk]
	if !ok {
		return nil
	}
	var mods []ui.Mod
	if state&shift != 0 {
		mods = append(mods, ui.Shift)
	}
	if ctrl {
		mods = append(mods, ui.Ctrl)
	}
	if alt {
		mods = append(mods, ui.Alt)
	}
	for _, mod := range mods {
		if c, ok := ConsoleTable.NativeOf(ui.MakeKey(code, mod)); ok {
			return c.Bytes()
		}
	}
	if c, ok := ConsoleTable.Native(code); ok {
		return c.Bytes()
	}
	return nil
}
