package kbd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var encodeConsoleKeyTests = []struct {
	name    string
	keyDown bool
	vk      uint16
	char    uint16
	state   uint32
	want    []byte
}{
	{"key up", false, 0x41, 'a', 0, nil},
	{"letter", true, 0x41, 'a', 0, []byte("a")},
	{"shifted letter", true, 0x41, 'A', shift, []byte("A")},
	{"ctrl letter", true, 0x43, 3, leftCtrl, []byte{3}},
	{"alt letter", true, 0x41, 'a', leftAlt, []byte{escByte, 'a'}},
	{"altgr character", true, 0x51, '@', leftCtrl | rightAlt, []byte("@")},
	{"non-ascii character", true, 0xde, 0xe9, 0, nil},
	{"lone modifier", true, 0x10, 0, shift, nil},

	{"cursor up", true, 0x26, 0, 0, []byte{0xe0, 72}},
	{"shift f1", true, 0x70, 0, shift, []byte{0, 84}},
	{"ctrl cursor left", true, 0x25, 0, rightCtrl, []byte{0xe0, 115}},
	{"alt page down", true, 0x22, 0, leftAlt, []byte{0, 161}},
	{"shift wins over ctrl", true, 0x70, 0, shift | leftCtrl, []byte{0, 84}},
	{"unsupported modifier falls back", true, 0x26, 0, shift, []byte{0xe0, 72}},
}

func TestEncodeConsoleKey(t *testing.T) {
	for _, test := range encodeConsoleKeyTests {
		t.Run(test.name, func(t *testing.T) {
			got := encodeConsoleKey(test.keyDown, test.vk, test.char, test.state)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("encodeConsoleKey (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeConsoleKey_DecodesToKey(t *testing.T) {
	for vk, code := range virtualKeyCodes {
		chunk := encodeConsoleKey(true, vk, 0, 0)
		gotCode, gotMod := DecodeWinCodes(ConsoleTable, chunk)
		if gotCode != code || gotMod != 0 {
			t.Errorf("virtual key %#x decoded to (%v, %q), want %v", vk, gotCode, gotMod, code)
		}
	}
}
