package ui

import (
	"testing"
)

var makeKeyTests = []struct {
	k1 Key
	k2 Key
}{
	{MakeKey(A), Key{A, None}},
	{MakeKey(A, Alt), Key{A, Alt}},
	{MakeKey(A, Alt, Ctrl), Key{A, Alt | Ctrl}},
	{MakeKey(K, Ctrl), Key{K, Ctrl}},
}

func TestMakeKey(t *testing.T) {
	for _, test := range makeKeyTests {
		if test.k1 != test.k2 {
			t.Errorf("%v != %v", test.k1, test.k2)
		}
	}
}

var modStringTests = []struct {
	mod  Mod
	want string
}{
	{None, ""},
	{Shift, "SHIFT"},
	{Ctrl, "CTRL"},
	{Alt, "ALT"},
	{Alt | Shift, "SHIFT ALT"},
	{Ctrl | Alt | Shift, "SHIFT CTRL ALT"},
}

func TestMod_String(t *testing.T) {
	for _, test := range modStringTests {
		if got := test.mod.String(); got != test.want {
			t.Errorf("Mod(%d).String() -> %q, want %q", test.mod, got, test.want)
		}
		back, err := ParseMod(test.want)
		if err != nil || back != test.mod {
			t.Errorf("ParseMod(%q) -> (%v, %v), want (%v, nil)",
				test.want, back, err, test.mod)
		}
	}
}

func TestMod_Contains(t *testing.T) {
	m := Shift.With(Ctrl)
	if !m.Contains(Shift) || !m.Contains(Ctrl) || !m.Contains(Shift|Ctrl) {
		t.Errorf("%v should contain Shift, Ctrl and both", m)
	}
	if m.Contains(Alt) || m.Contains(Alt|Shift) {
		t.Errorf("%v should not contain Alt", m)
	}
	if m.Contains(None) {
		t.Errorf("Contains(None) should be false")
	}
}

func TestParseMod_Error(t *testing.T) {
	_, err := ParseMod("SHIFT SUPER")
	if err == nil || err.Error() != `bad modifier: "SUPER"` {
		t.Errorf("got error %v", err)
	}
}

var keyStringTests = []struct {
	k    Key
	want string
}{
	{MakeKey(A), "a"},
	{MakeKey(A, Shift), "Shift-a"},
	{MakeKey(A, Ctrl, Alt, Shift), "Ctrl-Alt-Shift-a"},
	{MakeKey(F1, Shift), "Shift-F1"},
	{MakeKey(CursorUp, Alt), "Alt-CURSOR_UP"},
	{MakeKey(Minus, Ctrl), "Ctrl--"},
}

func TestKey_String(t *testing.T) {
	for _, test := range keyStringTests {
		if got := test.k.String(); got != test.want {
			t.Errorf("%#v.String() -> %q, want %q", test.k, got, test.want)
		}
	}
}

var parseKeyTests = []struct {
	s       string
	wantKey Key
	wantErr string
}{
	{s: "x", wantKey: MakeKey(X)},
	{s: "X", wantKey: MakeKey(X, Shift)},
	{s: "F1", wantKey: MakeKey(F1)},
	{s: "CURSOR_UP", wantKey: MakeKey(CursorUp)},
	{s: "up", wantKey: MakeKey(CursorUp)},
	{s: "Enter", wantKey: MakeKey(Enter)},
	{s: "-", wantKey: MakeKey(Minus)},

	{s: "a-x", wantKey: MakeKey(X, Alt)},
	{s: "C-x", wantKey: MakeKey(X, Ctrl)},
	// + is the same as -.
	{s: "C+x", wantKey: MakeKey(X, Ctrl)},
	{s: "Ctrl--", wantKey: MakeKey(Minus, Ctrl)},

	// Full names and alternative names can also be used.
	{s: "M-x", wantKey: MakeKey(X, Alt)},
	{s: "Meta-x", wantKey: MakeKey(X, Alt)},

	// Multiple modifiers can appear in any order.
	{s: "Alt-Ctrl-Delete", wantKey: MakeKey(Delete, Alt, Ctrl)},
	{s: "Ctrl-Alt-Delete", wantKey: MakeKey(Delete, Alt, Ctrl)},

	// Errors.
	{s: "F123", wantErr: `bad key: "F123"`},
	{s: "Super-X", wantErr: `bad modifier: "super"`},
}

func TestParseKey(t *testing.T) {
	for _, test := range parseKeyTests {
		t.Run(test.s, func(t *testing.T) {
			k, err := ParseKey(test.s)
			if k != test.wantKey {
				t.Errorf("got key %v, want %v", k, test.wantKey)
			}
			if test.wantErr != "" {
				if err == nil || err.Error() != test.wantErr {
					t.Errorf("got err %v, want %v", err, test.wantErr)
				}
			} else if err != nil {
				t.Errorf("got err %v, want nil", err)
			}
		})
	}
}

func TestParseKey_RoundTripsString(t *testing.T) {
	for _, c := range KeyCodes() {
		for _, mod := range []Mod{None, Shift, Alt, Ctrl, Ctrl | Alt} {
			k := MakeKey(c, mod)
			back, err := ParseKey(k.String())
			if err != nil || back != k {
				t.Errorf("ParseKey(%q) -> (%v, %v), want %v", k.String(), back, err, k)
			}
		}
	}
}
