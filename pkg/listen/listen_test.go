package listen

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elves/keyhandler/pkg/env"
	"github.com/elves/keyhandler/pkg/keymap"
	"github.com/elves/keyhandler/pkg/must"
	"github.com/elves/keyhandler/pkg/prog/progtest"
	"github.com/elves/keyhandler/pkg/store"
	"github.com/elves/keyhandler/pkg/store/storedefs"
	"github.com/elves/keyhandler/pkg/testutil"
	"github.com/elves/keyhandler/pkg/ui"
)

func mustParseKeymap(t *testing.T, s string) *keymap.Keymap {
	t.Helper()
	km, err := keymap.ParseBytes([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return km
}

var (
	Test           = progtest.Test
	ThatKeyhandler = progtest.ThatKeyhandler
)

func TestProgram_BadUsage(t *testing.T) {
	Test(t, Program{},
		ThatKeyhandler("foo").
			ExitsWith(2).
			WritesStderrContaining("arguments are not allowed\nUsage:"),
		ThatKeyhandler("-history").
			ExitsWith(2).
			WritesStderrContaining("-history requires -db"),
	)
}

func TestProgram_NotTerminal(t *testing.T) {
	Test(t, Program{},
		ThatKeyhandler("-no-signal").
			ExitsWith(1).
			WritesStderr("stdin is not a terminal device. Keyboard handling disabled.\n"),
	)
}

func TestProgram_BadBindings(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	must.WriteFile(bad, "bindings:\n  - key: Hyper-x\n    action: quit\n")

	Test(t, Program{},
		ThatKeyhandler("-bindings", bad).
			ExitsWith(2).
			WritesStderrContaining(`binding 1: bad modifier: "hyper"`),
		ThatKeyhandler("-bindings", filepath.Join(dir, "missing.yaml")).
			ExitsWith(2).
			WritesStderrContaining("missing.yaml"),
	)
}

func TestProgram_History(t *testing.T) {
	db := filepath.Join(t.TempDir(), "keys.db")
	st, err := store.NewStore(db)
	if err != nil {
		t.Fatal(err)
	}
	st.AddKey(ui.MakeKey(ui.A))
	st.AddKey(ui.MakeKey(ui.CursorUp, ui.Ctrl))
	st.Close()

	Test(t, Program{},
		ThatKeyhandler("-db", db, "-history").
			WritesStdout("    1  a\n    2  Ctrl-CURSOR_UP\n"),
		ThatKeyhandler("-db", db, "-history", "-json").
			WritesStdout(`{"seq":1,"key":"a"}` + "\n" +
				`{"seq":2,"key":"Ctrl-CURSOR_UP"}` + "\n"),
	)
}

func TestProgram_EnvDefaults(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "keys.db")
	st, err := store.NewStore(db)
	if err != nil {
		t.Fatal(err)
	}
	st.AddKey(ui.MakeKey(ui.Tilde))
	st.Close()
	testutil.Setenv(t, env.KEYHANDLER_DB, db)
	testutil.Setenv(t, env.KEYHANDLER_BINDINGS, filepath.Join(dir, "missing.yaml"))

	Test(t, Program{},
		ThatKeyhandler("-history").WritesStdout("    1  ~\n"),
		ThatKeyhandler().ExitsWith(2).WritesStderrContaining("missing.yaml"),
	)
}

func TestSession_Actions(t *testing.T) {
	km := mustParseKeymap(t, `
bindings:
  - key: x
    action: print
    message: hello
  - key: x
    action: print
  - key: Ctrl-r
    action: record-toggle
  - key: q
    action: quit
`)
	st := store.MustTempStore(t)
	var out strings.Builder
	s := newSession(&out, km, st)
	if !s.recording {
		t.Errorf("recording not on by default")
	}

	s.onKey(ui.A, ui.Shift)
	s.onKey(ui.X, ui.None)
	s.onKey(ui.R, ui.Ctrl)
	s.onKey(ui.B, ui.None)
	s.onKey(ui.Q, ui.None)
	s.onKey(ui.C, ui.None)

	wantOut := "Shift-a\nhello\nx\nRecording off.\nb\n"
	if out.String() != wantOut {
		t.Errorf("got output %q, want %q", out.String(), wantOut)
	}
	select {
	case <-s.quit:
	default:
		t.Errorf("quit channel not closed")
	}

	entries, _ := st.KeysWithSeq(0, 100)
	var recorded []string
	for _, e := range entries {
		recorded = append(recorded, e.Key.String())
	}
	if got := strings.Join(recorded, " "); got != "Shift-a x Ctrl-r" {
		t.Errorf("recorded %q", got)
	}

	// The recording state persists.
	if v, _ := st.Setting(recordingSetting); v != "off" {
		t.Errorf("recording setting is %q, want off", v)
	}
	if newSession(&out, km, st).recording {
		t.Errorf("new session is recording after recording was turned off")
	}
}

func TestSession_RecordToggleWithoutStore(t *testing.T) {
	var out strings.Builder
	s := newSession(&out, mustParseKeymap(t, "bindings: [{key: Ctrl-r, action: record-toggle}]"), nil)
	s.onKey(ui.R, ui.Ctrl)
	if !strings.Contains(out.String(), "use -db") {
		t.Errorf("got output %q", out.String())
	}
}

// brokenSettingStore is a Store whose settings can't be read.
type brokenSettingStore struct{ storedefs.Store }

func (brokenSettingStore) Setting(string) (string, error) {
	return "", errors.New("disk on fire")
}

func TestSession_RecordingStateUnreadable(t *testing.T) {
	s := newSession(io.Discard, keymap.Default, brokenSettingStore{})
	if s.recording {
		t.Errorf("recording on when its state can't be read")
	}
}

var quitHintTests = []struct {
	name     string
	bindings string
	want     string
}{
	{"quit binding", "bindings: [{key: Escape, action: quit}]", "Press ESCAPE to quit."},
	{"first quit binding", "bindings: [{key: q, action: quit}, {key: x, action: quit}]", "Press q to quit."},
	{"no quit binding", "bindings: [{key: x, action: print}]", "Interrupt (usually Ctrl-C) to quit."},
}

func TestQuitHint(t *testing.T) {
	for _, test := range quitHintTests {
		t.Run(test.name, func(t *testing.T) {
			if got := quitHint(mustParseKeymap(t, test.bindings)); got != test.want {
				t.Errorf("quitHint -> %q, want %q", got, test.want)
			}
		})
	}
	if got := quitHint(keymap.Default); got != "Press Ctrl-d to quit." {
		t.Errorf("quitHint(Default) -> %q", got)
	}
}
