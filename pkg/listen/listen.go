// Package listen implements the main subprogram of keyhandler, which listens
// for key presses on the terminal and reacts to them.
package listen

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/elves/keyhandler/pkg/env"
	"github.com/elves/keyhandler/pkg/kbd"
	"github.com/elves/keyhandler/pkg/keymap"
	"github.com/elves/keyhandler/pkg/logutil"
	"github.com/elves/keyhandler/pkg/prog"
	"github.com/elves/keyhandler/pkg/store"
	"github.com/elves/keyhandler/pkg/store/storedefs"
	"github.com/elves/keyhandler/pkg/ui"
)

var logger = logutil.GetLogger("[listen] ")

// Name of the setting that persists whether keys are recorded.
const recordingSetting = "recording"

// Program is the listen subprogram.
type Program struct{}

// Run runs the program.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed")
	}
	if f.DB == "" {
		f.DB = os.Getenv(env.KEYHANDLER_DB)
	}
	if f.Bindings == "" {
		f.Bindings = os.Getenv(env.KEYHANDLER_BINDINGS)
	}
	if f.History && f.DB == "" {
		return prog.BadUsage("-history requires -db")
	}

	var st store.DBStore
	if f.DB != "" {
		var err error
		st, err = store.NewStore(f.DB)
		if err != nil {
			return fmt.Errorf("can't open database: %w", err)
		}
		defer st.Close()
	}
	if f.History {
		return showHistory(fds[1], st, f.JSON)
	}

	km := keymap.Default
	if f.Bindings != "" {
		var err error
		km, err = keymap.Load(f.Bindings)
		if err != nil {
			return err
		}
	}

	h, err := kbd.New(kbd.Config{
		Device:               kbd.NewFileDevice(fds[0], kbd.DefaultReadTimeout),
		InstallSignalHandler: !f.NoSignal,
		Diag:                 fds[2],
	})
	if err != nil {
		return err
	}
	if !h.InitSucceeded() {
		// The handler has already written a diagnostic message.
		return prog.Exit(1)
	}

	s := newSession(fds[1], km, st)
	handles := s.register(h)
	fmt.Fprintln(fds[1], "Listening for keys.", quitHint(km))

	select {
	case <-s.quit:
	case <-h.Done():
	}
	for _, handle := range handles {
		h.DeleteKeyPressCallback(handle)
	}
	if err := h.Close(); err != nil {
		// Already written to the diagnostic output.
		return prog.Exit(2)
	}
	return nil
}

type session struct {
	out io.Writer
	km  *keymap.Keymap
	st  storedefs.Store

	recording bool
	quit      chan struct{}
	quitting  bool
}

func newSession(out io.Writer, km *keymap.Keymap, st storedefs.Store) *session {
	s := &session{out: out, km: km, st: st, quit: make(chan struct{})}
	if st != nil {
		// Keys are recorded unless recording has been turned off.
		v, err := st.Setting(recordingSetting)
		switch {
		case errors.Is(err, storedefs.ErrNoSetting):
			s.recording = true
		case err != nil:
			logger.Println("reading recording state:", err)
		default:
			s.recording = v == "on"
		}
	}
	return s
}

// register adds a callback for every key to h, returning the handles of all
// callbacks.
func (s *session) register(h *kbd.Handler) []kbd.Handle {
	var handles []kbd.Handle
	for _, code := range ui.KeyCodes() {
		for mod := ui.Mod(0); mod <= ui.Shift|ui.Alt|ui.Ctrl; mod++ {
			handles = append(handles, h.AddKeyPressCallback(s.onKey, code, mod))
		}
	}
	return handles
}

// onKey is called on the handler's reading goroutine, one key at a time.
func (s *session) onKey(code ui.KeyCode, mod ui.Mod) {
	if s.quitting {
		return
	}
	k := ui.MakeKey(code, mod)
	if s.recording && s.st != nil {
		if _, err := s.st.AddKey(k); err != nil {
			logger.Println("recording key:", err)
		}
	}

	bindings := s.km.Lookup(k)
	if len(bindings) == 0 {
		fmt.Fprintln(s.out, k)
		return
	}
	for _, b := range bindings {
		switch b.Action {
		case keymap.Print:
			if b.Message != "" {
				fmt.Fprintln(s.out, b.Message)
			} else {
				fmt.Fprintln(s.out, k)
			}
		case keymap.Quit:
			s.quitting = true
			close(s.quit)
			return
		case keymap.RecordToggle:
			s.toggleRecording()
		}
	}
}

func (s *session) toggleRecording() {
	if s.st == nil {
		fmt.Fprintln(s.out, "No database to record to; use -db.")
		return
	}
	s.recording = !s.recording
	state := "off"
	if s.recording {
		state = "on"
	}
	if err := s.st.SetSetting(recordingSetting, state); err != nil {
		logger.Println("saving recording state:", err)
	}
	fmt.Fprintln(s.out, "Recording", state+".")
}

// quitHint tells the user how to stop listening. Ctrl-C never reaches the
// handler as a key, so without a quit binding the only way out is an
// interrupt.
func quitHint(km *keymap.Keymap) string {
	for _, b := range km.Bindings {
		if b.Action == keymap.Quit {
			return "Press " + b.Key.String() + " to quit."
		}
	}
	return "Interrupt (usually Ctrl-C) to quit."
}

type historyEntry struct {
	Seq int    `json:"seq"`
	Key string `json:"key"`
}

func showHistory(out io.Writer, st storedefs.Store, asJSON bool) error {
	upto, err := st.NextKeySeq()
	if err != nil {
		return err
	}
	entries, err := st.KeysWithSeq(0, upto)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(out)
		for _, e := range entries {
			if err := enc.Encode(historyEntry{e.Seq, e.Key.String()}); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%5d  %s\n", e.Seq, e.Key)
	}
	return nil
}
