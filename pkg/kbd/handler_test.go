package kbd

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/elves/keyhandler/pkg/sys"
	"github.com/elves/keyhandler/pkg/testutil"
	"github.com/elves/keyhandler/pkg/ui"
)

var errFake = errors.New("fake error")

type keyPress struct {
	code ui.KeyCode
	mod  ui.Mod
}

func setupHandler(t *testing.T, dev *fakeDevice) *Handler {
	t.Helper()
	h, err := New(Config{Device: dev, Decode: decodeTerminal})
	if err != nil {
		t.Fatal("New:", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func decodeTerminal(chunk []byte) (ui.KeyCode, ui.Mod) {
	return DecodeSequence(TerminalTable, chunk)
}

func recorder() (Callback, chan keyPress) {
	ch := make(chan keyPress, 16)
	return func(code ui.KeyCode, mod ui.Mod) { ch <- keyPress{code, mod} }, ch
}

func expectKeyPress(t *testing.T, ch <-chan keyPress, want keyPress) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Errorf("got key press %v, want %v", got, want)
		}
	case <-time.After(testutil.Scaled(time.Second)):
		t.Errorf("timed out waiting for key press %v", want)
	}
}

func expectNoKeyPress(t *testing.T, ch <-chan keyPress) {
	t.Helper()
	select {
	case got := <-ch:
		t.Errorf("got unexpected key press %v", got)
	case <-time.After(testutil.Scaled(20 * time.Millisecond)):
	}
}

var keyPressScenarios = []struct {
	name  string
	input string
	key   ui.Key
}{
	{"upper-case letter", "\x41", ui.MakeKey(ui.A, ui.Shift)},
	{"escape prefix", "\x1ba", ui.MakeKey(ui.A, ui.Alt)},
	{"control character", "\x03", ui.MakeKey(ui.C, ui.Ctrl)},
	{"cursor key", "\x1b[D", ui.MakeKey(ui.CursorLeft)},
}

func TestHandler_DispatchesKeyPresses(t *testing.T) {
	for _, test := range keyPressScenarios {
		t.Run(test.name, func(t *testing.T) {
			dev := newFakeDevice()
			h := setupHandler(t, dev)
			cb, ch := recorder()
			if handle := h.AddKeyPressCallback(cb, test.key.Code, test.key.Mod); handle == InvalidHandle {
				t.Fatal("AddKeyPressCallback returned InvalidHandle")
			}

			dev.feed(test.input)
			expectKeyPress(t, ch, keyPress{test.key.Code, test.key.Mod})
			expectNoKeyPress(t, ch)
		})
	}
}

func TestHandler_ExactModifierMatch(t *testing.T) {
	dev := newFakeDevice()
	h := setupHandler(t, dev)
	cb, ch := recorder()
	h.AddKeyPressCallback(cb, ui.A)

	dev.feed("A")
	expectNoKeyPress(t, ch)
	dev.feed("a")
	expectKeyPress(t, ch, keyPress{ui.A, ui.None})
}

func TestHandler_CallbacksCalledInOrder(t *testing.T) {
	dev := newFakeDevice()
	h := setupHandler(t, dev)
	order := make(chan int, 2)
	h.AddKeyPressCallback(func(ui.KeyCode, ui.Mod) { order <- 1 }, ui.Space)
	h.AddKeyPressCallback(func(ui.KeyCode, ui.Mod) { order <- 2 }, ui.Space)

	dev.feed(" ")
	for _, want := range []int{1, 2} {
		select {
		case got := <-order:
			if got != want {
				t.Errorf("got callback %d, want %d", got, want)
			}
		case <-time.After(testutil.Scaled(time.Second)):
			t.Fatalf("timed out waiting for callback %d", want)
		}
	}
}

func TestHandler_DeleteKeyPressCallback(t *testing.T) {
	dev := newFakeDevice()
	h := setupHandler(t, dev)
	cb, ch := recorder()
	handle := h.AddKeyPressCallback(cb, ui.Enter)

	h.DeleteKeyPressCallback(handle)
	h.DeleteKeyPressCallback(handle)
	h.DeleteKeyPressCallback(InvalidHandle)

	dev.feed("\n")
	expectNoKeyPress(t, ch)
}

func TestHandler_NilCallback(t *testing.T) {
	h := setupHandler(t, newFakeDevice())
	if handle := h.AddKeyPressCallback(nil, ui.A); handle != InvalidHandle {
		t.Errorf("AddKeyPressCallback(nil) -> %v, want InvalidHandle", handle)
	}
}

func TestHandler_NotTerminal(t *testing.T) {
	dev := newFakeDevice()
	dev.tty = false
	var diag strings.Builder
	h, err := New(Config{Device: dev, Diag: &diag})
	if err != nil {
		t.Fatal("New:", err)
	}
	if h.InitSucceeded() {
		t.Errorf("InitSucceeded() -> true for a non-terminal")
	}
	cb, _ := recorder()
	for _, mod := range []ui.Mod{ui.None, ui.Shift, ui.Ctrl | ui.Alt} {
		if handle := h.AddKeyPressCallback(cb, ui.A, mod); handle != InvalidHandle {
			t.Errorf("AddKeyPressCallback -> %v, want InvalidHandle", handle)
		}
	}
	if !strings.Contains(diag.String(), "not a terminal") {
		t.Errorf("diagnostic output %q doesn't mention the terminal", diag.String())
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close -> %v", err)
	}
	if sets := dev.modesSet(); len(sets) != 0 {
		t.Errorf("mode changed %d times for a non-terminal", len(sets))
	}
	if h.Err() != nil {
		t.Errorf("Err() -> %v", h.Err())
	}
	select {
	case <-h.Done():
	default:
		t.Errorf("Done() not closed for an inert handler")
	}
}

func TestNew_NilDevice(t *testing.T) {
	_, err := New(Config{})
	if err != ErrNilDevice {
		t.Errorf("New with no device -> %v, want ErrNilDevice", err)
	}
}

func TestNew_GetModeError(t *testing.T) {
	dev := newFakeDevice()
	dev.getErr = errFake
	_, err := New(Config{Device: dev})

	var configErr *DeviceConfigError
	if !errors.As(err, &configErr) || configErr.Op != "get" {
		t.Fatalf("got error %v, want DeviceConfigError for get", err)
	}
	if !errors.Is(err, errFake) {
		t.Errorf("error %v doesn't wrap the device error", err)
	}
	if !strings.HasPrefix(err.Error(), "can't get terminal attribute") {
		t.Errorf("got message %q", err.Error())
	}
}

func TestNew_SetModeError(t *testing.T) {
	dev := newFakeDevice()
	dev.setFailure(errFake)
	_, err := New(Config{Device: dev})

	var configErr *DeviceConfigError
	if !errors.As(err, &configErr) || configErr.Op != "set" {
		t.Fatalf("got error %v, want DeviceConfigError for set", err)
	}
	// The failed handler doesn't leave a mode behind to restore.
	dev.setFailure(nil)
	if err := RestoreMode(); err != nil {
		t.Errorf("RestoreMode -> %v", err)
	}
	if sets := dev.modesSet(); len(sets) != 0 {
		t.Errorf("RestoreMode set the mode of a failed handler")
	}
}

func TestHandler_CloseRestoresMode(t *testing.T) {
	dev := newFakeDevice()
	h := setupHandler(t, dev)
	if !h.InitSucceeded() {
		t.Fatal("InitSucceeded() -> false")
	}
	orig, _ := dev.GetMode()

	if err := h.Close(); err != nil {
		t.Errorf("Close -> %v", err)
	}
	sets := dev.modesSet()
	if len(sets) != 2 {
		t.Fatalf("mode set %d times, want 2", len(sets))
	}
	if sets[0] != rawMode(orig) {
		t.Errorf("mode set on init is not the raw mode")
	}
	if sets[1] != orig {
		t.Errorf("mode set on close is not the original mode")
	}

	// Closing again does nothing, and there is nothing left to restore.
	if err := h.Close(); err != nil {
		t.Errorf("second Close -> %v", err)
	}
	RestoreMode()
	if n := len(dev.modesSet()); n != 2 {
		t.Errorf("mode set %d times after second Close and RestoreMode, want 2", n)
	}
}

func TestRestoreMode_WhileActive(t *testing.T) {
	dev := newFakeDevice()
	setupHandler(t, dev)
	orig, _ := dev.GetMode()

	if err := RestoreMode(); err != nil {
		t.Errorf("RestoreMode -> %v", err)
	}
	if err := RestoreMode(); err != nil {
		t.Errorf("second RestoreMode -> %v", err)
	}
	sets := dev.modesSet()
	if len(sets) != 3 || sets[1] != orig || sets[2] != orig {
		t.Errorf("RestoreMode didn't apply the original mode twice")
	}
}

func TestHandler_ReadError(t *testing.T) {
	dev := newFakeDevice()
	var diag strings.Builder
	h, err := New(Config{Device: dev, Decode: decodeTerminal, Diag: &diag})
	if err != nil {
		t.Fatal("New:", err)
	}

	dev.fail(errFake)
	select {
	case <-h.Done():
	case <-time.After(testutil.Scaled(time.Second)):
		t.Fatal("timed out waiting for the loop to stop")
	}

	var readErr *ReadError
	if !errors.As(h.Err(), &readErr) || !errors.Is(h.Err(), errFake) {
		t.Fatalf("Err() -> %v, want ReadError wrapping the device error", h.Err())
	}
	// The loop restores the mode when it stops.
	if n := len(dev.modesSet()); n != 2 {
		t.Errorf("mode set %d times, want 2", n)
	}

	err = h.Close()
	if !errors.Is(err, errFake) {
		t.Errorf("Close -> %v, want the read error", err)
	}
	if !strings.Contains(diag.String(), "fake error") {
		t.Errorf("diagnostic output %q doesn't contain the error", diag.String())
	}
}

func TestHandler_RestoreErrorOnClose(t *testing.T) {
	dev := newFakeDevice()
	h, err := New(Config{Device: dev, Diag: io.Discard})
	if err != nil {
		t.Fatal("New:", err)
	}
	dev.setFailure(errFake)

	err = h.Close()
	var configErr *DeviceConfigError
	if !errors.As(err, &configErr) || configErr.Op != "restore" {
		t.Errorf("Close -> %v, want DeviceConfigError for restore", err)
	}
}

func TestHandler_InstallsInterruptHook(t *testing.T) {
	dev := newFakeDevice()
	h, err := New(Config{Device: dev, InstallSignalHandler: true})
	if err != nil {
		t.Fatal("New:", err)
	}
	if h.hook == nil {
		t.Fatal("no interrupt hook installed")
	}
	if cur := sys.Interrupt(); cur != h.hook.own {
		t.Errorf("installed hook is not the current interrupt disposition")
	}
	prev := h.hook.prev
	h.Close()
	if cur := sys.Interrupt(); cur != prev {
		t.Errorf("Close didn't put back the previous interrupt disposition")
	}
}
