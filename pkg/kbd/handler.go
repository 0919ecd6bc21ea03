// Package kbd reads key presses from a terminal or console and calls callbacks
// registered for them.
//
// A Handler switches its device to raw mode, so that keys are delivered as
// soon as they are pressed and are not echoed, and reads the device on a
// background goroutine. Each chunk of input is decoded into a key code and
// modifiers, and the callbacks registered for exactly that combination are
// called on the background goroutine.
//
// Only one Handler should be active in a process at a time: the saved device
// mode and the interrupt handler that restores it are process-wide.
package kbd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/elves/keyhandler/pkg/logutil"
	"github.com/elves/keyhandler/pkg/ui"
)

var logger = logutil.GetLogger("[kbd] ")

const notTerminalMsg = "stdin is not a terminal device. Keyboard handling disabled."

// Config configures a Handler.
type Config struct {
	// Device to read keys from. Required.
	Device Device
	// Decodes chunks read from Device. Defaults to DecodeNative.
	Decode func([]byte) (ui.KeyCode, ui.Mod)
	// Whether to install an interrupt handler that restores the device mode
	// before the process is interrupted.
	InstallSignalHandler bool
	// Where to write diagnostic messages. Defaults to discarding them.
	Diag io.Writer
}

// DefaultConfig returns the configuration for reading keys from the standard
// input, with diagnostics written to the standard error.
func DefaultConfig() Config {
	return Config{
		Device:               StdinDevice(),
		InstallSignalHandler: true,
		Diag:                 os.Stderr,
	}
}

// Handler reads keys from a device and dispatches them to callbacks.
type Handler struct {
	diag     io.Writer
	registry *Registry

	initOK bool
	reader *reader
	hook   *interruptHook

	closeOnce sync.Once
	closeErr  error
}

// NewDefault creates a Handler with DefaultConfig.
func NewDefault() (*Handler, error) { return New(DefaultConfig()) }

// New creates a Handler and starts reading keys.
//
// If the device is not a terminal, New returns an inert Handler that never
// reads and rejects all callbacks; InitSucceeded reports false for it. New
// returns an error if cfg has no device or the device mode cannot be
// changed.
func New(cfg Config) (*Handler, error) {
	if cfg.Device == nil {
		return nil, ErrNilDevice
	}
	if cfg.Decode == nil {
		cfg.Decode = DecodeNative
	}
	if cfg.Diag == nil {
		cfg.Diag = io.Discard
	}
	h := &Handler{diag: cfg.Diag, registry: NewRegistry()}

	if !cfg.Device.IsTerminal() {
		logger.Println(notTerminalMsg)
		fmt.Fprintln(cfg.Diag, notTerminalMsg)
		return h, nil
	}

	snap, err := enterRawMode(cfg.Device)
	if err != nil {
		return nil, err
	}
	h.reader = newReader(cfg.Device, cfg.Decode, h.registry, snap)
	if cfg.InstallSignalHandler {
		h.hook = installInterruptHook(h.reader.requestStop)
	}
	h.initOK = true
	go h.reader.run()
	return h, nil
}

// InitSucceeded reports whether the Handler is reading keys. It is false when
// the device is not a terminal.
func (h *Handler) InitSucceeded() bool { return h.initOK }

// AddKeyPressCallback registers cb to be called when the key with the given
// code is pressed with exactly the given modifiers (none if mods is empty). It
// returns InvalidHandle if cb is nil or the Handler is inert.
//
// Callbacks are called on the Handler's reading goroutine, while the
// Handler's registry is locked. A callback must not add or delete callbacks
// of the same Handler.
func (h *Handler) AddKeyPressCallback(cb Callback, code ui.KeyCode, mods ...ui.Mod) Handle {
	if !h.initOK {
		return InvalidHandle
	}
	return h.registry.Add(ui.MakeKey(code, mods...), cb)
}

// DeleteKeyPressCallback removes a callback registered with
// AddKeyPressCallback. Deleting an invalid or already deleted handle does
// nothing.
func (h *Handler) DeleteKeyPressCallback(handle Handle) {
	h.registry.Remove(handle)
}

var closedChan = make(chan struct{})

func init() { close(closedChan) }

// Done returns a channel that is closed when the Handler stops reading keys,
// either because Close was called or because reading failed. For an inert
// Handler, the channel is already closed.
func (h *Handler) Done() <-chan struct{} {
	if h.reader == nil {
		return closedChan
	}
	return h.reader.exited
}

// Err returns the error that stopped the reading loop, or nil if the loop is
// still running or stopped without error.
func (h *Handler) Err() error {
	if h.reader == nil {
		return nil
	}
	_, err := h.reader.result()
	return err
}

// Close stops reading keys, restores the device mode and the interrupt
// handler, and returns any error from reading or restoring. Such an error is
// also written to the diagnostic output. Close blocks for at most one read
// timeout plus the time taken by any callback in progress. It is safe to call
// Close more than once.
func (h *Handler) Close() error {
	h.closeOnce.Do(func() {
		if !h.initOK {
			return
		}
		if h.hook != nil {
			h.hook.uninstall()
		}
		h.reader.requestStop()
		h.closeErr = h.reader.wait()
		if h.closeErr != nil {
			logger.Println("keyboard handler stopped with error:", h.closeErr)
			fmt.Fprintln(h.diag, "keyboard handler stopped with error:", h.closeErr)
		}
	})
	return h.closeErr
}
