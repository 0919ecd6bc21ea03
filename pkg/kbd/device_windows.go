//go:build windows

package kbd

import (
	"os"
	"time"

	"golang.org/x/sys/windows"

	"github.com/elves/keyhandler/pkg/sys"
	"github.com/elves/keyhandler/pkg/sys/ewindows"
	"github.com/elves/keyhandler/pkg/ui"
)

// How long to sleep between checks for console input.
const pollInterval = 2 * time.Millisecond

type consoleDevice struct {
	file    *os.File
	timeout time.Duration
	// Encoded key events not yet returned by Read, one chunk per event.
	pending [][]byte
}

// NewFileDevice returns a Device that reads from a console input file. Reads
// wait for input for at most the given timeout.
func NewFileDevice(file *os.File, timeout time.Duration) Device {
	return &consoleDevice{file: file, timeout: timeout}
}

// StdinDevice returns a Device that reads from the standard input.
func StdinDevice() Device { return NewFileDevice(os.Stdin, DefaultReadTimeout) }

func (d *consoleDevice) handle() windows.Handle { return windows.Handle(d.file.Fd()) }

func (d *consoleDevice) IsTerminal() bool { return sys.IsATTY(d.file.Fd()) }

func (d *consoleDevice) GetMode() (Mode, error) {
	var mode uint32
	err := windows.GetConsoleMode(d.handle(), &mode)
	return mode, err
}

func (d *consoleDevice) SetMode(m Mode) error {
	return windows.SetConsoleMode(d.handle(), m)
}

func (d *consoleDevice) Read(p []byte) (int, error) {
	deadline := time.Now().Add(d.timeout)
	for {
		if len(d.pending) > 0 {
			n := copy(p, d.pending[0])
			d.pending = d.pending[1:]
			return n, nil
		}
		nev, err := ewindows.GetNumberOfConsoleInputEvents(d.handle())
		if err != nil {
			return 0, err
		}
		if nev > 0 {
			var buf [8]ewindows.InputRecord
			nr, err := ewindows.ReadConsoleInput(d.handle(), buf[:])
			if err != nil {
				return 0, err
			}
			for i := 0; i < nr; i++ {
				event := buf[i].KeyEvent()
				if event == nil {
					continue
				}
				chunk := encodeConsoleKey(event.BKeyDown != 0, event.WVirtualKeyCode,
					event.Char(), event.DwControlKeyState)
				if chunk != nil {
					d.pending = append(d.pending, chunk)
				}
			}
			continue
		}
		if time.Now().After(deadline) {
			return 0, nil
		}
		time.Sleep(pollInterval)
	}
}

// NativeSequence returns the bytes the console device produces for the key
// when pressed without modifiers.
func NativeSequence(code ui.KeyCode) []byte {
	c := WindowsCode(code)
	if c.First == NotAKey {
		return nil
	}
	return c.Bytes()
}

// DecodeNative decodes a chunk read from a console device.
func DecodeNative(chunk []byte) (ui.KeyCode, ui.Mod) {
	return DecodeWinCodes(ConsoleTable, chunk)
}
