//go:build unix

package kbd

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/elves/keyhandler/pkg/sys"
	"github.com/elves/keyhandler/pkg/sys/eunix"
	"github.com/elves/keyhandler/pkg/ui"
)

type fileDevice struct {
	file    *os.File
	timeout time.Duration
}

// NewFileDevice returns a Device that reads from a terminal file. Reads wait
// for input for at most the given timeout.
func NewFileDevice(file *os.File, timeout time.Duration) Device {
	return &fileDevice{file, timeout}
}

// StdinDevice returns a Device that reads from the standard input.
func StdinDevice() Device { return NewFileDevice(os.Stdin, DefaultReadTimeout) }

func (d *fileDevice) IsTerminal() bool { return sys.IsATTY(d.file.Fd()) }

func (d *fileDevice) GetMode() (Mode, error) {
	term, err := eunix.TermiosForFd(int(d.file.Fd()))
	if err != nil {
		return Mode{}, err
	}
	return *term, nil
}

func (d *fileDevice) SetMode(m Mode) error {
	return m.ApplyToFd(int(d.file.Fd()))
}

func (d *fileDevice) Read(p []byte) (int, error) {
	ready, err := eunix.WaitForRead(d.timeout, d.file)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, err
	}
	if !ready[0] {
		return 0, nil
	}
	n, err := unix.Read(int(d.file.Fd()), p)
	switch {
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR):
		return 0, nil
	case err != nil:
		return 0, err
	case n == 0:
		// Readable with nothing to read means the other end is gone.
		return 0, io.EOF
	}
	return n, nil
}

// NativeSequence returns the bytes the terminal sends for the key when pressed
// without modifiers.
func NativeSequence(code ui.KeyCode) []byte {
	return []byte(TerminalSequence(code))
}

// DecodeNative decodes a chunk read from a terminal device.
func DecodeNative(chunk []byte) (ui.KeyCode, ui.Mod) {
	return DecodeSequence(TerminalTable, chunk)
}
