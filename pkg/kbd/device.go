package kbd

import "time"

// DefaultReadTimeout is how long a device read waits for input before
// returning with no data.
const DefaultReadTimeout = 100 * time.Millisecond

// Device is the input device a Handler reads keys from.
type Device interface {
	// Read reads a chunk of input into p. It waits for at most the device's
	// read timeout and returns (0, nil) if no input arrived in that time.
	Read(p []byte) (int, error)
	// IsTerminal reports whether the device is a terminal or console.
	IsTerminal() bool
	// GetMode returns the current mode of the device.
	GetMode() (Mode, error)
	// SetMode changes the mode of the device, effective immediately.
	SetMode(Mode) error
}
