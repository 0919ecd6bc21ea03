package kbd

import (
	"errors"
	"fmt"
)

// ErrNilDevice is returned by New when Config.Device is nil.
var ErrNilDevice = errors.New("keyboard handler needs a device")

// DeviceConfigError is returned when the mode of the input device cannot be
// queried, changed or restored.
type DeviceConfigError struct {
	// One of "get", "set" and "restore".
	Op  string
	Err error
}

func (e *DeviceConfigError) Error() string {
	switch e.Op {
	case "get":
		return fmt.Sprintf("can't get terminal attribute: %s", e.Err)
	case "set":
		return fmt.Sprintf("can't set up terminal attribute: %s", e.Err)
	default:
		return fmt.Sprintf("can't restore terminal attribute: %s", e.Err)
	}
}

func (e *DeviceConfigError) Unwrap() error { return e.Err }

// ReadError is recorded when reading from the input device fails and the
// reader loop stops.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading keyboard input: %s", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
