//go:build windows

package kbd

import "golang.org/x/sys/windows"

// Mode is the console input mode of a device.
type Mode = uint32

// rawMode derives the mode used while reading keys: no line input and no
// echo. Processed input is kept, so that Ctrl-C still interrupts.
func rawMode(m Mode) Mode {
	return m &^ (windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT)
}
