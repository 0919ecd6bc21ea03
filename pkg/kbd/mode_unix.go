//go:build unix

package kbd

import "github.com/elves/keyhandler/pkg/sys/eunix"

// Mode is the terminal attributes of a device.
type Mode = eunix.Termios

// rawMode derives the mode used while reading keys: no canonical processing,
// no echo, and reads that return after at most a decisecond.
func rawMode(m Mode) Mode {
	raw := m.Copy()
	raw.SetICanon(false)
	raw.SetEcho(false)
	raw.SetVMin(0)
	raw.SetVTime(1)
	return *raw
}
