// For whatever reason, on FreeBSD the only field of FdSet is called
// X__fds_bits; on other Unices it is called Bits. Since this module does not
// use cgo and relies on the auto-generated struct definitions, it has to cope
// with the difference.

package eunix

import (
	"reflect"

	"golang.org/x/sys/unix"
)

var nFdBits = (uint)(reflect.TypeOf(unix.FdSet{}.Bits[0]).Size() * 8)

// FdSet is a set of file descriptors, as used by select(2).
type FdSet unix.FdSet

func (fs *FdSet) s() *unix.FdSet {
	return (*unix.FdSet)(fs)
}

// NewFdSet creates a new FdSet containing the given file descriptors.
func NewFdSet(fds ...int) *FdSet {
	fs := &FdSet{}
	fs.Set(fds...)
	return fs
}

// Clear removes the given file descriptors from the set.
func (fs *FdSet) Clear(fds ...int) {
	for _, fd := range fds {
		u := uint(fd)
		fs.Bits[u/nFdBits] &= ^(1 << (u % nFdBits))
	}
}

// IsSet returns whether the given file descriptor is in the set.
func (fs *FdSet) IsSet(fd int) bool {
	u := uint(fd)
	return fs.Bits[u/nFdBits]&(1<<(u%nFdBits)) != 0
}

// Set adds the given file descriptors to the set.
func (fs *FdSet) Set(fds ...int) {
	for _, fd := range fds {
		u := uint(fd)
		fs.Bits[u/nFdBits] |= 1 << (u % nFdBits)
	}
}

// Zero empties the set.
func (fs *FdSet) Zero() {
	*fs = FdSet{}
}
