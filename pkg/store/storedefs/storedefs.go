// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import (
	"errors"

	"github.com/elves/keyhandler/pkg/ui"
)

// ErrNoMatchingKey is the error returned when a Key or LastKey query
// completes with no result.
var ErrNoMatchingKey = errors.New("no matching key")

// ErrNoSetting is returned by Setting when there is no such setting.
var ErrNoSetting = errors.New("no such setting")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextKeySeq() (int, error)
	AddKey(k ui.Key) (int, error)
	DelKey(seq int) error
	Key(seq int) (ui.Key, error)
	KeysWithSeq(from, upto int) ([]KeyEntry, error)
	LastKey() (KeyEntry, error)

	Setting(name string) (string, error)
	SetSetting(name, value string) error
	DelSetting(name string) error
}

// KeyEntry is an entry in the key history.
type KeyEntry struct {
	Key ui.Key
	Seq int
}
