package kbd

import (
	"sync"
	"sync/atomic"

	"github.com/elves/keyhandler/pkg/ui"
)

// Callback is called with the key code and modifiers of a key press.
type Callback func(ui.KeyCode, ui.Mod)

// Handle identifies a callback registration. Handles are unique within the
// process and never reused.
type Handle uint64

// InvalidHandle is returned when a callback cannot be registered.
const InvalidHandle Handle = 0

var lastHandle atomic.Uint64

func newHandle() Handle { return Handle(lastHandle.Add(1)) }

type callbackEntry struct {
	handle Handle
	cb     Callback
}

// Registry holds callbacks keyed by key code and modifiers. It is safe for
// concurrent use.
//
// Dispatch holds the registry's lock while it calls callbacks, so a callback
// must not call Add or Remove on the registry that is dispatching to it; doing
// so deadlocks.
type Registry struct {
	mutex   sync.Mutex
	entries map[ui.Key][]callbackEntry
	keyOf   map[Handle]ui.Key
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[ui.Key][]callbackEntry),
		keyOf:   make(map[Handle]ui.Key),
	}
}

// Add registers cb for the given key and returns its handle. It returns
// InvalidHandle if cb is nil.
func (r *Registry) Add(k ui.Key, cb Callback) Handle {
	if cb == nil {
		return InvalidHandle
	}
	h := newHandle()
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.entries[k] = append(r.entries[k], callbackEntry{h, cb})
	r.keyOf[h] = k
	return h
}

// Remove removes the callback with the given handle. Removing an unknown
// handle does nothing.
func (r *Registry) Remove(h Handle) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	k, ok := r.keyOf[h]
	if !ok {
		return
	}
	delete(r.keyOf, h)
	entries := r.entries[k]
	for i, e := range entries {
		if e.handle == h {
			entries = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(entries) == 0 {
		delete(r.entries, k)
	} else {
		r.entries[k] = entries
	}
}

// Dispatch calls all callbacks registered for exactly the given key, in the
// order they were added. It returns the number of callbacks called.
func (r *Registry) Dispatch(k ui.Key) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	entries := r.entries[k]
	for _, e := range entries {
		e.cb(k.Code, k.Mod)
	}
	return len(entries)
}

// Len returns the number of registered callbacks.
func (r *Registry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.keyOf)
}
