package kbd

import "github.com/elves/keyhandler/pkg/ui"

// Table is an immutable bidirectional mapping between native codes of type C
// and keys. Some native codes imply a modifier (e.g. the xterm sequence for
// Shift-F1).
type Table[C comparable] struct {
	toKey    map[C]ui.Key
	toNative map[ui.Key]C
	natives  []C
}

type tableEntry[C comparable] struct {
	native C
	key    ui.Key
}

// newTable builds a Table. When several entries map to the same key, the first
// one is used for the reverse mapping.
func newTable[C comparable](entries []tableEntry[C]) *Table[C] {
	t := &Table[C]{
		toKey:    make(map[C]ui.Key, len(entries)),
		toNative: make(map[ui.Key]C),
	}
	for _, e := range entries {
		if _, dup := t.toKey[e.native]; dup {
			continue
		}
		t.toKey[e.native] = e.key
		t.natives = append(t.natives, e.native)
		if _, ok := t.toNative[e.key]; !ok {
			t.toNative[e.key] = e.native
		}
	}
	return t
}

// Lookup returns the key a native code decodes to.
func (t *Table[C]) Lookup(native C) (ui.Key, bool) {
	k, ok := t.toKey[native]
	return k, ok
}

// Native returns the native code produced by the key when pressed without
// modifiers.
func (t *Table[C]) Native(code ui.KeyCode) (C, bool) {
	return t.NativeOf(ui.MakeKey(code))
}

// NativeOf returns the native code that decodes to exactly the given key. Keys
// with modifiers only have native codes when the table has an entry implying
// the modifiers.
func (t *Table[C]) NativeOf(k ui.Key) (C, bool) {
	c, ok := t.toNative[k]
	return c, ok
}

// Natives returns all native codes in the table, in the order they were
// defined.
func (t *Table[C]) Natives() []C {
	return append([]C(nil), t.natives...)
}

// Len returns the number of native codes in the table.
func (t *Table[C]) Len() int { return len(t.natives) }
