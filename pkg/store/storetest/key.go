package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elves/keyhandler/pkg/store/storedefs"
	"github.com/elves/keyhandler/pkg/ui"
)

var (
	keysToAdd = []ui.Key{
		ui.MakeKey(ui.A),
		ui.MakeKey(ui.A, ui.Shift),
		ui.MakeKey(ui.C, ui.Ctrl),
		ui.MakeKey(ui.CursorUp, ui.Alt),
		ui.MakeKey(ui.F12, ui.Ctrl, ui.Alt),
	}
)

// TestKey tests the key history functionality of a Store.
func TestKey(t *testing.T, store storedefs.Store) {
	t.Helper()

	startSeq, err := store.NextKeySeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextKeySeq() -> %v, %v, want %v, nil",
			startSeq, err, 1)
	}
	if _, err := store.LastKey(); !matchErr(err, storedefs.ErrNoMatchingKey) {
		t.Errorf("store.LastKey() on empty history -> error %v, want %v",
			err, storedefs.ErrNoMatchingKey)
	}

	// AddKey
	for i, k := range keysToAdd {
		wantSeq := startSeq + i
		seq, err := store.AddKey(k)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddKey(%v) -> %v, %v, want %v, nil",
				k, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextKeySeq()
	wantedEndSeq := startSeq + len(keysToAdd)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextKeySeq() -> %v, %v, want %v, nil",
			endSeq, err, wantedEndSeq)
	}

	// Key
	for i, wantKey := range keysToAdd {
		seq := i + startSeq
		k, err := store.Key(seq)
		if k != wantKey || err != nil {
			t.Errorf("store.Key(%v) -> %v, %v, want %v, nil",
				seq, k, err, wantKey)
		}
	}

	// KeysWithSeq
	entries, err := store.KeysWithSeq(startSeq+1, startSeq+3)
	wantEntries := []storedefs.KeyEntry{
		{Key: keysToAdd[1], Seq: startSeq + 1},
		{Key: keysToAdd[2], Seq: startSeq + 2},
	}
	if diff := cmp.Diff(wantEntries, entries); diff != "" || err != nil {
		t.Errorf("store.KeysWithSeq -> error %v, diff (-want +got):\n%s", err, diff)
	}

	// LastKey
	last, err := store.LastKey()
	wantLast := storedefs.KeyEntry{Key: keysToAdd[4], Seq: endSeq - 1}
	if last != wantLast || err != nil {
		t.Errorf("store.LastKey() -> %v, %v, want %v, nil", last, err, wantLast)
	}

	// DelKey
	store.DelKey(endSeq - 1)
	if _, err := store.Key(endSeq - 1); !matchErr(err, storedefs.ErrNoMatchingKey) {
		t.Errorf("store.Key(%v) after deletion -> error %v, want %v",
			endSeq-1, err, storedefs.ErrNoMatchingKey)
	}
	last, err = store.LastKey()
	wantLast = storedefs.KeyEntry{Key: keysToAdd[3], Seq: endSeq - 2}
	if last != wantLast || err != nil {
		t.Errorf("store.LastKey() after deletion -> %v, %v, want %v, nil",
			last, err, wantLast)
	}
	// Sequence numbers are not reused.
	if seq, _ := store.NextKeySeq(); seq != endSeq {
		t.Errorf("store.NextKeySeq() after deletion -> %v, want %v", seq, endSeq)
	}
}
