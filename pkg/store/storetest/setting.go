package storetest

import (
	"testing"

	"github.com/elves/keyhandler/pkg/store/storedefs"
)

// TestSetting tests the settings functionality of a Store.
func TestSetting(t *testing.T, store storedefs.Store) {
	t.Helper()

	name := "recording"
	value := "on"

	if _, err := store.Setting(name); err != storedefs.ErrNoSetting {
		t.Error("want ErrNoSetting, got", err)
	}

	if err := store.SetSetting(name, value); err != nil {
		t.Error("Failed to set setting:", err)
	}

	if v, err := store.Setting(name); err != nil {
		t.Error("Failed to get setting:", err)
	} else if v != value {
		t.Errorf("got %q, want %q", v, value)
	}

	if err := store.DelSetting(name); err != nil {
		t.Error("Failed to delete setting:", err)
	}

	if _, err := store.Setting(name); err != storedefs.ErrNoSetting {
		t.Error("want ErrNoSetting, got", err)
	}
}
