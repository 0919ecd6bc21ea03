package store_test

import (
	"testing"

	"github.com/elves/keyhandler/pkg/store"
	"github.com/elves/keyhandler/pkg/store/storetest"
)

func TestKey(t *testing.T) {
	storetest.TestKey(t, store.MustTempStore(t))
}
