package kbd

import (
	"errors"
	"os"
	"sync/atomic"

	"github.com/elves/keyhandler/pkg/errutil"
	"github.com/elves/keyhandler/pkg/ui"
)

// Maximum number of bytes decoded as one key press.
const chunkSize = 10

// reader is the loop that reads from the device and dispatches keys.
type reader struct {
	dev      Device
	decode   func([]byte) (ui.KeyCode, ui.Mod)
	registry *Registry
	snap     *snapshot

	stopping atomic.Bool
	// Closed when the loop has exited; err is set before that.
	exited chan struct{}
	err    error
}

func newReader(dev Device, decode func([]byte) (ui.KeyCode, ui.Mod), registry *Registry, snap *snapshot) *reader {
	return &reader{dev: dev, decode: decode, registry: registry, snap: snap,
		exited: make(chan struct{})}
}

// run reads keys until requestStop is called or reading fails, and then
// restores the device mode.
func (r *reader) run() {
	var err error
	buf := make([]byte, chunkSize)
	for !r.stopping.Load() {
		n, rerr := r.dev.Read(buf)
		if rerr != nil {
			if errors.Is(rerr, os.ErrDeadlineExceeded) {
				continue
			}
			err = &ReadError{rerr}
			logger.Println(err)
			break
		}
		if n == 0 {
			continue
		}
		code, mod := r.decode(buf[:n])
		k := ui.Key{Code: code, Mod: mod}
		called := r.registry.Dispatch(k)
		logger.Printf("read %q, key %v, %d callbacks", buf[:n], k, called)
	}
	r.err = errutil.Multi(err, r.snap.release())
	close(r.exited)
}

func (r *reader) requestStop() { r.stopping.Store(true) }

// wait waits for the loop to exit and returns the error it recorded.
func (r *reader) wait() error {
	<-r.exited
	return r.err
}

// result returns whether the loop has exited, and if so, the error it
// recorded.
func (r *reader) result() (bool, error) {
	select {
	case <-r.exited:
		return true, r.err
	default:
		return false, nil
	}
}
