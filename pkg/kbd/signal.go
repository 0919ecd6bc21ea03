package kbd

import (
	"os"

	"github.com/elves/keyhandler/pkg/sys"
)

// Used for exiting on interrupt. Can be overridden in tests.
var exit = os.Exit

// interruptHook is the interrupt handler installed by a Handler, together
// with the disposition it replaced.
type interruptHook struct {
	prev sys.Disposition
	own  sys.Disposition
	stop func()
}

// installInterruptHook installs an interrupt handler that restores the saved
// terminal mode before passing the interrupt on to the previous disposition.
func installInterruptHook(stop func()) *interruptHook {
	h := &interruptHook{stop: stop}
	h.own = sys.Handle(h.handle)
	h.prev = sys.SetInterruptHandler(h.own)
	return h
}

func (h *interruptHook) handle(sig os.Signal) {
	if h.prev.IsDefault() {
		// Terminate like the default disposition would, with a status that
		// reflects whether the terminal was restored.
		if RestoreMode() != nil {
			exit(1)
		} else {
			exit(0)
		}
		return
	}
	h.stop()
	if err := RestoreMode(); err != nil {
		logger.Println("restoring terminal on interrupt:", err)
	}
	if f := h.prev.Handler(); f != nil {
		f(sig)
	}
}

// uninstall puts back the disposition replaced by the hook. If the hook has
// itself been replaced in the meantime, the replacement is kept.
func (h *interruptHook) uninstall() {
	cur := sys.SetInterruptHandler(h.prev)
	if cur != h.own {
		sys.SetInterruptHandler(cur)
		logger.Println("interrupt handler was replaced while the keyboard handler was active; keeping the replacement")
	}
}
