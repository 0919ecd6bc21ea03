package sys

import (
	"os"
	"os/signal"
	"sync"
)

// Disposition describes what happens when the process receives an interrupt
// signal (SIGINT on Unix, Ctrl-C on Windows). The zero value is the default
// disposition, which terminates the process.
//
// Dispositions are comparable; two dispositions are equal if they were
// returned from the same call to Handle, or are both default or both ignored.
type Disposition struct {
	ignored bool
	h       *handlerBox
}

type handlerBox struct{ f func(os.Signal) }

var (
	// DefaultDisposition terminates the process on interrupt.
	DefaultDisposition = Disposition{}
	// IgnoreDisposition discards interrupts.
	IgnoreDisposition = Disposition{ignored: true}
)

// Handle returns a disposition that calls f for every interrupt. The function
// is called on a dedicated goroutine.
func Handle(f func(os.Signal)) Disposition {
	return Disposition{h: &handlerBox{f}}
}

// IsDefault reports whether d is the default disposition.
func (d Disposition) IsDefault() bool { return !d.ignored && d.h == nil }

// IsIgnored reports whether d discards interrupts.
func (d Disposition) IsIgnored() bool { return d.ignored }

// Handler returns the function called on interrupt, or nil if d is the
// default or ignored disposition.
func (d Disposition) Handler() func(os.Signal) {
	if d.h == nil {
		return nil
	}
	return d.h.f
}

var (
	interruptMutex   sync.Mutex
	interruptInit    bool
	interruptCurrent Disposition
	interruptCh      chan os.Signal
)

// Interrupt returns the current interrupt disposition.
func Interrupt() Disposition {
	interruptMutex.Lock()
	defer interruptMutex.Unlock()
	initInterrupt()
	return interruptCurrent
}

// SetInterruptHandler installs d as the process-wide interrupt disposition and
// returns the previous one. The initial disposition is IgnoreDisposition if
// the process started with interrupts ignored, and DefaultDisposition
// otherwise.
func SetInterruptHandler(d Disposition) Disposition {
	interruptMutex.Lock()
	defer interruptMutex.Unlock()
	initInterrupt()
	prev := interruptCurrent
	interruptCurrent = d
	switch {
	case d.h != nil:
		if interruptCh == nil {
			interruptCh = make(chan os.Signal, 1)
			go relayInterrupts(interruptCh)
		}
		signal.Notify(interruptCh, os.Interrupt)
	case d.ignored:
		if interruptCh != nil {
			signal.Stop(interruptCh)
		}
		signal.Ignore(os.Interrupt)
	default:
		if interruptCh != nil {
			signal.Stop(interruptCh)
		}
		signal.Reset(os.Interrupt)
	}
	return prev
}

func initInterrupt() {
	if interruptInit {
		return
	}
	interruptInit = true
	if signal.Ignored(os.Interrupt) {
		interruptCurrent = IgnoreDisposition
	}
}

func relayInterrupts(ch <-chan os.Signal) {
	for sig := range ch {
		interruptMutex.Lock()
		f := interruptCurrent.Handler()
		interruptMutex.Unlock()
		if f != nil {
			f(sig)
		}
	}
}
