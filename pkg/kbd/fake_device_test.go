package kbd

import (
	"sync"
	"time"
)

// fakeDevice is a Device driven by the test.
type fakeDevice struct {
	tty    bool
	getErr error

	reads chan fakeRead

	mutex  sync.Mutex
	mode   Mode
	setErr error
	sets   []Mode
}

type fakeRead struct {
	data string
	err  error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{tty: true, reads: make(chan fakeRead, 16)}
}

func (d *fakeDevice) IsTerminal() bool { return d.tty }

func (d *fakeDevice) GetMode() (Mode, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.mode, d.getErr
}

func (d *fakeDevice) SetMode(m Mode) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.setErr != nil {
		return d.setErr
	}
	d.sets = append(d.sets, m)
	return nil
}

func (d *fakeDevice) Read(p []byte) (int, error) {
	select {
	case r := <-d.reads:
		if r.err != nil {
			return 0, r.err
		}
		return copy(p, r.data), nil
	case <-time.After(time.Millisecond):
		return 0, nil
	}
}

func (d *fakeDevice) feed(data string) { d.reads <- fakeRead{data: data} }

func (d *fakeDevice) fail(err error) { d.reads <- fakeRead{err: err} }

func (d *fakeDevice) setFailure(err error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.setErr = err
}

func (d *fakeDevice) modesSet() []Mode {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return append([]Mode(nil), d.sets...)
}
