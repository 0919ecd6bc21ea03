package kbd

import "sync/atomic"

// A mode saved before switching a device to raw mode. There is at most one per
// process, since an interrupt must be able to restore the mode without
// knowing which Handler is active.
type snapshot struct {
	dev  Device
	mode Mode
}

var saved atomic.Pointer[snapshot]

// enterRawMode saves the current mode of dev and switches it to raw mode.
func enterRawMode(dev Device) (*snapshot, error) {
	mode, err := dev.GetMode()
	if err != nil {
		return nil, &DeviceConfigError{"get", err}
	}
	s := &snapshot{dev, mode}
	saved.Store(s)
	err = dev.SetMode(rawMode(mode))
	if err != nil {
		saved.CompareAndSwap(s, nil)
		return nil, &DeviceConfigError{"set", err}
	}
	return s, nil
}

// RestoreMode applies the mode saved when the active Handler switched its
// device to raw mode. It does nothing if there is no active Handler, and can
// be called any number of times. It only makes one system call and doesn't
// acquire any lock, so it is safe to call from an interrupt handler.
func RestoreMode() error {
	if s := saved.Load(); s != nil {
		return s.restore()
	}
	return nil
}

func (s *snapshot) restore() error {
	if err := s.dev.SetMode(s.mode); err != nil {
		return &DeviceConfigError{"restore", err}
	}
	return nil
}

// release restores the mode and forgets s if it is still the active
// snapshot.
func (s *snapshot) release() error {
	err := s.restore()
	saved.CompareAndSwap(s, nil)
	return err
}
