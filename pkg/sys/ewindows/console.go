//go:build windows

// Package ewindows provides Windows-specific console utilities.
package ewindows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var kernel32 = windows.NewLazySystemDLL("kernel32.dll")

// https://docs.microsoft.com/en-us/windows/console/readconsoleinput
//
// BOOL WINAPI ReadConsoleInput(
//
//		_In_  HANDLE        hConsoleInput,
//		_Out_ PINPUT_RECORD lpBuffer,
//		_In_  DWORD         nLength,
//		_Out_ LPDWORD       lpNumberOfEventsRead
//	  );
var readConsoleInput = kernel32.NewProc("ReadConsoleInputW")

// ReadConsoleInput input wraps the homonymous Windows API call.
func ReadConsoleInput(h windows.Handle, buf []InputRecord) (int, error) {
	var nr uintptr
	r, _, err := readConsoleInput.Call(uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), uintptr(unsafe.Pointer(&nr)))
	if r != 0 {
		err = nil
	}
	return int(nr), err
}

// https://docs.microsoft.com/en-us/windows/console/getnumberofconsoleinputevents
//
// BOOL WINAPI GetNumberOfConsoleInputEvents(
//
//		_In_  HANDLE  hConsoleInput,
//		_Out_ LPDWORD lpcNumberOfEvents
//	  );
var getNumberOfConsoleInputEvents = kernel32.NewProc("GetNumberOfConsoleInputEvents")

// GetNumberOfConsoleInputEvents wraps the homonymous Windows API call.
func GetNumberOfConsoleInputEvents(h windows.Handle) (int, error) {
	var n uint32
	r, _, err := getNumberOfConsoleInputEvents.Call(uintptr(h),
		uintptr(unsafe.Pointer(&n)))
	if r != 0 {
		err = nil
	}
	return int(n), err
}

// Values for InputRecord.EventType.
const (
	KEY_EVENT                = 0x1
	MOUSE_EVENT              = 0x2
	WINDOW_BUFFER_SIZE_EVENT = 0x4
	MENU_EVENT               = 0x8
	FOCUS_EVENT              = 0x10
)

// InputRecord is the INPUT_RECORD structure.
type InputRecord struct {
	EventType uint16
	Pad_cgo_0 [2]byte
	Event     [16]byte
}

// KeyEvent is the KEY_EVENT_RECORD structure.
type KeyEvent struct {
	BKeyDown          int32
	WRepeatCount      uint16
	WVirtualKeyCode   uint16
	WVirtualScanCode  uint16
	UChar             [2]byte
	DwControlKeyState uint32
}

// Values for KeyEvent.DwControlKeyState, from
// https://docs.microsoft.com/en-us/windows/console/key-event-record-str
const (
	RIGHT_ALT_PRESSED  = 0x01
	LEFT_ALT_PRESSED   = 0x02
	RIGHT_CTRL_PRESSED = 0x04
	LEFT_CTRL_PRESSED  = 0x08
	SHIFT_PRESSED      = 0x10
	ENHANCED_KEY       = 0x100
)

// KeyEvent returns the key event stored in the record, or nil if the record
// holds another kind of event.
func (input *InputRecord) KeyEvent() *KeyEvent {
	if input.EventType != KEY_EVENT {
		return nil
	}
	return (*KeyEvent)(unsafe.Pointer(&input.Event))
}

// Char returns the UTF-16 code unit carried by the event.
func (e *KeyEvent) Char() uint16 {
	return uint16(e.UChar[0]) | uint16(e.UChar[1])<<8
}
