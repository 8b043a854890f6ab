package wl

import "os"

type KeyboardKeymapFormat uint32

const (
	KeyboardKeymapFormatNoKeymap KeyboardKeymapFormat = iota
	KeyboardKeymapFormatXkbV1
)

type KeyState uint32

const (
	KeyStateReleased KeyState = iota
	KeyStatePressed
)

// Keyboard is a wl_keyboard obtained from a Seat.
type Keyboard struct {
	Keymap     func(format KeyboardKeymapFormat, file *os.File, size uint32)
	Enter      func(serial uint32, s *Surface, keys []byte)
	Leave      func(serial uint32, s *Surface)
	Key        func(serial, time, key uint32, state KeyState)
	Modifiers  func(serial, modsDepressed, modsLatched, modsLocked, group uint32)
	RepeatInfo func(rate, delay int32)

	obj     keyboardObject
	display *Display
}

func (kb *Keyboard) Release() {
	kb.display.Enqueue(kb.obj.Release())
	kb.display.DeleteObject(kb.obj.id)
}

type keyboardEvents struct {
	kb *Keyboard
}

func (lis keyboardEvents) Keymap(format uint32, fd *os.File, size uint32) {
	if lis.kb.Keymap != nil {
		lis.kb.Keymap(KeyboardKeymapFormat(format), fd, size)
		return
	}
	if fd != nil {
		fd.Close()
	}
}

func (lis keyboardEvents) Enter(serial uint32, surface uint32, keys []byte) {
	if lis.kb.Enter != nil {
		lis.kb.Enter(serial, lookupSurface(lis.kb.display, surface), keys)
	}
}

func (lis keyboardEvents) Leave(serial uint32, surface uint32) {
	if lis.kb.Leave != nil {
		lis.kb.Leave(serial, lookupSurface(lis.kb.display, surface))
	}
}

func (lis keyboardEvents) Key(serial uint32, time uint32, key uint32, state uint32) {
	if lis.kb.Key != nil {
		lis.kb.Key(serial, time, key, KeyState(state))
	}
}

func (lis keyboardEvents) Modifiers(serial, modsDepressed, modsLatched, modsLocked, group uint32) {
	if lis.kb.Modifiers != nil {
		lis.kb.Modifiers(serial, modsDepressed, modsLatched, modsLocked, group)
	}
}

func (lis keyboardEvents) RepeatInfo(rate int32, delay int32) {
	if lis.kb.RepeatInfo != nil {
		lis.kb.RepeatInfo(rate, delay)
	}
}
