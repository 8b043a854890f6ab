package wl

import "github.com/phisch/phrame/wire"

// PointerButton is a Linux input event code for a pointer button.
type PointerButton uint32

const (
	PointerButtonLeft PointerButton = 0x110 + iota
	PointerButtonRight
	PointerButtonMiddle
	PointerButtonSide
	PointerButtonExtra
	PointerButtonForward
	PointerButtonBack
	PointerButtonTask
)

func (b PointerButton) String() string {
	switch b {
	case PointerButtonLeft:
		return "left"
	case PointerButtonRight:
		return "right"
	case PointerButtonMiddle:
		return "middle"
	case PointerButtonSide:
		return "side"
	case PointerButtonExtra:
		return "extra"
	case PointerButtonForward:
		return "forward"
	case PointerButtonBack:
		return "back"
	case PointerButtonTask:
		return "task"
	}
	return "unknown"
}

type PointerButtonState uint32

const (
	PointerButtonStateReleased PointerButtonState = iota
	PointerButtonStatePressed
)

type PointerAxis uint32

const (
	PointerAxisVerticalScroll PointerAxis = iota
	PointerAxisHorizontalScroll
)

// Pointer is a wl_pointer obtained from a Seat.
type Pointer struct {
	Enter  func(serial uint32, s *Surface, x, y wire.Fixed)
	Leave  func(serial uint32, s *Surface)
	Motion func(time uint32, x, y wire.Fixed)
	Button func(serial, time uint32, button PointerButton, state PointerButtonState)
	Axis   func(time uint32, axis PointerAxis, value wire.Fixed)
	Frame  func()

	obj     pointerObject
	display *Display
}

func (p *Pointer) Release() {
	p.display.Enqueue(p.obj.Release())
	p.display.DeleteObject(p.obj.id)
}

type pointerEvents struct {
	p *Pointer
}

func (lis pointerEvents) Enter(serial, surface uint32, surfaceX, surfaceY wire.Fixed) {
	if lis.p.Enter != nil {
		lis.p.Enter(serial, lookupSurface(lis.p.display, surface), surfaceX, surfaceY)
	}
}

func (lis pointerEvents) Leave(serial, surface uint32) {
	if lis.p.Leave != nil {
		lis.p.Leave(serial, lookupSurface(lis.p.display, surface))
	}
}

func (lis pointerEvents) Motion(time uint32, surfaceX, surfaceY wire.Fixed) {
	if lis.p.Motion != nil {
		lis.p.Motion(time, surfaceX, surfaceY)
	}
}

func (lis pointerEvents) Button(serial, time, button, state uint32) {
	if lis.p.Button != nil {
		lis.p.Button(serial, time, PointerButton(button), PointerButtonState(state))
	}
}

func (lis pointerEvents) Axis(time, axis uint32, value wire.Fixed) {
	if lis.p.Axis != nil {
		lis.p.Axis(time, PointerAxis(axis), value)
	}
}

func (lis pointerEvents) Frame() {
	if lis.p.Frame != nil {
		lis.p.Frame()
	}
}

func (lis pointerEvents) AxisSource(axisSource uint32) {}

func (lis pointerEvents) AxisStop(time, axis uint32) {}

func (lis pointerEvents) AxisDiscrete(axis uint32, discrete int32) {}
