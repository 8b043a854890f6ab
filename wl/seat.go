package wl

import "github.com/phisch/phrame/wire"

type SeatCapability uint32

const (
	SeatCapabilityPointer SeatCapability = 1 << iota
	SeatCapabilityKeyboard
	SeatCapabilityTouch
)

func (c SeatCapability) Has(want SeatCapability) bool {
	return c&want != 0
}

// Seat is a wl_seat: a group of input devices. Capabilities come and
// go at runtime through the Capabilities callback.
type Seat struct {
	Capabilities func(SeatCapability)
	Name         func(string)

	obj     seatObject
	display *Display
}

func IsSeat(i Interface) bool {
	return i.Is(seatInterface, seatVersion)
}

func BindSeat(display *Display, name uint32) *Seat {
	seat := Seat{display: display}
	seat.obj.listener = seatEvents{seat: &seat}
	display.AddObject(&seat.obj)

	registry := display.GetRegistry()
	registry.Bind(name, seatInterface, seatVersion, seat.obj.id)

	return &seat
}

func (seat *Seat) Object() wire.Object {
	return &seat.obj
}

func (seat *Seat) GetKeyboard() *Keyboard {
	kb := Keyboard{display: seat.display}
	kb.obj.listener = keyboardEvents{kb: &kb}
	seat.display.AddObject(&kb.obj)
	seat.display.Enqueue(seat.obj.GetKeyboard(kb.obj.id))

	return &kb
}

func (seat *Seat) GetPointer() *Pointer {
	p := Pointer{display: seat.display}
	p.obj.listener = pointerEvents{p: &p}
	seat.display.AddObject(&p.obj)
	seat.display.Enqueue(seat.obj.GetPointer(p.obj.id))

	return &p
}

func (seat *Seat) Release() {
	seat.display.Enqueue(seat.obj.Release())
	seat.display.DeleteObject(seat.obj.id)
}

type seatEvents struct {
	seat *Seat
}

func (lis seatEvents) Capabilities(cap uint32) {
	if lis.seat.Capabilities != nil {
		lis.seat.Capabilities(SeatCapability(cap))
	}
}

func (lis seatEvents) Name(name string) {
	if lis.seat.Name != nil {
		lis.seat.Name(name)
	}
}
