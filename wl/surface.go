package wl

// Surface is a wl_surface: the raw drawable that both buffers and
// shell roles attach to. The Surface itself is the protocol object
// registered with the Display, so events that name a surface by ID
// resolve back to the same *Surface that created it.
type Surface struct {
	Entered              func(output uint32)
	Left                 func(output uint32)
	PreferredBufferScale func(factor int32)

	surfaceObject
	display *Display
}

func (s *Surface) Display() *Display {
	return s.display
}

func (s *Surface) Attach(buf *Buffer, x, y int32) {
	s.display.Enqueue(s.surfaceObject.Attach(buf.obj.id, x, y))
}

func (s *Surface) Damage(x, y, width, height int32) {
	s.display.Enqueue(s.surfaceObject.Damage(x, y, width, height))
}

// Frame requests a frame callback: done fires when the compositor
// wants the next frame drawn.
func (s *Surface) Frame(done func(time uint32)) {
	callback := Callback{Done: done}
	callback.obj.listener = callbackEvents{callback: &callback}
	s.display.AddObject(&callback.obj)
	s.display.Enqueue(s.surfaceObject.Frame(callback.obj.id))
}

// SetInputRegion restricts pointer input to the given region. A nil
// region restores the default, the whole surface.
func (s *Surface) SetInputRegion(region *Region) {
	var id uint32
	if region != nil {
		id = region.obj.id
	}
	s.display.Enqueue(s.surfaceObject.SetInputRegion(id))
}

func (s *Surface) Commit() {
	s.display.Enqueue(s.surfaceObject.Commit())
}

func (s *Surface) Destroy() {
	s.display.Enqueue(s.surfaceObject.Destroy())
	s.display.DeleteObject(s.id)
}

// lookupSurface resolves a surface named by ID in an event. It
// returns nil for IDs that don't correspond to a live surface.
func lookupSurface(display *Display, id uint32) *Surface {
	s, _ := display.GetObject(id).(*Surface)
	return s
}

type surfaceEvents struct {
	surface *Surface
}

func (lis surfaceEvents) Enter(output uint32) {
	if lis.surface.Entered != nil {
		lis.surface.Entered(output)
	}
}

func (lis surfaceEvents) Leave(output uint32) {
	if lis.surface.Left != nil {
		lis.surface.Left(output)
	}
}

func (lis surfaceEvents) PreferredBufferScale(factor int32) {
	if lis.surface.PreferredBufferScale != nil {
		lis.surface.PreferredBufferScale(factor)
	}
}

func (lis surfaceEvents) PreferredBufferTransform(transform uint32) {}

// Region is a wl_region, a set of rectangles used to restrict input.
type Region struct {
	obj     regionObject
	display *Display
}

func (r *Region) Add(x, y, width, height int32) {
	r.display.Enqueue(r.obj.Add(x, y, width, height))
}

func (r *Region) Subtract(x, y, width, height int32) {
	r.display.Enqueue(r.obj.Subtract(x, y, width, height))
}

func (r *Region) Destroy() {
	r.display.Enqueue(r.obj.Destroy())
	r.display.DeleteObject(r.obj.id)
}
