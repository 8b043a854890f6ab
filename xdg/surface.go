package xdg

import "github.com/phisch/phrame/wl"

// Surface is an xdg_surface, the base role shared by toplevels and
// popups. Every configure event must be acked before the next commit.
type Surface struct {
	// Configure is called with the serial that AckConfigure expects.
	Configure func(serial uint32)

	obj     surfaceObject
	display *wl.Display
	wl      *wl.Surface
}

func (s *Surface) WlSurface() *wl.Surface {
	return s.wl
}

func (s *Surface) GetToplevel() *Toplevel {
	t := Toplevel{display: s.display, surface: s}
	t.obj.listener = toplevelEvents{t: &t}
	s.display.AddObject(&t.obj)
	s.display.Enqueue(s.obj.GetToplevel(t.obj.id))

	return &t
}

func (s *Surface) SetWindowGeometry(x, y, width, height int32) {
	s.display.Enqueue(s.obj.SetWindowGeometry(x, y, width, height))
}

func (s *Surface) AckConfigure(serial uint32) {
	s.display.Enqueue(s.obj.AckConfigure(serial))
}

func (s *Surface) Destroy() {
	s.display.Enqueue(s.obj.Destroy())
	s.display.DeleteObject(s.obj.id)
}

type surfaceEvents struct {
	s *Surface
}

func (lis surfaceEvents) Configure(serial uint32) {
	if lis.s.Configure != nil {
		lis.s.Configure(serial)
	}
}
