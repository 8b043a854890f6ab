package xdg

import (
	"github.com/phisch/phrame/wire"
	"github.com/phisch/phrame/wl"
)

// WmBase is the xdg_wm_base global. It hands out xdg_surface roles
// and answers compositor pings on its own.
type WmBase struct {
	obj     wmBaseObject
	display *wl.Display
}

func IsWmBase(i wl.Interface) bool {
	return i.Is(wmBaseInterface, wmBaseVersion)
}

func BindWmBase(display *wl.Display, name uint32) *WmBase {
	wm := WmBase{display: display}
	wm.obj.listener = wmBaseEvents{wm: &wm}
	display.AddObject(&wm.obj)

	registry := display.GetRegistry()
	registry.Bind(name, wmBaseInterface, wmBaseVersion, wm.obj.id)

	return &wm
}

func (wm *WmBase) Object() wire.Object {
	return &wm.obj
}

// GetSurface assigns the xdg_surface role to a plain wl_surface.
func (wm *WmBase) GetSurface(s *wl.Surface) *Surface {
	xs := Surface{display: wm.display, wl: s}
	xs.obj.listener = surfaceEvents{s: &xs}
	wm.display.AddObject(&xs.obj)
	wm.display.Enqueue(wm.obj.GetXdgSurface(xs.obj.id, s.ID()))

	return &xs
}

func (wm *WmBase) Destroy() {
	wm.display.Enqueue(wm.obj.Destroy())
	wm.display.DeleteObject(wm.obj.id)
}

type wmBaseEvents struct {
	wm *WmBase
}

func (lis wmBaseEvents) Ping(serial uint32) {
	lis.wm.display.Enqueue(lis.wm.obj.Pong(serial))
}
