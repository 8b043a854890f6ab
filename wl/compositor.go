package wl

import "github.com/phisch/phrame/wire"

// Compositor is the wl_compositor global. It creates surfaces and
// regions.
type Compositor struct {
	obj     compositorObject
	display *Display
}

func IsCompositor(i Interface) bool {
	return i.Is(compositorInterface, compositorVersion)
}

func BindCompositor(display *Display, name uint32) *Compositor {
	compositor := Compositor{display: display}
	display.AddObject(&compositor.obj)

	registry := display.GetRegistry()
	registry.Bind(name, compositorInterface, compositorVersion, compositor.obj.id)

	return &compositor
}

func (c *Compositor) Object() wire.Object {
	return &c.obj
}

func (c *Compositor) CreateSurface() *Surface {
	s := Surface{display: c.display}
	s.listener = surfaceEvents{surface: &s}
	c.display.AddObject(&s)
	c.display.Enqueue(c.obj.CreateSurface(s.id))

	return &s
}

func (c *Compositor) CreateRegion() *Region {
	r := Region{display: c.display}
	c.display.AddObject(&r.obj)
	c.display.Enqueue(c.obj.CreateRegion(r.obj.id))

	return &r
}
