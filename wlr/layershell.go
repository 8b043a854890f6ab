package wlr

import (
	"github.com/phisch/phrame/wire"
	"github.com/phisch/phrame/wl"
)

// Layer selects which compositor stacking layer a surface lives in.
type Layer uint32

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerTop
	LayerOverlay
)

func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerBottom:
		return "bottom"
	case LayerTop:
		return "top"
	case LayerOverlay:
		return "overlay"
	}
	return "unknown"
}

// Anchor is a bitmask of screen edges a layer surface sticks to.
type Anchor uint32

const (
	AnchorTop Anchor = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight
)

func (a Anchor) Has(b Anchor) bool {
	return a&b == b
}

type KeyboardInteractivity uint32

const (
	KeyboardInteractivityNone KeyboardInteractivity = iota
	KeyboardInteractivityExclusive
	KeyboardInteractivityOnDemand
)

// LayerShell is the zwlr_layer_shell_v1 global.
type LayerShell struct {
	obj     layerShellObject
	display *wl.Display
}

func IsLayerShell(i wl.Interface) bool {
	return i.Is(layerShellInterface, layerShellVersion)
}

func BindLayerShell(display *wl.Display, name uint32) *LayerShell {
	shell := LayerShell{display: display}
	display.AddObject(&shell.obj)

	registry := display.GetRegistry()
	registry.Bind(name, layerShellInterface, layerShellVersion, shell.obj.id)

	return &shell
}

func (shell *LayerShell) Object() wire.Object {
	return &shell.obj
}

// GetLayerSurface assigns the layer role to a plain wl_surface. A nil
// output lets the compositor pick one.
func (shell *LayerShell) GetLayerSurface(s *wl.Surface, output *wl.Output, layer Layer, namespace string) *LayerSurface {
	ls := LayerSurface{display: shell.display, wl: s}
	ls.obj.listener = layerSurfaceEvents{ls: &ls}
	shell.display.AddObject(&ls.obj)

	var outputID uint32
	if output != nil {
		outputID = output.Object().ID()
	}
	shell.display.Enqueue(shell.obj.GetLayerSurface(ls.obj.id, s.ID(), outputID, uint32(layer), namespace))

	return &ls
}

func (shell *LayerShell) Destroy() {
	shell.display.Enqueue(shell.obj.Destroy())
	shell.display.DeleteObject(shell.obj.id)
}

// LayerSurface is a zwlr_layer_surface_v1. Its attributes only take
// effect on the next wl_surface.commit, and, like xdg_surface, every
// configure must be acked.
type LayerSurface struct {
	// Configure reports the size granted by the compositor. A zero
	// dimension leaves that axis to the client.
	Configure func(serial, width, height uint32)
	Closed    func()

	obj     layerSurfaceObject
	display *wl.Display
	wl      *wl.Surface
}

func (ls *LayerSurface) WlSurface() *wl.Surface {
	return ls.wl
}

func (ls *LayerSurface) SetSize(width, height uint32) {
	ls.display.Enqueue(ls.obj.SetSize(width, height))
}

func (ls *LayerSurface) SetAnchor(anchor Anchor) {
	ls.display.Enqueue(ls.obj.SetAnchor(uint32(anchor)))
}

func (ls *LayerSurface) SetExclusiveZone(zone int32) {
	ls.display.Enqueue(ls.obj.SetExclusiveZone(zone))
}

func (ls *LayerSurface) SetMargin(top, right, bottom, left int32) {
	ls.display.Enqueue(ls.obj.SetMargin(top, right, bottom, left))
}

func (ls *LayerSurface) SetKeyboardInteractivity(ki KeyboardInteractivity) {
	ls.display.Enqueue(ls.obj.SetKeyboardInteractivity(uint32(ki)))
}

func (ls *LayerSurface) SetLayer(layer Layer) {
	ls.display.Enqueue(ls.obj.SetLayer(uint32(layer)))
}

func (ls *LayerSurface) AckConfigure(serial uint32) {
	ls.display.Enqueue(ls.obj.AckConfigure(serial))
}

func (ls *LayerSurface) Destroy() {
	ls.display.Enqueue(ls.obj.Destroy())
	ls.display.DeleteObject(ls.obj.id)
}

type layerSurfaceEvents struct {
	ls *LayerSurface
}

func (lis layerSurfaceEvents) Configure(serial, width, height uint32) {
	if lis.ls.Configure != nil {
		lis.ls.Configure(serial, width, height)
	}
}

func (lis layerSurfaceEvents) Closed() {
	if lis.ls.Closed != nil {
		lis.ls.Closed()
	}
}
