package xdg

import (
	"encoding/binary"

	"github.com/phisch/phrame/wl"
)

type ToplevelState uint32

const (
	ToplevelStateMaximized ToplevelState = 1 + iota
	ToplevelStateFullscreen
	ToplevelStateResizing
	ToplevelStateActivated
)

func (s ToplevelState) String() string {
	switch s {
	case ToplevelStateMaximized:
		return "maximized"
	case ToplevelStateFullscreen:
		return "fullscreen"
	case ToplevelStateResizing:
		return "resizing"
	case ToplevelStateActivated:
		return "activated"
	}
	return "unknown"
}

// Toplevel is an xdg_toplevel, a regular desktop window.
type Toplevel struct {
	// Configure reports the size the compositor wants. A zero size
	// leaves the choice to the client.
	Configure func(width, height int32, states []ToplevelState)
	Close     func()

	obj     toplevelObject
	display *wl.Display
	surface *Surface
}

func (t *Toplevel) Surface() *Surface {
	return t.surface
}

func (t *Toplevel) SetTitle(title string) {
	t.display.Enqueue(t.obj.SetTitle(title))
}

func (t *Toplevel) SetAppID(appID string) {
	t.display.Enqueue(t.obj.SetAppID(appID))
}

func (t *Toplevel) SetMinSize(width, height int32) {
	t.display.Enqueue(t.obj.SetMinSize(width, height))
}

func (t *Toplevel) SetMaxSize(width, height int32) {
	t.display.Enqueue(t.obj.SetMaxSize(width, height))
}

func (t *Toplevel) Destroy() {
	t.display.Enqueue(t.obj.Destroy())
	t.display.DeleteObject(t.obj.id)
}

type toplevelEvents struct {
	t *Toplevel
}

func (lis toplevelEvents) Configure(width, height int32, states []byte) {
	if lis.t.Configure == nil {
		return
	}

	parsed := make([]ToplevelState, 0, len(states)/4)
	for len(states) >= 4 {
		parsed = append(parsed, ToplevelState(binary.LittleEndian.Uint32(states)))
		states = states[4:]
	}
	lis.t.Configure(width, height, parsed)
}

func (lis toplevelEvents) Close() {
	if lis.t.Close != nil {
		lis.t.Close()
	}
}
