package shell

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/phisch/phrame/internal/xslices"
	"github.com/phisch/phrame/render"
	"github.com/phisch/phrame/wl"
	"github.com/phisch/phrame/xdg"
)

// Window is a toplevel desktop window. Its real size arrives with the
// first configure event; until then nothing is drawn.
type Window struct {
	app      *App
	surface  *wl.Surface
	xdg      *xdg.Surface
	toplevel *xdg.Toplevel

	target *render.Target
	rctx   *render.Context
	canvas *render.Canvas

	w, h               int32
	pendingW, pendingH int32
	frameCount         int
}

// CreateWindow makes a new toplevel window. The window's surface is
// committed without a buffer so the compositor answers with the
// initial configure.
func (app *App) CreateWindow(title string) *Window {
	win := Window{app: app}
	win.surface = app.compositor.CreateSurface()
	win.xdg = app.wmBase.GetSurface(win.surface)
	win.toplevel = win.xdg.GetToplevel()

	win.xdg.Configure = win.configure
	win.toplevel.Configure = win.toplevelConfigure
	win.toplevel.Close = win.close

	win.toplevel.SetTitle(title)
	win.toplevel.SetAppID(app.cfg.AppID)
	win.surface.Commit()

	app.windows = append(app.windows, &win)
	return &win
}

func (win *Window) Surface() *wl.Surface {
	return win.surface
}

func (win *Window) Size() (width, height int32) {
	return win.w, win.h
}

// toplevelConfigure records the size the compositor wants. It takes
// effect when the matching xdg_surface configure arrives.
func (win *Window) toplevelConfigure(width, height int32, states []xdg.ToplevelState) {
	win.pendingW, win.pendingH = width, height
}

func (win *Window) configure(serial uint32) {
	win.xdg.AckConfigure(serial)

	w, h := win.app.cfg.FallbackSize(win.pendingW, win.pendingH)
	if err := win.resize(w, h); err != nil {
		win.app.fail(fmt.Errorf("configure window: %w", err))
		return
	}
	if err := win.Draw(); err != nil {
		win.app.fail(fmt.Errorf("draw window: %w", err))
	}
}

// resize adapts the presentation target and canvas, creating them on
// the first configure. The canvas is only replaced when the pixel
// size actually changed.
func (win *Window) resize(w, h int32) error {
	if win.target == nil {
		target, err := render.NewTarget(win.app.shm, win.surface, w, h)
		if err != nil {
			return err
		}

		rctx, canvas, err := render.Bind(target, render.Config{
			Backend:     win.app.cfg.Backend,
			StencilBits: 8,
		})
		if err != nil {
			target.Destroy()
			return err
		}

		win.target = target
		win.rctx = rctx
		win.canvas = canvas
		win.w, win.h = w, h
		return nil
	}

	if err := win.target.Resize(w, h); err != nil {
		return err
	}
	win.canvas.Resize(int(w), int(h))
	win.w, win.h = w, h
	return nil
}

// Draw renders a frame and presents it.
func (win *Window) Draw() error {
	win.rctx.MakeCurrent()

	start := time.Now()
	render.Clear(win.canvas, gg.RGBA{B: 1, A: 0.5})
	err := render.Frame(win.canvas, render.FrameParams{
		Count: win.frameCount,
		Steps: 12,
		Rate:  60,
	})
	if err != nil {
		return err
	}
	win.frameCount++
	logger.Debug("frame rendered", "elapsed_ns", time.Since(start).Nanoseconds())

	return win.target.Present(win.canvas.Image())
}

func (win *Window) close() {
	win.Destroy()
	if len(win.app.windows) == 0 {
		win.app.Exit()
	}
}

// Destroy tears the window down. The app exits on its own only when
// the compositor closes the last window.
func (win *Window) Destroy() {
	win.app.windows = xslices.Filter(win.app.windows, func(other *Window) bool {
		return other != win
	})

	if win.canvas != nil {
		win.canvas.Close()
	}
	if win.rctx != nil {
		win.rctx.Close()
	}
	if win.target != nil {
		win.target.Destroy()
	}
	win.toplevel.Destroy()
	win.xdg.Destroy()
	win.surface.Destroy()
}
