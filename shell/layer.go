package shell

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"
	"github.com/phisch/phrame/internal/xslices"
	"github.com/phisch/phrame/render"
	"github.com/phisch/phrame/wl"
	"github.com/phisch/phrame/wlr"
)

// LayerOptions configures a new layer surface. The values are
// retained on the Layer and survive resizes.
type LayerOptions struct {
	Namespace             string
	Layer                 wlr.Layer
	Anchor                wlr.Anchor
	Width, Height         uint32
	ExclusiveZone         int32
	KeyboardInteractivity wlr.KeyboardInteractivity

	// InputRegion restricts pointer input to the union of these
	// rectangles. Empty means the whole surface.
	InputRegion []image.Rectangle

	// Output pins the surface to one output. Nil lets the
	// compositor pick.
	Output *wl.Output

	// Animate redraws on every frame callback instead of only on
	// configure.
	Animate bool
}

// Layer is a surface anchored to screen edges, for panels and bars.
// It draws only after its first configure.
type Layer struct {
	app     *App
	surface *wl.Surface
	ls      *wlr.LayerSurface
	opts    LayerOptions

	target *render.Target
	rctx   *render.Context
	canvas *render.Canvas

	w, h       uint32
	configured bool
	frameCount int
}

// CreateLayer makes a new layer surface. The committed state carries
// the requested attributes; the compositor answers with a configure
// that grants the actual size.
func (app *App) CreateLayer(opts LayerOptions) (*Layer, error) {
	if app.layerShell == nil {
		return nil, errors.New("compositor does not advertise zwlr_layer_shell_v1")
	}

	layer := Layer{app: app, opts: opts}
	layer.surface = app.compositor.CreateSurface()
	layer.ls = app.layerShell.GetLayerSurface(layer.surface, opts.Output, opts.Layer, opts.Namespace)

	layer.ls.Configure = layer.configure
	layer.ls.Closed = layer.closed

	layer.ls.SetSize(opts.Width, opts.Height)
	layer.ls.SetAnchor(opts.Anchor)
	layer.ls.SetExclusiveZone(opts.ExclusiveZone)
	layer.ls.SetKeyboardInteractivity(opts.KeyboardInteractivity)
	layer.setInputRegion(opts.InputRegion)
	layer.surface.Commit()

	app.layers = append(app.layers, &layer)
	return &layer, nil
}

func (layer *Layer) Surface() *wl.Surface {
	return layer.surface
}

func (layer *Layer) Options() LayerOptions {
	return layer.opts
}

func (layer *Layer) Size() (width, height uint32) {
	return layer.w, layer.h
}

// SetKeyboardInteractivity changes how the layer takes keyboard
// focus. It takes effect on the next commit, which the next draw
// provides.
func (layer *Layer) SetKeyboardInteractivity(ki wlr.KeyboardInteractivity) {
	layer.opts.KeyboardInteractivity = ki
	layer.ls.SetKeyboardInteractivity(ki)
}

func (layer *Layer) setInputRegion(rects []image.Rectangle) {
	if len(rects) == 0 {
		return
	}

	region := layer.app.compositor.CreateRegion()
	for _, r := range rects {
		region.Add(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
	}
	layer.surface.SetInputRegion(region)
	region.Destroy()
}

func (layer *Layer) configure(serial, width, height uint32) {
	layer.ls.AckConfigure(serial)

	w, h := layer.app.cfg.FallbackSize(int32(width), int32(height))
	if err := layer.resize(w, h); err != nil {
		layer.app.fail(fmt.Errorf("configure layer: %w", err))
		return
	}

	first := !layer.configured
	layer.configured = true
	if err := layer.Draw(); err != nil {
		layer.app.fail(fmt.Errorf("draw layer: %w", err))
		return
	}
	if first && layer.opts.Animate {
		layer.scheduleFrame()
	}
}

func (layer *Layer) resize(w, h int32) error {
	if layer.target == nil {
		target, err := render.NewTarget(layer.app.shm, layer.surface, w, h)
		if err != nil {
			return err
		}

		rctx, canvas, err := render.Bind(target, render.Config{
			Backend:     layer.app.cfg.Backend,
			StencilBits: 8,
		})
		if err != nil {
			target.Destroy()
			return err
		}

		layer.target = target
		layer.rctx = rctx
		layer.canvas = canvas
		layer.w, layer.h = uint32(w), uint32(h)
		return nil
	}

	if err := layer.target.Resize(w, h); err != nil {
		return err
	}
	layer.canvas.Resize(int(w), int(h))
	layer.w, layer.h = uint32(w), uint32(h)
	return nil
}

// Draw renders a frame and presents it. Before the first configure
// it does nothing.
func (layer *Layer) Draw() error {
	if !layer.configured {
		return nil
	}

	layer.rctx.MakeCurrent()

	start := time.Now()
	render.Clear(layer.canvas, gg.RGBA{A: 0.75})
	err := render.Frame(layer.canvas, render.FrameParams{
		Count: layer.frameCount,
		Steps: 12,
		Rate:  60,
	})
	if err != nil {
		return err
	}
	layer.frameCount++
	logger.Debug("frame rendered", "elapsed_ns", time.Since(start).Nanoseconds())

	return layer.target.Present(layer.canvas.Image())
}

func (layer *Layer) scheduleFrame() {
	layer.surface.Frame(func(time uint32) {
		if err := layer.Draw(); err != nil {
			layer.app.fail(fmt.Errorf("draw layer: %w", err))
			return
		}
		layer.scheduleFrame()
	})
}

func (layer *Layer) closed() {
	layer.Destroy()
	if len(layer.app.layers) == 0 && len(layer.app.windows) == 0 {
		layer.app.Exit()
	}
}

func (layer *Layer) Destroy() {
	layer.app.layers = xslices.Filter(layer.app.layers, func(other *Layer) bool {
		return other != layer
	})

	if layer.canvas != nil {
		layer.canvas.Close()
	}
	if layer.rctx != nil {
		layer.rctx.Close()
	}
	if layer.target != nil {
		layer.target.Destroy()
	}
	layer.ls.Destroy()
	layer.surface.Destroy()
}
