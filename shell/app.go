package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phisch/phrame/wire"
	"github.com/phisch/phrame/wl"
	"github.com/phisch/phrame/wlr"
	"github.com/phisch/phrame/xdg"
)

// KeyEsc is the Linux key code for Escape, the exit key.
const KeyEsc = 1

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes the package's diagnostics to l. The default
// discards everything.
func SetLogger(l *slog.Logger) {
	logger = l
}

// App owns one compositor connection and the windows and layer
// surfaces created from it. All of its state belongs to the dispatch
// goroutine; it is not safe for concurrent use.
type App struct {
	// Key is called for every key event after the exit key has been
	// handled. Optional.
	Key func(key uint32, state wl.KeyState)

	// PointerButton is called with the surface currently under the
	// pointer. Optional.
	PointerButton func(s *wl.Surface, button wl.PointerButton, state wl.PointerButtonState)

	cfg     Config
	display *wl.Display

	compositor *wl.Compositor
	shm        *wl.Shm
	wmBase     *xdg.WmBase
	layerShell *wlr.LayerShell

	seat     *wl.Seat
	seatName uint32
	keyboard *wl.Keyboard
	pointer  *wl.Pointer
	outputs  map[uint32]*wl.Output

	windows []*Window
	layers  []*Layer

	keyboardFocus *wl.Surface
	pointerFocus  *wl.Surface

	exit bool
	err  error
}

// NewApp binds the capabilities the shell needs from the display's
// registry. wl_compositor, wl_shm, and xdg_wm_base are required;
// wlr_layer_shell, seats, and outputs are optional and may come and
// go while the app runs.
func NewApp(display *wl.Display, cfg Config) (*App, error) {
	app := App{
		cfg:     cfg.withDefaults(),
		display: display,
		outputs: make(map[uint32]*wl.Output),
	}

	registry := display.GetRegistry()
	registry.Global = app.global
	registry.GlobalRemove = app.globalRemove

	if err := display.RoundTrip(); err != nil {
		return nil, fmt.Errorf("enumerate globals: %w", err)
	}

	switch {
	case app.compositor == nil:
		return nil, errors.New("compositor does not advertise wl_compositor")
	case app.shm == nil:
		return nil, errors.New("compositor does not advertise wl_shm")
	case app.wmBase == nil:
		return nil, errors.New("compositor does not advertise xdg_wm_base")
	}

	return &app, nil
}

func (app *App) Display() *wl.Display {
	return app.display
}

func (app *App) Config() Config {
	return app.cfg
}

// Exit makes Run return at the next iteration boundary.
func (app *App) Exit() {
	app.exit = true
}

// fail records a handler error and stops the dispatch loop.
func (app *App) fail(err error) {
	app.err = err
	app.exit = true
}

// Run dispatches events until Exit is called, the context is
// canceled, or a handler fails.
func (app *App) Run(ctx context.Context) error {
	if err := app.display.Flush(); err != nil {
		return err
	}

	for !app.exit {
		if err := app.display.Dispatch(ctx); err != nil {
			return err
		}
	}
	return app.err
}

func (app *App) global(name uint32, inter wl.Interface) {
	switch {
	case wl.IsCompositor(inter):
		app.compositor = wl.BindCompositor(app.display, name)
	case wl.IsShm(inter):
		app.shm = wl.BindShm(app.display, name)
	case xdg.IsWmBase(inter):
		app.wmBase = xdg.BindWmBase(app.display, name)
	case wlr.IsLayerShell(inter):
		app.layerShell = wlr.BindLayerShell(app.display, name)
	case wl.IsSeat(inter):
		app.bindSeat(name)
	case wl.IsOutput(inter):
		app.bindOutput(name)
	}
}

func (app *App) globalRemove(name uint32) {
	if app.seat != nil && name == app.seatName {
		logger.Debug("seat removed", "name", name)
		app.releaseSeat()
		return
	}

	output, ok := app.outputs[name]
	if !ok {
		return
	}

	logger.Debug("output removed", "name", name)
	delete(app.outputs, name)
	output.Release()
}

func (app *App) bindSeat(name uint32) {
	if app.seat != nil {
		return
	}

	seat := wl.BindSeat(app.display, name)
	seat.Capabilities = app.seatCapabilities
	app.seat = seat
	app.seatName = name
}

// releaseSeat drops the seat and its input devices, clearing any
// focus they were tracking.
func (app *App) releaseSeat() {
	if app.keyboard != nil {
		app.keyboard.Release()
		app.keyboard = nil
		app.keyboardFocus = nil
	}
	if app.pointer != nil {
		app.pointer.Release()
		app.pointer = nil
		app.pointerFocus = nil
	}
	app.seat.Release()
	app.seat = nil
}

func (app *App) bindOutput(name uint32) {
	output := wl.BindOutput(app.display, name)
	output.Done = func() {
		logger.Debug("output ready", "name", name)
	}
	output.Name = func(outputName string) {
		logger.Debug("output name", "name", name, "output", outputName)
	}
	app.outputs[name] = output
}

// seatCapabilities tracks input devices as they come and go.
func (app *App) seatCapabilities(caps wl.SeatCapability) {
	switch {
	case caps.Has(wl.SeatCapabilityKeyboard) && app.keyboard == nil:
		app.keyboard = app.seat.GetKeyboard()
		app.initKeyboard(app.keyboard)
	case !caps.Has(wl.SeatCapabilityKeyboard) && app.keyboard != nil:
		app.keyboard.Release()
		app.keyboard = nil
	}

	switch {
	case caps.Has(wl.SeatCapabilityPointer) && app.pointer == nil:
		app.pointer = app.seat.GetPointer()
		app.initPointer(app.pointer)
	case !caps.Has(wl.SeatCapabilityPointer) && app.pointer != nil:
		app.pointer.Release()
		app.pointer = nil
	}
}

func (app *App) initKeyboard(kb *wl.Keyboard) {
	kb.Enter = func(serial uint32, s *wl.Surface, keys []byte) {
		app.keyboardFocus = s
		logger.Debug("keyboard focus gained")
	}
	kb.Leave = func(serial uint32, s *wl.Surface) {
		app.keyboardFocus = nil
		logger.Debug("keyboard focus lost")
	}
	kb.Key = func(serial, time, key uint32, state wl.KeyState) {
		if key == KeyEsc && state == wl.KeyStatePressed {
			app.Exit()
			return
		}
		if app.Key != nil {
			app.Key(key, state)
		}
	}
	kb.Modifiers = func(serial, depressed, latched, locked, group uint32) {
		logger.Debug("modifiers", "depressed", depressed, "latched", latched, "locked", locked, "group", group)
	}
}

func (app *App) initPointer(p *wl.Pointer) {
	p.Enter = func(serial uint32, s *wl.Surface, x, y wire.Fixed) {
		app.pointerFocus = s
	}
	p.Leave = func(serial uint32, s *wl.Surface) {
		app.pointerFocus = nil
	}
	p.Motion = func(time uint32, x, y wire.Fixed) {}
	p.Button = func(serial, time uint32, button wl.PointerButton, state wl.PointerButtonState) {
		logger.Debug("pointer button", "button", button, "state", state)
		if app.PointerButton != nil {
			app.PointerButton(app.pointerFocus, button, state)
		}
	}
	p.Axis = func(time uint32, axis wl.PointerAxis, value wire.Fixed) {
		logger.Debug("pointer axis", "axis", axis, "value", value.Float())
	}
}
