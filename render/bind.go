package render

import "fmt"

// Bind negotiates a rendering context for a presentation target and
// creates a canvas matched to its pixel size. The display connection
// must still be live, the target must have real dimensions, and the
// new context is made current before the canvas exists.
func Bind(t *Target, config Config) (*Context, *Canvas, error) {
	if t.surface.Display().Closed() {
		return nil, nil, ErrDisplayClosed
	}
	if t.w <= 0 || t.h <= 0 {
		return nil, nil, fmt.Errorf("render: bind to empty target %vx%v", t.w, t.h)
	}

	ctx, err := NewContext(config)
	if err != nil {
		return nil, nil, err
	}

	ctx.MakeCurrent()
	canvas := NewCanvas(ctx, int(t.w), int(t.h))
	return ctx, canvas, nil
}
