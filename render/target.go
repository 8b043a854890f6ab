package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/phisch/phrame/wl"
)

var ErrDisplayClosed = errors.New("render: display connection closed")

// Target binds a wl_surface to an SHM buffer it can be presented
// through. Presenting copies rendered pixels into the shared memory
// the compositor reads and commits the surface.
type Target struct {
	surface *wl.Surface
	buf     *wl.ImageBuffer
	w, h    int32
}

func NewTarget(shm *wl.Shm, surface *wl.Surface, width, height int32) (*Target, error) {
	buf, err := wl.NewImageBuffer(shm, width, height)
	if err != nil {
		return nil, fmt.Errorf("create image buffer: %w", err)
	}

	return &Target{
		surface: surface,
		buf:     buf,
		w:       width,
		h:       height,
	}, nil
}

func (t *Target) Surface() *wl.Surface {
	return t.surface
}

func (t *Target) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(t.w), int(t.h))
}

// Resize adapts the backing buffer in place.
func (t *Target) Resize(width, height int32) error {
	if width == t.w && height == t.h {
		return nil
	}

	err := t.buf.Resize(width, height)
	if err != nil {
		return fmt.Errorf("resize image buffer: %w", err)
	}
	t.w, t.h = width, height
	return nil
}

// Present copies img into the shared buffer and commits it to the
// compositor. The whole surface is damaged.
func (t *Target) Present(img image.Image) error {
	if t.surface.Display().Closed() {
		return ErrDisplayClosed
	}

	draw.Draw(t.buf.Image(), t.Bounds(), img, img.Bounds().Min, draw.Src)

	t.surface.Attach(t.buf.Buffer(), 0, 0)
	t.surface.Damage(0, 0, t.w, t.h)
	t.surface.Commit()
	return nil
}

func (t *Target) Destroy() {
	t.buf.Destroy()
}
