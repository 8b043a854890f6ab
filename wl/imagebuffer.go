package wl

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	ximage "deedles.dev/ximage/format"
	"github.com/phisch/phrame/shm"
	"golang.org/x/sys/unix"
)

// ImageBuffer couples a wl_buffer with the memory-mapped SHM file
// behind it, exposed to the renderer as a draw.Image. One pool backs
// the buffer across resizes; the mapping is recreated only when the
// pixels no longer fit.
type ImageBuffer struct {
	shm    *Shm
	pool   *ShmPool
	wlbuf  *Buffer
	file   *os.File
	pix    shm.Mmap
	bounds image.Rectangle
}

// NewImageBuffer creates an ARGB8888 buffer of the given size in a
// fresh SHM pool.
func NewImageBuffer(s *Shm, width, height int32) (*ImageBuffer, error) {
	buf := ImageBuffer{
		shm:    s,
		bounds: image.Rect(0, 0, int(width), int(height)),
	}

	size := width * height * 4
	file, err := shm.Create()
	if err != nil {
		return nil, fmt.Errorf("create SHM file: %w", err)
	}
	buf.file = file
	buf.file.Truncate(int64(size))

	buf.pix, err = shm.Map(file, int(size), unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		buf.file.Close()
		return nil, fmt.Errorf("map SHM file: %w", err)
	}

	buf.pool = s.CreatePool(file, size)
	buf.wlbuf = buf.pool.CreateBuffer(0, width, height, width*4, ShmFormatArgb8888)
	return &buf, nil
}

// Resize changes the buffer's pixel size. A size that fits the
// current mapping reuses it; growing truncates the file, remaps, and
// grows the pool, since pools never shrink.
func (buf *ImageBuffer) Resize(width, height int32) error {
	if buf.bounds.Dx() == int(width) && buf.bounds.Dy() == int(height) {
		return nil
	}

	buf.bounds = image.Rect(0, 0, int(width), int(height))
	size := width * height * 4

	if int(size) > cap(buf.pix) {
		buf.file.Truncate(int64(size))
		if err := buf.pix.Unmap(); err != nil {
			return fmt.Errorf("unmap: %w", err)
		}
		pix, err := shm.Map(buf.file, int(size), unix.PROT_READ|unix.PROT_WRITE)
		if err != nil {
			return fmt.Errorf("map: %w", err)
		}
		buf.pix = pix
		buf.pool.Resize(size)
	} else {
		buf.pix = buf.pix[:size]
	}

	buf.wlbuf.Destroy()
	buf.wlbuf = buf.pool.CreateBuffer(0, width, height, width*4, ShmFormatArgb8888)
	return nil
}

// Buffer returns the wl_buffer to attach.
func (buf *ImageBuffer) Buffer() *Buffer {
	return buf.wlbuf
}

func (buf *ImageBuffer) Bounds() image.Rectangle {
	return buf.bounds
}

// Image returns a draw.Image over the mapped pixels. Writes land in
// the memory the compositor reads.
func (buf *ImageBuffer) Image() draw.Image {
	return &ximage.Image{
		Format: ximage.ARGB8888,
		Rect:   buf.bounds,
		Pix:    buf.pix,
	}
}

func (buf *ImageBuffer) Destroy() {
	if buf.pix != nil {
		buf.pix.Unmap()
	}
	if buf.file != nil {
		buf.file.Close()
	}
	if buf.wlbuf != nil {
		buf.wlbuf.Destroy()
	}
	if buf.pool != nil {
		buf.pool.Destroy()
	}
}