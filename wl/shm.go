package wl

import (
	"os"

	"github.com/phisch/phrame/wire"
)

type ShmFormat uint32

const (
	ShmFormatArgb8888 ShmFormat = iota
	ShmFormatXrgb8888
)

// Shm is the wl_shm global. It creates shared-memory pools that the
// compositor maps directly.
type Shm struct {
	Format func(format ShmFormat)

	obj     shmObject
	display *Display
}

func IsShm(i Interface) bool {
	return i.Is(shmInterface, shmVersion)
}

func BindShm(display *Display, name uint32) *Shm {
	shm := Shm{display: display}
	shm.obj.listener = shmEvents{shm: &shm}
	display.AddObject(&shm.obj)

	registry := display.GetRegistry()
	registry.Bind(name, shmInterface, shmVersion, shm.obj.id)

	return &shm
}

func (shm *Shm) Object() wire.Object {
	return &shm.obj
}

// CreatePool shares size bytes of file with the compositor.
func (shm *Shm) CreatePool(file *os.File, size int32) *ShmPool {
	pool := ShmPool{display: shm.display}
	shm.display.AddObject(&pool.obj)
	shm.display.Enqueue(shm.obj.CreatePool(pool.obj.id, file, size))

	return &pool
}

type shmEvents struct {
	shm *Shm
}

func (lis shmEvents) Format(format uint32) {
	if lis.shm.Format != nil {
		lis.shm.Format(ShmFormat(format))
	}
}

// ShmPool is a wl_shm_pool, a compositor-side mapping of client
// memory that buffers are carved out of.
type ShmPool struct {
	obj     shmPoolObject
	display *Display
}

func (pool *ShmPool) CreateBuffer(offset, width, height, stride int32, format ShmFormat) *Buffer {
	buf := Buffer{display: pool.display}
	buf.obj.listener = bufferEvents{buf: &buf}
	pool.display.AddObject(&buf.obj)
	pool.display.Enqueue(pool.obj.CreateBuffer(buf.obj.id, offset, width, height, stride, uint32(format)))

	return &buf
}

// Resize grows the pool. Pools can never shrink.
func (pool *ShmPool) Resize(size int32) {
	pool.display.Enqueue(pool.obj.Resize(size))
}

func (pool *ShmPool) Destroy() {
	pool.display.Enqueue(pool.obj.Destroy())
	pool.display.DeleteObject(pool.obj.id)
}

// Buffer is a wl_buffer backed by a region of an ShmPool.
type Buffer struct {
	// Release is called when the compositor is done reading from the
	// buffer and the client may write to it again.
	Release func()

	obj     bufferObject
	display *Display
}

func (buf *Buffer) Destroy() {
	buf.display.Enqueue(buf.obj.Destroy())
	buf.display.DeleteObject(buf.obj.id)
}

type bufferEvents struct {
	buf *Buffer
}

func (lis bufferEvents) Release() {
	if lis.buf.Release != nil {
		lis.buf.Release()
	}
}
