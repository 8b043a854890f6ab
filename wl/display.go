// Package wl implements a client for the core Wayland protocol. It
// provides the connection and object plumbing that the shell
// packages, and bindings for further protocol extensions, build on.
package wl

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/phisch/phrame/internal/cq"
	"github.com/phisch/phrame/internal/debug"
	"github.com/phisch/phrame/internal/objstore"
	"github.com/phisch/phrame/wire"
)

// Display is the connection to the compositor. It owns the object
// table and the event queue that every other protocol object in the
// connection shares.
//
// A Display is not safe for concurrent use. All methods are expected
// to be called from a single dispatching goroutine; the only internal
// concurrency is the goroutine that moves messages from the socket
// into the event queue.
type Display struct {
	Error func(objectID, code uint32, message string)

	obj      displayObject
	done     chan struct{}
	close    sync.Once
	conn     *net.UnixConn
	objects  *objstore.Store
	registry *Registry
	queue    *cq.Queue[func() error]
}

// DialDisplay connects to the compositor indicated by the current
// environment. The attempt is made exactly once: an unreachable
// compositor means there is no session to join.
func DialDisplay() (*Display, error) {
	socket, err := wire.Dial()
	if err != nil {
		return nil, err
	}
	return ConnectDisplay(socket), nil
}

// ConnectDisplay wraps an existing connection to a compositor.
func ConnectDisplay(c *net.UnixConn) *Display {
	display := Display{
		done:    make(chan struct{}),
		conn:    c,
		objects: objstore.New(1),
		queue:   cq.New[func() error](),
	}
	display.AddObject(&display.obj)
	display.obj.listener = displayEvents{display: &display}

	go display.listen()

	return &display
}

func (display *Display) listen() {
	for {
		msg, err := wire.ReadMessage(display.conn)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}

			select {
			case <-display.done:
				return
			case display.queue.Add() <- func() error { return err }:
				continue
			}
		}

		select {
		case <-display.done:
			return
		case display.queue.Add() <- func() error { return display.dispatch(msg) }:
		}
	}
}

// Close shuts the connection down. Objects belonging to the
// connection are unusable afterwards.
func (display *Display) Close() error {
	display.close.Do(func() { close(display.done) })
	display.queue.Stop()
	return display.conn.Close()
}

// Closed reports whether Close has been called. Anything that derives
// handles from the connection must check this first: a handle taken
// from a closed connection is a stale pointer, not a recoverable
// error.
func (display *Display) Closed() bool {
	select {
	case <-display.done:
		return true
	default:
		return false
	}
}

// AddObject adds obj to the connection's object table, assigning it
// the next free client-side ID.
func (display *Display) AddObject(obj wire.Object) {
	display.objects.Add(obj)
}

// GetObject returns the object with the given ID, or nil.
func (display *Display) GetObject(id uint32) wire.Object {
	return display.objects.Get(id)
}

// DeleteObject removes the object with the given ID from the object
// table.
func (display *Display) DeleteObject(id uint32) {
	display.objects.Delete(id)
}

func (display *Display) dispatch(msg *wire.MessageBuffer) error {
	obj := display.objects.Get(msg.Sender())
	if obj == nil {
		return wire.UnknownSenderIDError{Msg: msg}
	}

	err := obj.Dispatch(msg)
	debug.Printf("%v", msg.Debug(obj))
	return err
}

// Enqueue schedules msg to be sent to the compositor. The message
// goes out the next time the queue is flushed, in order with
// everything queued around it.
func (display *Display) Enqueue(msg *wire.MessageBuilder) {
	display.queue.Add() <- func() error {
		debug.Printf(" -> %v", msg)
		return msg.Build(display.conn)
	}
}

func (display *Display) flush(queue []func() error) (errs []error) {
	for _, ev := range queue {
		err := ev()
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Flush runs whatever is in the event queue without blocking.
func (display *Display) Flush() error {
	select {
	case queue := <-display.queue.Get():
		return errors.Join(display.flush(queue)...)
	default:
		return nil
	}
}

// Dispatch blocks until the event queue has something in it, then
// runs all of it. Queued outgoing messages count, so a Dispatch
// immediately after an Enqueue returns quickly. An error from any
// handler terminates the batch.
func (display *Display) Dispatch(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-display.done:
		return net.ErrClosed
	case queue := <-display.queue.Get():
		return errors.Join(display.flush(queue)...)
	}
}

// RoundTrip flushes the queue and blocks until the compositor
// confirms that it has processed everything sent before the call.
func (display *Display) RoundTrip() error {
	done := make(chan struct{})
	display.Sync(func() { close(done) })

	var errs []error

	for {
		select {
		case <-done:
			return errors.Join(errs...)

		case queue := <-display.queue.Get():
			errs = append(errs, display.flush(queue)...)
		}
	}
}

// GetRegistry returns the connection's registry, requesting it from
// the compositor the first time.
func (display *Display) GetRegistry() *Registry {
	if display.registry != nil {
		return display.registry
	}

	registry := Registry{
		display: display,
		globals: make(map[uint32]Interface),
	}
	registry.obj.listener = registryEvents{registry: &registry}
	display.AddObject(&registry.obj)
	display.Enqueue(display.obj.GetRegistry(registry.obj.id))
	display.registry = &registry
	return &registry
}

// Sync asks the compositor for a callback once all prior requests
// have been handled.
func (display *Display) Sync(done func()) {
	callback := Callback{Done: func(uint32) { done() }}
	callback.obj.listener = callbackEvents{callback: &callback}
	display.AddObject(&callback.obj)
	display.Enqueue(display.obj.Sync(callback.obj.id))
}

type displayEvents struct {
	display *Display
}

func (lis displayEvents) Error(objectID, code uint32, message string) {
	if lis.display.Error != nil {
		lis.display.Error(objectID, code, message)
	}
}

func (lis displayEvents) DeleteID(id uint32) {
	lis.display.objects.Delete(id)
}
