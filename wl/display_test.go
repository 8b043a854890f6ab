package wl_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"net"
	"os"
	"testing"
	"time"

	"github.com/phisch/phrame/wire"
	"github.com/phisch/phrame/wl"
	"golang.org/x/sys/unix"
)

func socketPair(t *testing.T) (client, server *net.UnixConn) {
	t.Helper()

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}
	return fdConn(t, fds[0]), fdConn(t, fds[1])
}

func fdConn(t *testing.T, fd int) *net.UnixConn {
	t.Helper()

	file := os.NewFile(uintptr(fd), "socketpair")
	defer file.Close()

	c, err := net.FileConn(file)
	if err != nil {
		t.Fatalf("conn from fd: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c.(*net.UnixConn)
}

// writeEvent hand-assembles a compositor event on the wire: an
// 8-byte header followed by 32-bit aligned arguments.
func writeEvent(c *net.UnixConn, sender uint32, op uint16, args ...any) error {
	var body bytes.Buffer
	for _, arg := range args {
		switch v := arg.(type) {
		case uint32:
			binary.Write(&body, binary.LittleEndian, v)
		case int32:
			binary.Write(&body, binary.LittleEndian, v)
		case string:
			binary.Write(&body, binary.LittleEndian, uint32(len(v)+1))
			body.WriteString(v)
			body.WriteByte(0)
			for body.Len()%4 != 0 {
				body.WriteByte(0)
			}
		case []byte:
			binary.Write(&body, binary.LittleEndian, uint32(len(v)))
			body.Write(v)
			for body.Len()%4 != 0 {
				body.WriteByte(0)
			}
		default:
			panic("unsupported event arg type")
		}
	}

	var msg bytes.Buffer
	binary.Write(&msg, binary.LittleEndian, sender)
	binary.Write(&msg, binary.LittleEndian, uint32(8+body.Len())<<16|uint32(op))
	msg.Write(body.Bytes())

	_, err := c.Write(msg.Bytes())
	return err
}

func sendEvent(t *testing.T, c *net.UnixConn, sender uint32, op uint16, args ...any) {
	t.Helper()
	if err := writeEvent(c, sender, op, args...); err != nil {
		t.Fatalf("write event: %v", err)
	}
}

// dispatchUntil runs the display's dispatch loop until cond holds.
func dispatchUntil(t *testing.T, display *wl.Display, cond func() bool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for !cond() {
		if err := display.Dispatch(ctx); err != nil {
			t.Fatalf("dispatch: %v", err)
		}
	}
}

// answerSyncs emulates the compositor's end of wl_display.sync so
// RoundTrip completes.
func answerSyncs(server *net.UnixConn) {
	for {
		msg, err := wire.ReadMessage(server)
		if err != nil {
			return
		}
		if msg.Sender() == 1 && msg.Op() == 0 {
			callback := msg.ReadUint()
			writeEvent(server, callback, 0, uint32(0))
		}
	}
}

func TestRegistryGlobals(t *testing.T) {
	client, server := socketPair(t)
	display := wl.ConnectDisplay(client)
	defer display.Close()

	registry := display.GetRegistry()

	var added []wl.Interface
	registry.Global = func(name uint32, inter wl.Interface) {
		added = append(added, inter)
	}

	sendEvent(t, server, 2, 0, uint32(7), "wl_compositor", uint32(6))
	sendEvent(t, server, 2, 0, uint32(8), "wl_shm", uint32(1))
	dispatchUntil(t, display, func() bool { return len(added) == 2 })

	globals := registry.Globals()
	if len(globals) != 2 {
		t.Fatalf("globals = %v, want 2 entries", globals)
	}
	if !wl.IsCompositor(globals[7]) {
		t.Errorf("global 7 = %v, want wl_compositor", globals[7])
	}
	if !wl.IsShm(globals[8]) {
		t.Errorf("global 8 = %v, want wl_shm", globals[8])
	}

	var removed uint32
	registry.GlobalRemove = func(name uint32) { removed = name }
	sendEvent(t, server, 2, 1, uint32(7))
	dispatchUntil(t, display, func() bool { return removed == 7 })

	if _, ok := registry.Globals()[7]; ok {
		t.Errorf("global 7 still present after removal")
	}
}

func TestRoundTrip(t *testing.T) {
	client, server := socketPair(t)
	display := wl.ConnectDisplay(client)
	defer display.Close()

	go answerSyncs(server)

	if err := display.RoundTrip(); err != nil {
		t.Fatalf("round trip: %v", err)
	}
}

func TestDeleteID(t *testing.T) {
	client, server := socketPair(t)
	display := wl.ConnectDisplay(client)
	defer display.Close()

	var done bool
	display.Sync(func() { done = true })
	sendEvent(t, server, 2, 0, uint32(0))
	dispatchUntil(t, display, func() bool { return done })

	sendEvent(t, server, 1, 1, uint32(2))
	dispatchUntil(t, display, func() bool { return display.GetObject(2) == nil })
}

func TestKeyboardFocusIdentity(t *testing.T) {
	client, server := socketPair(t)
	display := wl.ConnectDisplay(client)
	defer display.Close()

	display.GetRegistry()                   // id 2
	compositor := wl.BindCompositor(display, 1) // id 3
	seat := wl.BindSeat(display, 2)             // id 4
	kb := seat.GetKeyboard()                    // id 5
	surface := compositor.CreateSurface()       // id 6

	var entered, left *wl.Surface
	kb.Enter = func(serial uint32, s *wl.Surface, keys []byte) { entered = s }
	kb.Leave = func(serial uint32, s *wl.Surface) { left = s }

	sendEvent(t, server, 5, 1, uint32(1), surface.ID(), []byte{})
	dispatchUntil(t, display, func() bool { return entered != nil })
	if entered != surface {
		t.Errorf("entered surface = %p, want %p", entered, surface)
	}

	sendEvent(t, server, 5, 2, uint32(2), surface.ID())
	dispatchUntil(t, display, func() bool { return left != nil })
	if left != surface {
		t.Errorf("left surface = %p, want %p", left, surface)
	}
}

func TestSeatCapabilities(t *testing.T) {
	client, server := socketPair(t)
	display := wl.ConnectDisplay(client)
	defer display.Close()

	display.GetRegistry()           // id 2
	seat := wl.BindSeat(display, 1) // id 3

	var caps wl.SeatCapability
	seat.Capabilities = func(c wl.SeatCapability) { caps = c }

	sendEvent(t, server, 3, 0, uint32(wl.SeatCapabilityPointer|wl.SeatCapabilityKeyboard))
	dispatchUntil(t, display, func() bool { return caps != 0 })

	if !caps.Has(wl.SeatCapabilityPointer) {
		t.Errorf("capabilities %v missing pointer", caps)
	}
	if !caps.Has(wl.SeatCapabilityKeyboard) {
		t.Errorf("capabilities %v missing keyboard", caps)
	}
	if caps.Has(wl.SeatCapabilityTouch) {
		t.Errorf("capabilities %v has touch unexpectedly", caps)
	}
}
