package shell

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"net"
	"os"
	"sync"
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

type request struct {
	sender uint32
	iface  string
	method string
	args   []any
}

type global struct {
	iface   string
	version uint32
}

// opSpec describes how to decode one request: one signature char per
// argument (u=uint, i=int, s=string, n=new id, h=fd), plus the
// interface a new id creates.
type opSpec struct {
	method   string
	sig      string
	newIface string
}

var opSpecs = map[string]map[uint16]opSpec{
	"wl_display": {
		0: {"sync", "n", "wl_callback"},
		1: {"get_registry", "n", "wl_registry"},
	},
	"wl_compositor": {
		0: {"create_surface", "n", "wl_surface"},
		1: {"create_region", "n", "wl_region"},
	},
	"wl_region": {
		0: {"destroy", "", ""},
		1: {"add", "iiii", ""},
		2: {"subtract", "iiii", ""},
	},
	"wl_surface": {
		0: {"destroy", "", ""},
		1: {"attach", "uii", ""},
		2: {"damage", "iiii", ""},
		3: {"frame", "n", "wl_callback"},
		4: {"set_opaque_region", "u", ""},
		5: {"set_input_region", "u", ""},
		6: {"commit", "", ""},
	},
	"wl_seat": {
		0: {"get_pointer", "n", "wl_pointer"},
		1: {"get_keyboard", "n", "wl_keyboard"},
		3: {"release", "", ""},
	},
	"wl_shm": {
		0: {"create_pool", "nhi", "wl_shm_pool"},
	},
	"wl_shm_pool": {
		0: {"create_buffer", "niiiiu", "wl_buffer"},
		1: {"destroy", "", ""},
		2: {"resize", "i", ""},
	},
	"wl_buffer": {
		0: {"destroy", "", ""},
	},
	"wl_keyboard": {
		0: {"release", "", ""},
	},
	"wl_pointer": {
		0: {"set_cursor", "uuii", ""},
		1: {"release", "", ""},
	},
	"wl_output": {
		0: {"release", "", ""},
	},
	"xdg_wm_base": {
		0: {"destroy", "", ""},
		2: {"get_xdg_surface", "nu", "xdg_surface"},
		3: {"pong", "u", ""},
	},
	"xdg_surface": {
		0: {"destroy", "", ""},
		1: {"get_toplevel", "n", "xdg_toplevel"},
		3: {"set_window_geometry", "iiii", ""},
		4: {"ack_configure", "u", ""},
	},
	"xdg_toplevel": {
		0: {"destroy", "", ""},
		1: {"set_parent", "u", ""},
		2: {"set_title", "s", ""},
		3: {"set_app_id", "s", ""},
		7: {"set_max_size", "ii", ""},
		8: {"set_min_size", "ii", ""},
	},
	"zwlr_layer_shell_v1": {
		0: {"get_layer_surface", "nuuus", "zwlr_layer_surface_v1"},
		1: {"destroy", "", ""},
	},
	"zwlr_layer_surface_v1": {
		0: {"set_size", "uu", ""},
		1: {"set_anchor", "u", ""},
		2: {"set_exclusive_zone", "i", ""},
		3: {"set_margin", "iiii", ""},
		4: {"set_keyboard_interactivity", "u", ""},
		6: {"ack_configure", "u", ""},
		7: {"destroy", "", ""},
		8: {"set_layer", "u", ""},
	},
}

// fakeCompositor speaks just enough of the server side of the
// protocol to drive the shell: it advertises globals, answers syncs,
// reports seat capabilities, and records every request it decodes.
type fakeCompositor struct {
	conn    *net.UnixConn
	globals []global

	writeMu sync.Mutex

	mu      sync.Mutex
	objects map[uint32]string
	created []request
	reqs    []request
	files   []*os.File
}

func defaultGlobals() []global {
	return []global{
		{"wl_compositor", 6},
		{"wl_shm", 1},
		{"xdg_wm_base", 2},
		{"zwlr_layer_shell_v1", 4},
		{"wl_seat", 5},
		{"wl_output", 4},
	}
}

func newFakeCompositor(conn *net.UnixConn, globals []global) *fakeCompositor {
	srv := fakeCompositor{
		conn:    conn,
		globals: globals,
		objects: map[uint32]string{1: "wl_display"},
	}
	go srv.run()
	return &srv
}

func (srv *fakeCompositor) run() {
	for {
		msg, err := wire.ReadMessage(srv.conn)
		if err != nil {
			return
		}
		srv.handle(msg)
	}
}

func (srv *fakeCompositor) handle(msg *wire.MessageBuffer) {
	srv.mu.Lock()
	iface := srv.objects[msg.Sender()]
	srv.mu.Unlock()

	if iface == "wl_registry" && msg.Op() == 0 {
		srv.handleBind(msg)
		return
	}

	spec, ok := opSpecs[iface][msg.Op()]
	if !ok {
		return
	}

	var args []any
	var newID uint32
	for _, c := range spec.sig {
		switch c {
		case 'u':
			args = append(args, msg.ReadUint())
		case 'i':
			args = append(args, msg.ReadInt())
		case 's':
			args = append(args, msg.ReadString())
		case 'n':
			newID = msg.ReadUint()
			args = append(args, newID)
		case 'h':
			file := msg.ReadFile()
			if file != nil {
				srv.mu.Lock()
				srv.files = append(srv.files, file)
				srv.mu.Unlock()
			}
			args = append(args, file)
		}
	}

	req := request{sender: msg.Sender(), iface: iface, method: spec.method, args: args}
	srv.mu.Lock()
	if newID != 0 && spec.newIface != "" {
		srv.objects[newID] = spec.newIface
		srv.created = append(srv.created, request{sender: newID, iface: spec.newIface})
	}
	srv.reqs = append(srv.reqs, req)
	srv.mu.Unlock()

	switch {
	case iface == "wl_display" && spec.method == "sync":
		srv.event(newID, 0, uint32(0))
	case iface == "wl_display" && spec.method == "get_registry":
		for i, g := range srv.globals {
			srv.event(newID, 0, uint32(i+1), g.iface, g.version)
		}
	}
}

func (srv *fakeCompositor) handleBind(msg *wire.MessageBuffer) {
	name := msg.ReadUint()
	iface := msg.ReadString()
	version := msg.ReadUint()
	id := msg.ReadUint()

	srv.mu.Lock()
	srv.objects[id] = iface
	srv.created = append(srv.created, request{sender: id, iface: iface})
	srv.reqs = append(srv.reqs, request{
		sender: msg.Sender(),
		iface:  "wl_registry",
		method: "bind",
		args:   []any{name, iface, version, id},
	})
	srv.mu.Unlock()

	if iface == "wl_seat" {
		srv.event(id, 0, uint32(wl.SeatCapabilityPointer|wl.SeatCapabilityKeyboard))
	}
}

// event sends a hand-assembled event to the client.
func (srv *fakeCompositor) event(sender uint32, op uint16, args ...any) error {
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

	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, sender)
	binary.Write(&out, binary.LittleEndian, uint32(8+body.Len())<<16|uint32(op))
	out.Write(body.Bytes())

	srv.writeMu.Lock()
	defer srv.writeMu.Unlock()
	_, err := srv.conn.Write(out.Bytes())
	return err
}

// ids returns the IDs of all created objects of one interface, in
// creation order.
func (srv *fakeCompositor) ids(iface string) []uint32 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	var ids []uint32
	for _, obj := range srv.created {
		if obj.iface == iface {
			ids = append(ids, obj.sender)
		}
	}
	return ids
}

// requests returns recorded requests for one interface and method,
// optionally filtered by sender (0 means any).
func (srv *fakeCompositor) requests(iface, method string, sender uint32) []request {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	var out []request
	for _, req := range srv.reqs {
		if req.iface == iface && req.method == method && (sender == 0 || req.sender == sender) {
			out = append(out, req)
		}
	}
	return out
}

func (srv *fakeCompositor) count(iface, method string, sender uint32) int {
	return len(srv.requests(iface, method, sender))
}

// removeGlobal announces the removal of an advertised global by its
// interface name.
func (srv *fakeCompositor) removeGlobal(iface string) {
	for i, g := range srv.globals {
		if g.iface == iface {
			srv.event(srv.ids("wl_registry")[0], 1, uint32(i+1))
			return
		}
	}
	panic("removeGlobal: unknown interface " + iface)
}

// poolFile returns the SHM file received with the nth create_pool
// request. The file is shared with the client, so its contents are
// whatever the client last drew.
func (srv *fakeCompositor) poolFile(n int) *os.File {
	pools := srv.requests("wl_shm", "create_pool", 0)
	return pools[n].args[1].(*os.File)
}

func (srv *fakeCompositor) closeFiles() {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	for _, file := range srv.files {
		file.Close()
	}
	srv.files = nil
}

// newTestApp wires an App to a fake compositor over a socketpair.
func newTestApp(t *testing.T, globals []global) (*App, *fakeCompositor) {
	t.Helper()

	client, server := socketPair(t)
	srv := newFakeCompositor(server, globals)
	t.Cleanup(srv.closeFiles)

	display := wl.ConnectDisplay(client)
	t.Cleanup(func() { display.Close() })

	app, err := NewApp(display, DefaultConfig())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app, srv
}

// waitFor pumps the app's dispatch loop until cond holds, tolerating
// the round trips through the fake compositor's goroutine.
func waitFor(t *testing.T, app *App, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for condition")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		err := app.display.Dispatch(ctx)
		cancel()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("dispatch: %v", err)
		}
	}
}
