// Package xdg implements the client side of the xdg-shell protocol
// extension, which gives surfaces desktop window roles.
package xdg

import (
	"fmt"

	"github.com/phisch/phrame/wire"
)

type object struct {
	id uint32
}

func (obj *object) ID() uint32      { return obj.id }
func (obj *object) SetID(id uint32) { obj.id = id }
func (obj *object) Delete()         {}

const (
	wmBaseInterface = "xdg_wm_base"
	wmBaseVersion   = 2
)

type wmBaseListener interface {
	Ping(serial uint32)
}

type wmBaseObject struct {
	object
	listener wmBaseListener
}

func (obj *wmBaseObject) Interface() string { return wmBaseInterface }

func (obj *wmBaseObject) String() string { return fmt.Sprintf("%v@%v", wmBaseInterface, obj.id) }

func (obj *wmBaseObject) MethodName(op uint16) string {
	if op == 0 {
		return "ping"
	}
	return "unknown"
}

func (obj *wmBaseObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	if msg.Op() == 0 {
		serial := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Ping(serial)
		return nil
	}
	return wire.UnknownOpError{Interface: wmBaseInterface, Type: "event", Op: msg.Op()}
}

func (obj *wmBaseObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "destroy"
	return msg
}

func (obj *wmBaseObject) CreatePositioner(id uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "create_positioner"
	msg.Args = []any{id}
	msg.WriteUint(id)
	return msg
}

func (obj *wmBaseObject) GetXdgSurface(id, surface uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 2)
	msg.Method = "get_xdg_surface"
	msg.Args = []any{id, surface}
	msg.WriteUint(id)
	msg.WriteUint(surface)
	return msg
}

func (obj *wmBaseObject) Pong(serial uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 3)
	msg.Method = "pong"
	msg.Args = []any{serial}
	msg.WriteUint(serial)
	return msg
}

const (
	surfaceInterface = "xdg_surface"
	surfaceVersion   = 2
)

type surfaceListener interface {
	Configure(serial uint32)
}

type surfaceObject struct {
	object
	listener surfaceListener
}

func (obj *surfaceObject) Interface() string { return surfaceInterface }

func (obj *surfaceObject) String() string { return fmt.Sprintf("%v@%v", surfaceInterface, obj.id) }

func (obj *surfaceObject) MethodName(op uint16) string {
	if op == 0 {
		return "configure"
	}
	return "unknown"
}

func (obj *surfaceObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	if msg.Op() == 0 {
		serial := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Configure(serial)
		return nil
	}
	return wire.UnknownOpError{Interface: surfaceInterface, Type: "event", Op: msg.Op()}
}

func (obj *surfaceObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "destroy"
	return msg
}

func (obj *surfaceObject) GetToplevel(id uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "get_toplevel"
	msg.Args = []any{id}
	msg.WriteUint(id)
	return msg
}

func (obj *surfaceObject) SetWindowGeometry(x, y, width, height int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 3)
	msg.Method = "set_window_geometry"
	msg.Args = []any{x, y, width, height}
	msg.WriteInt(x)
	msg.WriteInt(y)
	msg.WriteInt(width)
	msg.WriteInt(height)
	return msg
}

func (obj *surfaceObject) AckConfigure(serial uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 4)
	msg.Method = "ack_configure"
	msg.Args = []any{serial}
	msg.WriteUint(serial)
	return msg
}

const (
	toplevelInterface = "xdg_toplevel"
	toplevelVersion   = 2
)

type toplevelListener interface {
	Configure(width, height int32, states []byte)
	Close()
}

type toplevelObject struct {
	object
	listener toplevelListener
}

func (obj *toplevelObject) Interface() string { return toplevelInterface }

func (obj *toplevelObject) String() string { return fmt.Sprintf("%v@%v", toplevelInterface, obj.id) }

func (obj *toplevelObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "configure"
	case 1:
		return "close"
	}
	return "unknown"
}

func (obj *toplevelObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		width := msg.ReadInt()
		height := msg.ReadInt()
		states := msg.ReadArray()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Configure(width, height, states)
		return nil
	case 1:
		obj.listener.Close()
		return nil
	}
	return wire.UnknownOpError{Interface: toplevelInterface, Type: "event", Op: msg.Op()}
}

func (obj *toplevelObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "destroy"
	return msg
}

func (obj *toplevelObject) SetParent(parent uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "set_parent"
	msg.Args = []any{parent}
	msg.WriteUint(parent)
	return msg
}

func (obj *toplevelObject) SetTitle(title string) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 2)
	msg.Method = "set_title"
	msg.Args = []any{title}
	msg.WriteString(title)
	return msg
}

func (obj *toplevelObject) SetAppID(appID string) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 3)
	msg.Method = "set_app_id"
	msg.Args = []any{appID}
	msg.WriteString(appID)
	return msg
}

func (obj *toplevelObject) SetMaxSize(width, height int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 7)
	msg.Method = "set_max_size"
	msg.Args = []any{width, height}
	msg.WriteInt(width)
	msg.WriteInt(height)
	return msg
}

func (obj *toplevelObject) SetMinSize(width, height int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 8)
	msg.Method = "set_min_size"
	msg.Args = []any{width, height}
	msg.WriteInt(width)
	msg.WriteInt(height)
	return msg
}
