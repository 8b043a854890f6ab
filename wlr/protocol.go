// Package wlr implements the client side of the wlr-layer-shell-v1
// protocol extension, which anchors surfaces to screen edges for
// panels, bars, and other shell components.
package wlr

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
	layerShellInterface = "zwlr_layer_shell_v1"
	layerShellVersion   = 4
)

type layerShellObject struct {
	object
}

func (obj *layerShellObject) Interface() string { return layerShellInterface }

func (obj *layerShellObject) String() string { return fmt.Sprintf("%v@%v", layerShellInterface, obj.id) }

func (obj *layerShellObject) MethodName(op uint16) string { return "unknown" }

func (obj *layerShellObject) Dispatch(msg *wire.MessageBuffer) error {
	return wire.UnknownOpError{Interface: layerShellInterface, Type: "event", Op: msg.Op()}
}

func (obj *layerShellObject) GetLayerSurface(id, surface, output uint32, layer uint32, namespace string) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "get_layer_surface"
	msg.Args = []any{id, surface, output, layer, namespace}
	msg.WriteUint(id)
	msg.WriteUint(surface)
	msg.WriteUint(output)
	msg.WriteUint(layer)
	msg.WriteString(namespace)
	return msg
}

func (obj *layerShellObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "destroy"
	return msg
}

const (
	layerSurfaceInterface = "zwlr_layer_surface_v1"
	layerSurfaceVersion   = 4
)

type layerSurfaceListener interface {
	Configure(serial, width, height uint32)
	Closed()
}

type layerSurfaceObject struct {
	object
	listener layerSurfaceListener
}

func (obj *layerSurfaceObject) Interface() string { return layerSurfaceInterface }

func (obj *layerSurfaceObject) String() string {
	return fmt.Sprintf("%v@%v", layerSurfaceInterface, obj.id)
}

func (obj *layerSurfaceObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "configure"
	case 1:
		return "closed"
	}
	return "unknown"
}

func (obj *layerSurfaceObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		serial := msg.ReadUint()
		width := msg.ReadUint()
		height := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Configure(serial, width, height)
		return nil
	case 1:
		obj.listener.Closed()
		return nil
	}
	return wire.UnknownOpError{Interface: layerSurfaceInterface, Type: "event", Op: msg.Op()}
}

func (obj *layerSurfaceObject) SetSize(width, height uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "set_size"
	msg.Args = []any{width, height}
	msg.WriteUint(width)
	msg.WriteUint(height)
	return msg
}

func (obj *layerSurfaceObject) SetAnchor(anchor uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "set_anchor"
	msg.Args = []any{anchor}
	msg.WriteUint(anchor)
	return msg
}

func (obj *layerSurfaceObject) SetExclusiveZone(zone int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 2)
	msg.Method = "set_exclusive_zone"
	msg.Args = []any{zone}
	msg.WriteInt(zone)
	return msg
}

func (obj *layerSurfaceObject) SetMargin(top, right, bottom, left int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 3)
	msg.Method = "set_margin"
	msg.Args = []any{top, right, bottom, left}
	msg.WriteInt(top)
	msg.WriteInt(right)
	msg.WriteInt(bottom)
	msg.WriteInt(left)
	return msg
}

func (obj *layerSurfaceObject) SetKeyboardInteractivity(interactivity uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 4)
	msg.Method = "set_keyboard_interactivity"
	msg.Args = []any{interactivity}
	msg.WriteUint(interactivity)
	return msg
}

func (obj *layerSurfaceObject) AckConfigure(serial uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 6)
	msg.Method = "ack_configure"
	msg.Args = []any{serial}
	msg.WriteUint(serial)
	return msg
}

func (obj *layerSurfaceObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 7)
	msg.Method = "destroy"
	return msg
}

func (obj *layerSurfaceObject) SetLayer(layer uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 8)
	msg.Method = "set_layer"
	msg.Args = []any{layer}
	msg.WriteUint(layer)
	return msg
}
