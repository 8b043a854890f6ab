package wl

import (
	"fmt"
	"os"

	"github.com/phisch/phrame/wire"
)

// object is the common plumbing embedded by every protocol object.
type object struct {
	id uint32
}

func (obj *object) ID() uint32      { return obj.id }
func (obj *object) SetID(id uint32) { obj.id = id }
func (obj *object) Delete()         {}

const (
	displayInterface = "wl_display"
	displayVersion   = 1
)

type displayListener interface {
	Error(objectID, code uint32, message string)
	DeleteID(id uint32)
}

type displayObject struct {
	object
	listener displayListener
}

func (obj *displayObject) Interface() string { return displayInterface }

func (obj *displayObject) String() string { return fmt.Sprintf("%v@%v", displayInterface, obj.id) }

func (obj *displayObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "error"
	case 1:
		return "delete_id"
	}
	return "unknown"
}

func (obj *displayObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		objectID := msg.ReadUint()
		code := msg.ReadUint()
		message := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Error(objectID, code, message)
		return nil
	case 1:
		id := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.DeleteID(id)
		return nil
	}
	return wire.UnknownOpError{Interface: displayInterface, Type: "event", Op: msg.Op()}
}

func (obj *displayObject) Sync(callback uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "sync"
	msg.Args = []any{callback}
	msg.WriteUint(callback)
	return msg
}

func (obj *displayObject) GetRegistry(registry uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "get_registry"
	msg.Args = []any{registry}
	msg.WriteUint(registry)
	return msg
}

const (
	registryInterface = "wl_registry"
	registryVersion   = 1
)

type registryListener interface {
	Global(name uint32, inter string, version uint32)
	GlobalRemove(name uint32)
}

type registryObject struct {
	object
	listener registryListener
}

func (obj *registryObject) Interface() string { return registryInterface }

func (obj *registryObject) String() string { return fmt.Sprintf("%v@%v", registryInterface, obj.id) }

func (obj *registryObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "global"
	case 1:
		return "global_remove"
	}
	return "unknown"
}

func (obj *registryObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		name := msg.ReadUint()
		inter := msg.ReadString()
		version := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Global(name, inter, version)
		return nil
	case 1:
		name := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.GlobalRemove(name)
		return nil
	}
	return wire.UnknownOpError{Interface: registryInterface, Type: "event", Op: msg.Op()}
}

func (obj *registryObject) Bind(name uint32, inter string, version, id uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "bind"
	msg.Args = []any{name, inter, version, id}
	msg.WriteUint(name)
	msg.WriteNewID(wire.NewID{Interface: inter, Version: version, ID: id})
	return msg
}

const (
	callbackInterface = "wl_callback"
	callbackVersion   = 1
)

type callbackListener interface {
	Done(data uint32)
}

type callbackObject struct {
	object
	listener callbackListener
}

func (obj *callbackObject) Interface() string { return callbackInterface }

func (obj *callbackObject) String() string { return fmt.Sprintf("%v@%v", callbackInterface, obj.id) }

func (obj *callbackObject) MethodName(op uint16) string {
	if op == 0 {
		return "done"
	}
	return "unknown"
}

func (obj *callbackObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		data := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Done(data)
		return nil
	}
	return wire.UnknownOpError{Interface: callbackInterface, Type: "event", Op: msg.Op()}
}

const (
	compositorInterface = "wl_compositor"
	compositorVersion   = 6
)

type compositorObject struct {
	object
}

func (obj *compositorObject) Interface() string { return compositorInterface }

func (obj *compositorObject) String() string {
	return fmt.Sprintf("%v@%v", compositorInterface, obj.id)
}

func (obj *compositorObject) MethodName(op uint16) string { return "unknown" }

func (obj *compositorObject) Dispatch(msg *wire.MessageBuffer) error {
	return wire.UnknownOpError{Interface: compositorInterface, Type: "event", Op: msg.Op()}
}

func (obj *compositorObject) CreateSurface(id uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "create_surface"
	msg.Args = []any{id}
	msg.WriteUint(id)
	return msg
}

func (obj *compositorObject) CreateRegion(id uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "create_region"
	msg.Args = []any{id}
	msg.WriteUint(id)
	return msg
}

const (
	surfaceInterface = "wl_surface"
	surfaceVersion   = 6
)

type surfaceListener interface {
	Enter(output uint32)
	Leave(output uint32)
	PreferredBufferScale(factor int32)
	PreferredBufferTransform(transform uint32)
}

type surfaceObject struct {
	object
	listener surfaceListener
}

func (obj *surfaceObject) Interface() string { return surfaceInterface }

func (obj *surfaceObject) String() string { return fmt.Sprintf("%v@%v", surfaceInterface, obj.id) }

func (obj *surfaceObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "enter"
	case 1:
		return "leave"
	case 2:
		return "preferred_buffer_scale"
	case 3:
		return "preferred_buffer_transform"
	}
	return "unknown"
}

func (obj *surfaceObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		output := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Enter(output)
		return nil
	case 1:
		output := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Leave(output)
		return nil
	case 2:
		factor := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.PreferredBufferScale(factor)
		return nil
	case 3:
		transform := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.PreferredBufferTransform(transform)
		return nil
	}
	return wire.UnknownOpError{Interface: surfaceInterface, Type: "event", Op: msg.Op()}
}

func (obj *surfaceObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "destroy"
	return msg
}

func (obj *surfaceObject) Attach(buffer uint32, x, y int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "attach"
	msg.Args = []any{buffer, x, y}
	msg.WriteUint(buffer)
	msg.WriteInt(x)
	msg.WriteInt(y)
	return msg
}

func (obj *surfaceObject) Damage(x, y, width, height int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 2)
	msg.Method = "damage"
	msg.Args = []any{x, y, width, height}
	msg.WriteInt(x)
	msg.WriteInt(y)
	msg.WriteInt(width)
	msg.WriteInt(height)
	return msg
}

func (obj *surfaceObject) Frame(callback uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 3)
	msg.Method = "frame"
	msg.Args = []any{callback}
	msg.WriteUint(callback)
	return msg
}

func (obj *surfaceObject) SetOpaqueRegion(region uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 4)
	msg.Method = "set_opaque_region"
	msg.Args = []any{region}
	msg.WriteUint(region)
	return msg
}

func (obj *surfaceObject) SetInputRegion(region uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 5)
	msg.Method = "set_input_region"
	msg.Args = []any{region}
	msg.WriteUint(region)
	return msg
}

func (obj *surfaceObject) Commit() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 6)
	msg.Method = "commit"
	return msg
}

const (
	regionInterface = "wl_region"
	regionVersion   = 1
)

type regionObject struct {
	object
}

func (obj *regionObject) Interface() string { return regionInterface }

func (obj *regionObject) String() string { return fmt.Sprintf("%v@%v", regionInterface, obj.id) }

func (obj *regionObject) MethodName(op uint16) string { return "unknown" }

func (obj *regionObject) Dispatch(msg *wire.MessageBuffer) error {
	return wire.UnknownOpError{Interface: regionInterface, Type: "event", Op: msg.Op()}
}

func (obj *regionObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "destroy"
	return msg
}

func (obj *regionObject) Add(x, y, width, height int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "add"
	msg.Args = []any{x, y, width, height}
	msg.WriteInt(x)
	msg.WriteInt(y)
	msg.WriteInt(width)
	msg.WriteInt(height)
	return msg
}

func (obj *regionObject) Subtract(x, y, width, height int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 2)
	msg.Method = "subtract"
	msg.Args = []any{x, y, width, height}
	msg.WriteInt(x)
	msg.WriteInt(y)
	msg.WriteInt(width)
	msg.WriteInt(height)
	return msg
}

const (
	seatInterface = "wl_seat"
	seatVersion   = 5
)

type seatListener interface {
	Capabilities(capabilities uint32)
	Name(name string)
}

type seatObject struct {
	object
	listener seatListener
}

func (obj *seatObject) Interface() string { return seatInterface }

func (obj *seatObject) String() string { return fmt.Sprintf("%v@%v", seatInterface, obj.id) }

func (obj *seatObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "capabilities"
	case 1:
		return "name"
	}
	return "unknown"
}

func (obj *seatObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		capabilities := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Capabilities(capabilities)
		return nil
	case 1:
		name := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Name(name)
		return nil
	}
	return wire.UnknownOpError{Interface: seatInterface, Type: "event", Op: msg.Op()}
}

func (obj *seatObject) GetPointer(id uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "get_pointer"
	msg.Args = []any{id}
	msg.WriteUint(id)
	return msg
}

func (obj *seatObject) GetKeyboard(id uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "get_keyboard"
	msg.Args = []any{id}
	msg.WriteUint(id)
	return msg
}

func (obj *seatObject) Release() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 3)
	msg.Method = "release"
	return msg
}

const (
	pointerInterface = "wl_pointer"
	pointerVersion   = 5
)

type pointerListener interface {
	Enter(serial, surface uint32, surfaceX, surfaceY wire.Fixed)
	Leave(serial, surface uint32)
	Motion(time uint32, surfaceX, surfaceY wire.Fixed)
	Button(serial, time, button, state uint32)
	Axis(time, axis uint32, value wire.Fixed)
	Frame()
	AxisSource(axisSource uint32)
	AxisStop(time, axis uint32)
	AxisDiscrete(axis uint32, discrete int32)
}

type pointerObject struct {
	object
	listener pointerListener
}

func (obj *pointerObject) Interface() string { return pointerInterface }

func (obj *pointerObject) String() string { return fmt.Sprintf("%v@%v", pointerInterface, obj.id) }

func (obj *pointerObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "enter"
	case 1:
		return "leave"
	case 2:
		return "motion"
	case 3:
		return "button"
	case 4:
		return "axis"
	case 5:
		return "frame"
	case 6:
		return "axis_source"
	case 7:
		return "axis_stop"
	case 8:
		return "axis_discrete"
	}
	return "unknown"
}

func (obj *pointerObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		serial := msg.ReadUint()
		surface := msg.ReadUint()
		surfaceX := msg.ReadFixed()
		surfaceY := msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Enter(serial, surface, surfaceX, surfaceY)
		return nil
	case 1:
		serial := msg.ReadUint()
		surface := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Leave(serial, surface)
		return nil
	case 2:
		time := msg.ReadUint()
		surfaceX := msg.ReadFixed()
		surfaceY := msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Motion(time, surfaceX, surfaceY)
		return nil
	case 3:
		serial := msg.ReadUint()
		time := msg.ReadUint()
		button := msg.ReadUint()
		state := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Button(serial, time, button, state)
		return nil
	case 4:
		time := msg.ReadUint()
		axis := msg.ReadUint()
		value := msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Axis(time, axis, value)
		return nil
	case 5:
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Frame()
		return nil
	case 6:
		axisSource := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.AxisSource(axisSource)
		return nil
	case 7:
		time := msg.ReadUint()
		axis := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.AxisStop(time, axis)
		return nil
	case 8:
		axis := msg.ReadUint()
		discrete := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.AxisDiscrete(axis, discrete)
		return nil
	}
	return wire.UnknownOpError{Interface: pointerInterface, Type: "event", Op: msg.Op()}
}

func (obj *pointerObject) SetCursor(serial, surface uint32, hotspotX, hotspotY int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "set_cursor"
	msg.Args = []any{serial, surface, hotspotX, hotspotY}
	msg.WriteUint(serial)
	msg.WriteUint(surface)
	msg.WriteInt(hotspotX)
	msg.WriteInt(hotspotY)
	return msg
}

func (obj *pointerObject) Release() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "release"
	return msg
}

const (
	keyboardInterface = "wl_keyboard"
	keyboardVersion   = 5
)

type keyboardListener interface {
	Keymap(format uint32, fd *os.File, size uint32)
	Enter(serial, surface uint32, keys []byte)
	Leave(serial, surface uint32)
	Key(serial, time, key, state uint32)
	Modifiers(serial, modsDepressed, modsLatched, modsLocked, group uint32)
	RepeatInfo(rate, delay int32)
}

type keyboardObject struct {
	object
	listener keyboardListener
}

func (obj *keyboardObject) Interface() string { return keyboardInterface }

func (obj *keyboardObject) String() string { return fmt.Sprintf("%v@%v", keyboardInterface, obj.id) }

func (obj *keyboardObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "keymap"
	case 1:
		return "enter"
	case 2:
		return "leave"
	case 3:
		return "key"
	case 4:
		return "modifiers"
	case 5:
		return "repeat_info"
	}
	return "unknown"
}

func (obj *keyboardObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		format := msg.ReadUint()
		fd := msg.ReadFile()
		size := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Keymap(format, fd, size)
		return nil
	case 1:
		serial := msg.ReadUint()
		surface := msg.ReadUint()
		keys := msg.ReadArray()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Enter(serial, surface, keys)
		return nil
	case 2:
		serial := msg.ReadUint()
		surface := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Leave(serial, surface)
		return nil
	case 3:
		serial := msg.ReadUint()
		time := msg.ReadUint()
		key := msg.ReadUint()
		state := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Key(serial, time, key, state)
		return nil
	case 4:
		serial := msg.ReadUint()
		modsDepressed := msg.ReadUint()
		modsLatched := msg.ReadUint()
		modsLocked := msg.ReadUint()
		group := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Modifiers(serial, modsDepressed, modsLatched, modsLocked, group)
		return nil
	case 5:
		rate := msg.ReadInt()
		delay := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.RepeatInfo(rate, delay)
		return nil
	}
	return wire.UnknownOpError{Interface: keyboardInterface, Type: "event", Op: msg.Op()}
}

func (obj *keyboardObject) Release() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "release"
	return msg
}

const (
	outputInterface = "wl_output"
	outputVersion   = 4
)

type outputListener interface {
	Geometry(x, y, physicalWidth, physicalHeight, subpixel int32, make, model string, transform int32)
	Mode(flags uint32, width, height, refresh int32)
	Done()
	Scale(factor int32)
	Name(name string)
	Description(description string)
}

type outputObject struct {
	object
	listener outputListener
}

func (obj *outputObject) Interface() string { return outputInterface }

func (obj *outputObject) String() string { return fmt.Sprintf("%v@%v", outputInterface, obj.id) }

func (obj *outputObject) MethodName(op uint16) string {
	switch op {
	case 0:
		return "geometry"
	case 1:
		return "mode"
	case 2:
		return "done"
	case 3:
		return "scale"
	case 4:
		return "name"
	case 5:
		return "description"
	}
	return "unknown"
}

func (obj *outputObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		x := msg.ReadInt()
		y := msg.ReadInt()
		physicalWidth := msg.ReadInt()
		physicalHeight := msg.ReadInt()
		subpixel := msg.ReadInt()
		mk := msg.ReadString()
		model := msg.ReadString()
		transform := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Geometry(x, y, physicalWidth, physicalHeight, subpixel, mk, model, transform)
		return nil
	case 1:
		flags := msg.ReadUint()
		width := msg.ReadInt()
		height := msg.ReadInt()
		refresh := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Mode(flags, width, height, refresh)
		return nil
	case 2:
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Done()
		return nil
	case 3:
		factor := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Scale(factor)
		return nil
	case 4:
		name := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Name(name)
		return nil
	case 5:
		description := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Description(description)
		return nil
	}
	return wire.UnknownOpError{Interface: outputInterface, Type: "event", Op: msg.Op()}
}

func (obj *outputObject) Release() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "release"
	return msg
}

const (
	shmInterface = "wl_shm"
	shmVersion   = 1
)

type shmListener interface {
	Format(format uint32)
}

type shmObject struct {
	object
	listener shmListener
}

func (obj *shmObject) Interface() string { return shmInterface }

func (obj *shmObject) String() string { return fmt.Sprintf("%v@%v", shmInterface, obj.id) }

func (obj *shmObject) MethodName(op uint16) string {
	if op == 0 {
		return "format"
	}
	return "unknown"
}

func (obj *shmObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		format := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Format(format)
		return nil
	}
	return wire.UnknownOpError{Interface: shmInterface, Type: "event", Op: msg.Op()}
}

func (obj *shmObject) CreatePool(id uint32, fd *os.File, size int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "create_pool"
	msg.Args = []any{id, fd, size}
	msg.WriteUint(id)
	msg.WriteFile(fd)
	msg.WriteInt(size)
	return msg
}

const (
	shmPoolInterface = "wl_shm_pool"
	shmPoolVersion   = 1
)

type shmPoolObject struct {
	object
}

func (obj *shmPoolObject) Interface() string { return shmPoolInterface }

func (obj *shmPoolObject) String() string { return fmt.Sprintf("%v@%v", shmPoolInterface, obj.id) }

func (obj *shmPoolObject) MethodName(op uint16) string { return "unknown" }

func (obj *shmPoolObject) Dispatch(msg *wire.MessageBuffer) error {
	return wire.UnknownOpError{Interface: shmPoolInterface, Type: "event", Op: msg.Op()}
}

func (obj *shmPoolObject) CreateBuffer(id uint32, offset, width, height, stride int32, format uint32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "create_buffer"
	msg.Args = []any{id, offset, width, height, stride, format}
	msg.WriteUint(id)
	msg.WriteInt(offset)
	msg.WriteInt(width)
	msg.WriteInt(height)
	msg.WriteInt(stride)
	msg.WriteUint(format)
	return msg
}

func (obj *shmPoolObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 1)
	msg.Method = "destroy"
	return msg
}

func (obj *shmPoolObject) Resize(size int32) *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 2)
	msg.Method = "resize"
	msg.Args = []any{size}
	msg.WriteInt(size)
	return msg
}

const (
	bufferInterface = "wl_buffer"
	bufferVersion   = 1
)

type bufferListener interface {
	Release()
}

type bufferObject struct {
	object
	listener bufferListener
}

func (obj *bufferObject) Interface() string { return bufferInterface }

func (obj *bufferObject) String() string { return fmt.Sprintf("%v@%v", bufferInterface, obj.id) }

func (obj *bufferObject) MethodName(op uint16) string {
	if op == 0 {
		return "release"
	}
	return "unknown"
}

func (obj *bufferObject) Dispatch(msg *wire.MessageBuffer) error {
	if obj.listener == nil {
		return nil
	}
	switch msg.Op() {
	case 0:
		if err := msg.Err(); err != nil {
			return err
		}
		obj.listener.Release()
		return nil
	}
	return wire.UnknownOpError{Interface: bufferInterface, Type: "event", Op: msg.Op()}
}

func (obj *bufferObject) Destroy() *wire.MessageBuilder {
	msg := wire.NewMessage(obj, 0)
	msg.Method = "destroy"
	return msg
}
