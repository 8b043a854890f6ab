// Package wire implements the client side of the Wayland wire
// protocol: a Unix socket connection with file descriptor passing and
// the message encoding that protocol bindings are built on top of.
package wire

import (
	"errors"
	"io"
	"net"
)

// Object represents a Wayland protocol object. Implementations are
// provided by the protocol binding packages.
type Object interface {
	// ID is the object's ID in the owning connection's object space,
	// or zero if the object has not been added to a connection yet.
	ID() uint32

	// SetID assigns the object's ID. It is called exactly once, when
	// the object is added to a connection.
	SetID(id uint32)

	// Interface is the name of the object's protocol interface, such
	// as "wl_surface".
	Interface() string

	// MethodName maps an event opcode to its protocol name. It is
	// used for debug output only.
	MethodName(op uint16) string

	// Dispatch decodes the event in the buffer and delivers it to the
	// object's listener.
	Dispatch(msg *MessageBuffer) error

	// Delete is called when the server confirms that the object's ID
	// has been released.
	Delete()
}

// NewID is the wire representation of a new_id argument with no
// compile-time interface, such as the one in wl_registry.bind.
type NewID struct {
	Interface string
	Version   uint32
	ID        uint32
}

// padding returns the number of padding bytes needed to align a block
// of n bytes to the protocol's 32-bit boundary.
func padding(n uint32) uint32 {
	return (4 - (n & 3)) & 3
}

// unixTee reads from c, collecting any out-of-band data that arrives
// alongside the regular data into oob.
type unixTee struct {
	c   *net.UnixConn
	oob io.Writer
}

func (t unixTee) Read(buf []byte) (int, error) {
	oob := make([]byte, 1024)
	n, oobn, _, _, err := t.c.ReadMsgUnix(buf, oob)
	_, ooberr := t.oob.Write(oob[:oobn])
	return n, errors.Join(err, ooberr)
}
