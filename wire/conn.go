// Package wire frames packets over a stream transport. Each frame is a
// 16-bit little-endian payload length followed by the payload.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"splashsrv/packet"
)

// MaxPayload is the largest payload a frame can carry.
const MaxPayload = 0xFFFF

// Conn reads and writes framed packets on a stream. It is not safe for
// concurrent use; each connection has exactly one owner.
type Conn struct {
	stream  net.Conn
	lenBuf  [2]byte
	nextPID int16
}

// NewConn wraps an accepted stream. The transport is typically a TLS
// server connection but anything stream-shaped works.
func NewConn(stream net.Conn) *Conn {
	return &Conn{stream: stream, nextPID: 1}
}

// RemoteAddr reports the peer address for logging.
func (c *Conn) RemoteAddr() net.Addr {
	return c.stream.RemoteAddr()
}

// ReadPacket blocks until one whole frame arrives and decodes it.
// io.EOF reports a clean close between frames.
func (c *Conn) ReadPacket() (packet.Header, packet.Body, error) {
	if _, err := io.ReadFull(c.stream, c.lenBuf[:]); err != nil {
		if err == io.EOF {
			return packet.Header{}, nil, io.EOF
		}
		return packet.Header{}, nil, fmt.Errorf("reading frame length: %w", err)
	}
	size := binary.LittleEndian.Uint16(c.lenBuf[:])

	payload := make([]byte, size)
	if _, err := io.ReadFull(c.stream, payload); err != nil {
		return packet.Header{}, nil, fmt.Errorf("reading frame payload: %w", err)
	}

	h, body, err := packet.Unmarshal(payload)
	if err != nil {
		return packet.Header{}, nil, err
	}
	return h, body, nil
}

// WritePacket sends a body with the next auto-incremented pid. Server
// pushes that the client does not correlate use this path.
func (c *Conn) WritePacket(body packet.Body) error {
	pid := c.nextPID
	c.nextPID++
	return c.WritePacketPID(body, pid)
}

// WritePacketPID sends a body echoing a request pid.
func (c *Conn) WritePacketPID(body packet.Body, pid int16) error {
	payload, err := packet.Marshal(body, pid)
	if err != nil {
		return err
	}
	if len(payload) > MaxPayload {
		return fmt.Errorf("opcode %d payload is %d bytes, frame limit is %d",
			body.Op(), len(payload), MaxPayload)
	}

	frame := make([]byte, 2+len(payload))
	binary.LittleEndian.PutUint16(frame, uint16(len(payload)))
	copy(frame[2:], payload)

	if _, err := c.stream.Write(frame); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Close shuts the transport down. Safe to call on every exit path.
func (c *Conn) Close() error {
	return c.stream.Close()
}
