// Package packet implements the client protocol: a tagged message catalog
// where each message is identified by a 16-bit opcode and carried behind a
// four byte header.
package packet

import "fmt"

// Op identifies a message type on the wire.
type Op int16

// Header precedes every payload. PID echoes the request id on replies that
// the client matches up by id; server pushes allocate their own.
type Header struct {
	ID  Op
	PID int16
}

const headerSize = 4

// Body is one decoded message. The catalog is closed: only types in this
// package implement it.
type Body interface {
	Op() Op
	encode(w *writer)
}

// Unknown preserves a message whose opcode has no decoder. Relays can pass
// it through untouched.
type Unknown struct {
	Opcode Op
	Raw    []byte
}

func (u Unknown) Op() Op           { return u.Opcode }
func (u Unknown) encode(w *writer) { w.bytes(u.Raw) }

var decoders = map[Op]func(*reader) Body{}

func register(op Op, fn func(*reader) Body) {
	if _, dup := decoders[op]; dup {
		panic(fmt.Sprintf("packet: duplicate decoder for opcode %d", op))
	}
	decoders[op] = fn
}

// Marshal encodes a header and body into a payload buffer, without the
// outer length framing.
func Marshal(body Body, pid int16) ([]byte, error) {
	w := &writer{}
	w.i16(int16(body.Op()))
	w.i16(pid)
	body.encode(w)
	if w.err != nil {
		return nil, fmt.Errorf("encoding opcode %d: %w", body.Op(), w.err)
	}
	return w.buf, nil
}

// Unmarshal decodes one payload buffer. Messages with an unregistered
// opcode come back as Unknown; a registered message that fails to parse is
// an error.
func Unmarshal(b []byte) (Header, Body, error) {
	r := newReader(b)
	h := Header{ID: Op(r.i16()), PID: r.i16()}
	if err := r.finish(); err != nil {
		return Header{}, nil, fmt.Errorf("decoding header: %w", err)
	}

	fn, ok := decoders[h.ID]
	if !ok {
		raw := make([]byte, len(b)-headerSize)
		copy(raw, b[headerSize:])
		return h, Unknown{Opcode: h.ID, Raw: raw}, nil
	}
	body := fn(r)
	if err := r.finish(); err != nil {
		return Header{}, nil, fmt.Errorf("decoding opcode %d: %w", h.ID, err)
	}
	return h, body, nil
}
