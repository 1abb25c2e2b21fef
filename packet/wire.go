package packet

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

// reader walks a payload buffer with a sticky error. After the first
// failure every read returns a zero value, so decoders can run straight
// through and check the error once at the end.
type reader struct {
	buf []byte
	off int
	err error
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.buf) {
		r.fail(io.ErrUnexpectedEOF)
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) i8() int8 { return int8(r.u8()) }

func (r *reader) u16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *reader) i16() int16 { return int16(r.u16()) }

func (r *reader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) i32() int32 { return int32(r.u32()) }

func (r *reader) u64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *reader) i64() int64 { return int64(r.u64()) }

func (r *reader) f32() float32 { return math.Float32frombits(r.u32()) }

func (r *reader) bytes(n int) []byte {
	b := r.take(n)
	out := make([]byte, n)
	copy(out, b)
	return out
}

// astring reads an n byte NUL padded field and returns the text before the
// first NUL. Anything that is not valid UTF-8 poisons the reader.
func (r *reader) astring(n int) string {
	b := r.take(n)
	if b == nil {
		return ""
	}
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	if !utf8.Valid(b) {
		r.fail(fmt.Errorf("packet: string field is not valid UTF-8"))
		return ""
	}
	return string(b)
}

// wstring reads an n code unit UTF-16 field, NUL padded.
func (r *reader) wstring(n int) string {
	b := r.take(2 * n)
	if b == nil {
		return ""
	}
	units := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		u := binary.LittleEndian.Uint16(b[2*i:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

// utf16Text reads a 16-bit unit count followed by that many UTF-16 code
// units, the chat and telop text shape.
func (r *reader) utf16Text() string {
	n := int(r.i16())
	if n < 0 {
		r.fail(fmt.Errorf("packet: negative text length %d", n))
		return ""
	}
	b := r.take(2 * n)
	if b == nil {
		return ""
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return string(utf16.Decode(units))
}

// utf8Text reads a byte count followed by that many UTF-8 bytes, the mail
// text shape.
func (r *reader) utf8Text() string {
	n := int(r.i16())
	if n < 0 {
		r.fail(fmt.Errorf("packet: negative text length %d", n))
		return ""
	}
	b := r.take(n)
	if b == nil {
		return ""
	}
	if !utf8.Valid(b) {
		r.fail(fmt.Errorf("packet: text field is not valid UTF-8"))
		return ""
	}
	return string(b)
}

// bitword reads four raw bytes as a most-significant-bit-first word, the
// layout used by the handful of sub-byte fields in the protocol.
func (r *reader) bitword() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *reader) finish() error {
	return r.err
}

// writer builds a payload buffer. Length errors (an oversized string) are
// sticky in the same way the reader's are.
type writer struct {
	buf []byte
	err error
}

func (w *writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *writer) u8(v uint8)  { w.buf = append(w.buf, v) }
func (w *writer) i8(v int8)   { w.u8(uint8(v)) }
func (w *writer) u16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}
func (w *writer) i16(v int16) { w.u16(uint16(v)) }
func (w *writer) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}
func (w *writer) i32(v int32) { w.u32(uint32(v)) }
func (w *writer) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}
func (w *writer) i64(v int64)   { w.u64(uint64(v)) }
func (w *writer) f32(v float32) { w.u32(math.Float32bits(v)) }

func (w *writer) bytes(b []byte) { w.buf = append(w.buf, b...) }

func (w *writer) astring(s string, n int) {
	if len(s) >= n {
		w.fail(fmt.Errorf("packet: string %q does not fit in %d bytes", s, n))
		s = s[:n-1]
	}
	w.buf = append(w.buf, s...)
	w.pad(n - len(s))
}

func (w *writer) wstring(s string, n int) {
	units := utf16.Encode([]rune(s))
	if len(units) >= n {
		w.fail(fmt.Errorf("packet: string %q does not fit in %d UTF-16 units", s, n))
		units = units[:n-1]
	}
	for _, u := range units {
		w.u16(u)
	}
	w.pad(2 * (n - len(units)))
}

func (w *writer) utf16Text(s string) {
	units := utf16.Encode([]rune(s))
	w.i16(int16(len(units)))
	for _, u := range units {
		w.u16(u)
	}
}

func (w *writer) utf8Text(s string) {
	w.i16(int16(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *writer) bitword(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *writer) pad(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}
