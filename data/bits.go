package data

import "fmt"

// field names one sub-range of a packed machine word. Every packed record in
// this package declares its layout as a set of fields and goes through
// get/put, so the shift/mask arithmetic lives in exactly one place.
type field struct {
	shift uint
	width uint
}

func (f field) max() uint32 {
	return 1<<f.width - 1
}

func (f field) get(w uint32) uint32 {
	return (w >> f.shift) & f.max()
}

func (f field) put(v uint32) uint32 {
	return (v & f.max()) << f.shift
}

// checked put for values that come from the application rather than the wire.
func (f field) putChecked(name string, v uint32) (uint32, error) {
	if v > f.max() {
		return 0, &RangeError{Field: name, Value: v, Max: f.max()}
	}
	return v << f.shift, nil
}

// RangeError reports an encode input that does not fit its bit-field.
type RangeError struct {
	Field string
	Value uint32
	Max   uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("data: %s value %d exceeds maximum %d", e.Field, e.Value, e.Max)
}

// ParseError reports a wire value that does not map to a known domain value.
type ParseError struct {
	Field string
	Value uint32
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("data: invalid %s value %#x", e.Field, e.Value)
}

// OptPart is an optional part index used by appearance records. The wire
// stores absence as 0 and index n as n+1 inside a 10-bit sub-field, so the
// largest representable index is 0x3FE.
type OptPart int16

// NoPart marks an absent optional part.
const NoPart OptPart = -1

const maxOptPart = 0x3FE

func unpackOpt(v uint32) OptPart {
	if v >= 1 && v <= 0x3FF {
		return OptPart(v - 1)
	}
	return NoPart
}

func packOpt(name string, p OptPart) (uint32, error) {
	switch {
	case p == NoPart:
		return 0, nil
	case p >= 0 && p <= maxOptPart:
		return uint32(p) + 1, nil
	default:
		return 0, &RangeError{Field: name, Value: uint32(p), Max: maxOptPart}
	}
}
