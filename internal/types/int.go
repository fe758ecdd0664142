package types

import (
	"encoding/binary"
	"fmt"
)

// IntType is a two's-complement, little-endian signed integer of 1, 2, 4,
// or 8 bytes. Its usable range is one narrower than the machine width at
// the low end: the natural minimum is reserved as the NULL sentinel.
type IntType struct {
	n int
}

// NewInt returns the Int(n) type for n in {1,2,4,8}.
func NewInt(n int) (*IntType, error) {
	switch n {
	case 1, 2, 4, 8:
		return &IntType{n: n}, nil
	default:
		return nil, fmt.Errorf("%w: int width must be 1, 2, 4, or 8 bytes, got %d", ErrInvalidValue, n)
	}
}

func (t *IntType) Size() int { return t.n }

func (t *IntType) maxVal() int64 { return int64(1)<<(uint(t.n)*8-1) - 1 }
func (t *IntType) minVal() int64 { return -t.maxVal() }
func (t *IntType) nullVal() int64 { return t.minVal() - 1 }

func (t *IntType) NullValue() any { return t.nullVal() }

func (t *IntType) Indexable() bool { return true }

func (t *IntType) IsValid(v any) bool {
	if v == nil {
		return true
	}
	n, ok := toInt64(v)
	if !ok {
		return false
	}
	return n >= t.minVal() && n <= t.maxVal()
}

func (t *IntType) Encode(v any) ([]byte, error) {
	var n int64
	if v == nil {
		n = t.nullVal()
	} else {
		if !t.IsValid(v) {
			return nil, fmt.Errorf("%w: %v out of range for %s", ErrInvalidValue, v, t)
		}
		n, _ = toInt64(v)
	}

	buf := make([]byte, t.n)
	switch t.n {
	case 1:
		buf[0] = byte(n)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(n))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(n))
	case 8:
		binary.LittleEndian.PutUint64(buf, uint64(n))
	}
	return buf, nil
}

func (t *IntType) Decode(buf []byte) (any, error) {
	if len(buf) != t.n {
		return nil, fmt.Errorf("%w: expected %d bytes for %s, got %d", ErrInvalidBuffer, t.n, t, len(buf))
	}

	var n int64
	switch t.n {
	case 1:
		n = int64(int8(buf[0]))
	case 2:
		n = int64(int16(binary.LittleEndian.Uint16(buf)))
	case 4:
		n = int64(int32(binary.LittleEndian.Uint32(buf)))
	case 8:
		n = int64(binary.LittleEndian.Uint64(buf))
	}

	if n == t.nullVal() {
		return nil, nil
	}
	return n, nil
}

func (t *IntType) Less(a, b any) bool {
	av, _ := toInt64(a)
	bv, _ := toInt64(b)
	return av < bv
}

func (t *IntType) String() string { return fmt.Sprintf("Int%d", t.n) }
