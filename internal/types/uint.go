package types

import (
	"encoding/binary"
	"fmt"
)

// UintType is an unsigned little-endian integer of 1, 2, 4, or 8 bytes.
// The natural maximum is reserved as the NULL sentinel, one past it.
type UintType struct {
	n int
}

// NewUint returns the Uint(n) type for n in {1,2,4,8}.
func NewUint(n int) (*UintType, error) {
	switch n {
	case 1, 2, 4, 8:
		return &UintType{n: n}, nil
	default:
		return nil, fmt.Errorf("%w: uint width must be 1, 2, 4, or 8 bytes, got %d", ErrInvalidValue, n)
	}
}

func (t *UintType) Size() int { return t.n }

func (t *UintType) maxVal() uint64 {
	if t.n == 8 {
		return 1<<64 - 2
	}
	return uint64(1)<<(uint(t.n)*8) - 2
}

func (t *UintType) nullVal() uint64 { return t.maxVal() + 1 }

func (t *UintType) NullValue() any { return t.nullVal() }

func (t *UintType) Indexable() bool { return true }

func (t *UintType) IsValid(v any) bool {
	if v == nil {
		return true
	}
	n, ok := toUint64(v)
	if !ok {
		return false
	}
	return n <= t.maxVal()
}

func (t *UintType) Encode(v any) ([]byte, error) {
	var n uint64
	if v == nil {
		n = t.nullVal()
	} else {
		if !t.IsValid(v) {
			return nil, fmt.Errorf("%w: %v out of range for %s", ErrInvalidValue, v, t)
		}
		n, _ = toUint64(v)
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
		binary.LittleEndian.PutUint64(buf, n)
	}
	return buf, nil
}

func (t *UintType) Decode(buf []byte) (any, error) {
	if len(buf) != t.n {
		return nil, fmt.Errorf("%w: expected %d bytes for %s, got %d", ErrInvalidBuffer, t.n, t, len(buf))
	}

	var n uint64
	switch t.n {
	case 1:
		n = uint64(buf[0])
	case 2:
		n = uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		n = uint64(binary.LittleEndian.Uint32(buf))
	case 8:
		n = binary.LittleEndian.Uint64(buf)
	}

	if n == t.nullVal() {
		return nil, nil
	}
	return n, nil
}

func (t *UintType) Less(a, b any) bool {
	av, _ := toUint64(a)
	bv, _ := toUint64(b)
	return av < bv
}

func (t *UintType) String() string { return fmt.Sprintf("Uint%d", t.n) }
