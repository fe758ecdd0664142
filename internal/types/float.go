package types

import (
	"encoding/binary"
	"fmt"
	"math"
)

// FloatType is an IEEE-754 binary32 or binary64 value. Positive infinity
// is reserved as the NULL sentinel, so it cannot be written as ordinary
// data.
type FloatType struct {
	n int
}

// NewFloat returns the Float(n) type for n in {4,8}.
func NewFloat(n int) (*FloatType, error) {
	switch n {
	case 4, 8:
		return &FloatType{n: n}, nil
	default:
		return nil, fmt.Errorf("%w: float width must be 4 or 8 bytes, got %d", ErrInvalidValue, n)
	}
}

func (t *FloatType) Size() int { return t.n }

func (t *FloatType) NullValue() any { return math.Inf(1) }

func (t *FloatType) Indexable() bool { return true }

func (t *FloatType) IsValid(v any) bool {
	if v == nil {
		return true
	}
	f, ok := toFloat64(v)
	if !ok {
		return false
	}
	// +Inf is the NULL sentinel; writers may not supply it as real data.
	return !math.IsInf(f, 1)
}

func (t *FloatType) Encode(v any) ([]byte, error) {
	var f float64
	if v == nil {
		f, _ = toFloat64(t.NullValue())
	} else {
		if !t.IsValid(v) {
			return nil, fmt.Errorf("%w: %v not encodable for %s", ErrInvalidValue, v, t)
		}
		f, _ = toFloat64(v)
	}

	buf := make([]byte, t.n)
	switch t.n {
	case 4:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(f)))
	case 8:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(f))
	}
	return buf, nil
}

func (t *FloatType) Decode(buf []byte) (any, error) {
	if len(buf) != t.n {
		return nil, fmt.Errorf("%w: expected %d bytes for %s, got %d", ErrInvalidBuffer, t.n, t, len(buf))
	}

	var f float64
	switch t.n {
	case 4:
		f = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
	case 8:
		f = math.Float64frombits(binary.LittleEndian.Uint64(buf))
	}

	if math.IsInf(f, 1) {
		return nil, nil
	}
	return f, nil
}

func (t *FloatType) Less(a, b any) bool {
	av, _ := toFloat64(a)
	bv, _ := toFloat64(b)
	return av < bv
}

func (t *FloatType) String() string { return fmt.Sprintf("Float%d", t.n) }
