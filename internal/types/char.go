package types

import (
	"bytes"
	"fmt"
)

// CharType is a fixed-length string of up to 256 bytes, left-padded with
// 0x00 to its declared width on encode. An all-zero buffer decodes to the
// absent value.
type CharType struct {
	n int
}

// NewChar returns the Char(n) type for 1 <= n <= 256.
func NewChar(n int) (*CharType, error) {
	if n < 1 || n > 256 {
		return nil, fmt.Errorf("%w: char width must be 1-256, got %d", ErrInvalidValue, n)
	}
	return &CharType{n: n}, nil
}

func (t *CharType) Size() int { return t.n }

func (t *CharType) NullValue() any { return "" }

func (t *CharType) Indexable() bool { return true }

func (t *CharType) toBytes(v any) ([]byte, bool) {
	switch s := v.(type) {
	case string:
		return []byte(s), true
	case []byte:
		return s, true
	default:
		return nil, false
	}
}

func (t *CharType) IsValid(v any) bool {
	if v == nil {
		return true
	}
	b, ok := t.toBytes(v)
	if !ok {
		return false
	}
	return len(b) <= t.n
}

func (t *CharType) Encode(v any) ([]byte, error) {
	if v == nil {
		v = t.NullValue()
	}
	if !t.IsValid(v) {
		return nil, fmt.Errorf("%w: %v not encodable for %s", ErrInvalidValue, v, t)
	}
	b, _ := t.toBytes(v)

	buf := make([]byte, t.n)
	copy(buf[t.n-len(b):], b)
	return buf, nil
}

func (t *CharType) Decode(buf []byte) (any, error) {
	if len(buf) != t.n {
		return nil, fmt.Errorf("%w: expected %d bytes for %s, got %d", ErrInvalidBuffer, t.n, t, len(buf))
	}

	trimmed := bytes.TrimLeft(buf, "\x00")
	if len(trimmed) == 0 {
		return nil, nil
	}
	return string(trimmed), nil
}

// Less compares the zero-padded encoded form lexicographically, matching
// the on-disk sort order of keys of this type.
func (t *CharType) Less(a, b any) bool {
	ab, errA := t.Encode(a)
	bb, errB := t.Encode(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Compare(ab, bb) < 0
}

func (t *CharType) String() string { return fmt.Sprintf("Char%d", t.n) }
