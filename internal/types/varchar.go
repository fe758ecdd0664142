package types

import (
	"encoding/binary"
	"fmt"

	"github.com/warrenspe/nanodb/internal/filestore"
)

// VarcharType stores strings of unbounded length out-of-line in a
// filestore.Store sidecar; the 16 bytes inlined into a row or index key
// are an (offset, length) pair into that sidecar. It is not indexable.
type VarcharType struct {
	store *filestore.Store
}

// NewVarchar returns a Varchar type backed by store.
func NewVarchar(store *filestore.Store) *VarcharType {
	return &VarcharType{store: store}
}

func (t *VarcharType) Size() int { return 16 }

// NullValue is the (offset=0, length=0) pointer. Note this coincides with
// the pointer to a zero-length value appended at the very start of an
// empty sidecar file; this ambiguity is inherited from the source design
// and not resolved here.
func (t *VarcharType) NullValue() any { return "" }

func (t *VarcharType) Indexable() bool { return false }

func (t *VarcharType) IsValid(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(string)
	return ok
}

func (t *VarcharType) Encode(v any) ([]byte, error) {
	if v == nil {
		v = t.NullValue()
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a string for %s", ErrInvalidValue, v, t)
	}

	var offset, length uint64
	if s != "" {
		var err error
		offset, length, err = t.store.Append([]byte(s))
		if err != nil {
			return nil, err
		}
	}

	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], offset)
	binary.LittleEndian.PutUint64(buf[8:16], length)
	return buf, nil
}

func (t *VarcharType) Decode(buf []byte) (any, error) {
	if len(buf) != 16 {
		return nil, fmt.Errorf("%w: expected 16 bytes for %s, got %d", ErrInvalidBuffer, t, len(buf))
	}

	offset := binary.LittleEndian.Uint64(buf[0:8])
	length := binary.LittleEndian.Uint64(buf[8:16])
	if offset == 0 && length == 0 {
		return nil, nil
	}

	body, err := t.store.ReadAt(offset, length)
	if err != nil {
		return nil, err
	}
	return string(body), nil
}

// Less is defined for interface completeness; Varchar keys are rejected
// by the tree before ordering is ever needed.
func (t *VarcharType) Less(a, b any) bool {
	as, _ := a.(string)
	bs, _ := b.(string)
	return as < bs
}

func (t *VarcharType) String() string { return "Varchar" }
