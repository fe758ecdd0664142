package tree

import (
	"errors"

	"github.com/warrenspe/nanodb/internal/block"
)

// Lookup returns the payload address stored for key, or block.ErrKeyNotFound
// if key is absent.
func (t *Tree) Lookup(key any) (uint64, error) {
	leaf, err := t.descend(key, rootAddress, true)
	if err != nil {
		return 0, err
	}
	return leaf.Lookup(key)
}

// LookupCondition returns the payload addresses matching every key in
// items (missing items are silently skipped) concatenated with the
// range [minValue, maxValue].
func (t *Tree) LookupCondition(items []any, minValue, maxValue any, minEqual, maxEqual bool) ([]uint64, error) {
	var out []uint64

	for _, item := range items {
		addr, err := t.Lookup(item)
		if err != nil {
			if errors.Is(err, block.ErrKeyNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, addr)
	}

	rangeAddrs, err := t.Iterate(minValue, maxValue, minEqual, maxEqual)
	if err != nil {
		return nil, err
	}
	out = append(out, rangeAddrs...)

	return out, nil
}
