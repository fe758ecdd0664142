package tree

// Iterate returns every payload address whose key satisfies the given
// bounds, in non-decreasing key order. A nil minValue/maxValue means
// unbounded on that side; minEqual/maxEqual control whether the
// respective bound is inclusive.
func (t *Tree) Iterate(minValue, maxValue any, minEqual, maxEqual bool) ([]uint64, error) {
	var out []uint64
	if err := t.iterate(rootAddress, minValue, maxValue, minEqual, maxEqual, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tree) iterate(address uint64, minValue, maxValue any, minEqual, maxEqual bool, out *[]uint64) error {
	b, err := t.readBlock(address)
	if err != nil {
		return err
	}
	if len(b.Keys) == 0 {
		return nil
	}

	first, last := b.Keys[0], b.Keys[len(b.Keys)-1]

	if maxValue != nil {
		pruned := t.keyType.Less(maxValue, first)
		if !maxEqual {
			pruned = pruned || t.equal(first, maxValue)
		}
		if pruned {
			return nil
		}
	}
	// An interior block's last key is only the lower bound of its last
	// child, so the min bound can prune leaves only.
	if minValue != nil && b.IsLeaf() {
		pruned := t.keyType.Less(last, minValue)
		if !minEqual {
			pruned = pruned || t.equal(last, minValue)
		}
		if pruned {
			return nil
		}
	}

	minOK := func(x any) bool {
		if minValue == nil {
			return true
		}
		if minEqual {
			return !t.keyType.Less(x, minValue)
		}
		return t.keyType.Less(minValue, x)
	}
	maxOK := func(x any) bool {
		if maxValue == nil {
			return true
		}
		if maxEqual {
			return !t.keyType.Less(maxValue, x)
		}
		return t.keyType.Less(x, maxValue)
	}

	for i, key := range b.Keys {
		addr := b.Addresses[i]
		if !b.IsLeaf() {
			// key bounds the child from below: it can rule the child
			// out against maxValue, while minValue is left to the child.
			if !maxOK(key) {
				continue
			}
			if err := t.iterate(addr, minValue, maxValue, minEqual, maxEqual, out); err != nil {
				return err
			}
			continue
		}
		if !minOK(key) || !maxOK(key) {
			continue
		}
		*out = append(*out, addr)
	}

	return nil
}

func (t *Tree) equal(a, b any) bool {
	return !t.keyType.Less(a, b) && !t.keyType.Less(b, a)
}
