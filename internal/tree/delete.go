package tree

import "github.com/warrenspe/nanodb/internal/block"

// Delete removes one entry matching key (the rightmost occurrence in the
// leaf that descent reaches), then reclaims every
// non-root block left empty by the removal, walking up the tree until
// it finds an ancestor that still holds keys (or reaches the root).
// Unlike Insert, no left-edge key is propagated upward: an interior
// block's first key may now undershoot its leftmost remaining child,
// which leaves lookups and range scans correct since it only needs to
// be a lower bound, not an exact one.
func (t *Tree) Delete(key any) error {
	b, err := t.descend(key, rootAddress, true)
	if err != nil {
		return err
	}

	if err := b.Delete(key); err != nil {
		return err
	}
	if err := t.writeBlock(b); err != nil {
		return err
	}

	for len(b.Keys) == 0 && b.Address != rootAddress {
		if err := t.markDeleted(b.Address); err != nil {
			return err
		}

		parent, err := t.readBlock(b.Parent)
		if err != nil {
			return err
		}
		if err := parent.DeleteAddress(b.Address); err != nil {
			return err
		}
		if err := t.writeBlock(parent); err != nil {
			return err
		}

		b = parent
	}

	if b.Address == rootAddress && len(b.Keys) == 0 && !b.IsLeaf() {
		empty := block.New(block.Leaf, rootAddress, t.keyType, t.maxKeys)
		return t.writeBlock(empty)
	}

	return nil
}
