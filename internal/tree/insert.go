package tree

import "github.com/warrenspe/nanodb/internal/block"

// Insert adds (key, payload) to the tree.
//
// A key landing at the left edge of a leaf requires every ancestor
// whose first key equals the leaf's old first key to be rewritten with
// the new one, since an interior key is an inclusive lower bound on its
// subtree (left-edge propagation). Deletion performs no such
// propagation: an interior block's lower bound is allowed to undershoot
// once its leftmost leaf is removed, which is harmless since lookups
// only ever need a bound that is <= every key it covers.
func (t *Tree) Insert(key any, payload uint64) error {
	b, err := t.descend(key, rootAddress, false)
	if err != nil {
		return err
	}

	if !b.IsLeaf() {
		left, err := t.readBlock(b.Addresses[0])
		if err != nil {
			return err
		}
		if left.IsLeaf() && !left.Full() {
			prevKey := left.Keys[0]
			if err := left.Add(key, payload); err != nil {
				return err
			}
			if err := t.writeBlock(left); err != nil {
				return err
			}
			return t.updateParentsKeys(left, prevKey, key)
		}
	}

	if b.Full() {
		if err := t.split(b); err != nil {
			return err
		}
		b, err = t.descend(key, rootAddress, false)
		if err != nil {
			return err
		}
	}

	if !b.IsLeaf() {
		return t.insertNewLeaf(b, key, payload)
	}

	if err := b.Add(key, payload); err != nil {
		return err
	}
	return t.writeBlock(b)
}

// insertNewLeaf adds a brand new single-entry leaf as a child of the
// interior block parent, for a key that falls below every existing
// child's range.
func (t *Tree) insertNewLeaf(parent *block.Block, key any, payload uint64) error {
	prevKey := parent.Keys[0]

	leaf, err := t.newBlock(block.Leaf)
	if err != nil {
		return err
	}
	leaf.Parent = parent.Address
	if err := leaf.Add(key, payload); err != nil {
		return err
	}
	if err := parent.Add(key, leaf.Address); err != nil {
		return err
	}

	if err := t.writeBlock(leaf); err != nil {
		return err
	}
	if err := t.writeBlock(parent); err != nil {
		return err
	}

	if !t.equal(parent.Keys[0], prevKey) {
		return t.updateParentsKeys(parent, prevKey, parent.Keys[0])
	}
	return nil
}

// updateParentsKeys rewrites the key pointing at b in b's parent (and
// recursively up the tree) from oldKey to newKey, when b was the
// leftmost child recorded under oldKey. The root's parent field points
// at itself, so once the rewrite reaches the root the comparison reads
// the already-updated key and recursion stops.
func (t *Tree) updateParentsKeys(b *block.Block, oldKey, newKey any) error {
	parent, err := t.readBlock(b.Parent)
	if err != nil {
		return err
	}
	if len(parent.Keys) == 0 || !t.equal(parent.Keys[0], oldKey) {
		return nil
	}

	if err := parent.DeleteAddress(b.Address); err != nil {
		return err
	}
	if err := parent.Add(newKey, b.Address); err != nil {
		return err
	}
	if err := t.writeBlock(parent); err != nil {
		return err
	}

	return t.updateParentsKeys(parent, oldKey, newKey)
}
