package tree

import "github.com/warrenspe/nanodb/internal/block"

// split halves a full block's entries into a new sibling, growing its
// parent to hold a reference to the new sibling (splitting the parent
// first, recursively, if it has no room).
//
// Splitting the root is a special case: the root's address (0) must
// stay fixed as the tree's entry point, so the root's current contents
// are relocated to a freshly allocated address and a new, otherwise
// empty interior block takes over address 0.
func (t *Tree) split(b *block.Block) error {
	if b.Address == rootAddress {
		newAddr, err := t.allocateAddress()
		if err != nil {
			return err
		}

		wasLeaf := b.IsLeaf()
		b.Address = newAddr
		b.Parent = rootAddress

		newRoot := block.New(block.Interior, rootAddress, t.keyType, t.maxKeys)
		if err := newRoot.Add(b.Keys[0], b.Address); err != nil {
			return err
		}

		if err := t.writeBlock(newRoot); err != nil {
			return err
		}
		if err := t.writeBlock(b); err != nil {
			return err
		}
		if !wasLeaf {
			if err := t.reparentChildren(b); err != nil {
				return err
			}
		}
	}

	parent, err := t.readBlock(b.Parent)
	if err != nil {
		return err
	}

	if parent.Full() {
		if err := t.split(parent); err != nil {
			return err
		}
		// The split of our parent may have moved us to a different
		// parent; re-read both from scratch.
		b, err = t.readBlock(b.Address)
		if err != nil {
			return err
		}
		parent, err = t.readBlock(b.Parent)
		if err != nil {
			return err
		}
	}

	sibling, err := t.newBlock(b.Kind)
	if err != nil {
		return err
	}
	sibling.Parent = parent.Address

	mid := len(b.Keys) / 2
	sibling.Keys = append([]any(nil), b.Keys[mid:]...)
	sibling.Addresses = append([]uint64(nil), b.Addresses[mid:]...)
	b.Keys = b.Keys[:mid]
	b.Addresses = b.Addresses[:mid]

	if !b.IsLeaf() {
		if err := t.reparentChildren(sibling); err != nil {
			return err
		}
	}

	if err := parent.Add(sibling.Keys[0], sibling.Address); err != nil {
		return err
	}

	if err := t.writeBlock(b); err != nil {
		return err
	}
	if err := t.writeBlock(sibling); err != nil {
		return err
	}
	return t.writeBlock(parent)
}

// reparentChildren rewrites the Parent field of every block b.Addresses
// points at to b.Address. Only valid for interior b.
func (t *Tree) reparentChildren(b *block.Block) error {
	for _, addr := range b.Addresses {
		child, err := t.readBlock(addr)
		if err != nil {
			return err
		}
		child.Parent = b.Address
		if err := t.writeBlock(child); err != nil {
			return err
		}
	}
	return nil
}
