package block

import (
	"fmt"
	"sort"
)

func (b *Block) equal(a, c any) bool {
	return !b.keyType.Less(a, c) && !b.keyType.Less(c, a)
}

// bisectLeft returns the first index i such that b.Keys[i] >= key.
func (b *Block) bisectLeft(key any) int {
	return sort.Search(len(b.Keys), func(i int) bool {
		return !b.keyType.Less(b.Keys[i], key)
	})
}

// bisectRight returns the first index i such that b.Keys[i] > key.
func (b *Block) bisectRight(key any) int {
	return sort.Search(len(b.Keys), func(i int) bool {
		return b.keyType.Less(key, b.Keys[i])
	})
}

// Add inserts (key, addr) at its sorted position. Fails with ErrBlockFull
// if the block is already at capacity.
func (b *Block) Add(key any, addr uint64) error {
	if b.Full() {
		return fmt.Errorf("%w: block %d already holds %d keys", ErrBlockFull, b.Address, b.maxKeys)
	}

	idx := b.bisectLeft(key)
	b.Keys = append(b.Keys, nil)
	copy(b.Keys[idx+1:], b.Keys[idx:])
	b.Keys[idx] = key

	b.Addresses = append(b.Addresses, 0)
	copy(b.Addresses[idx+1:], b.Addresses[idx:])
	b.Addresses[idx] = addr

	return nil
}

// Delete removes the rightmost occurrence of key and its paired address.
func (b *Block) Delete(key any) error {
	idx := b.bisectRight(key)
	if idx == 0 || !b.equal(b.Keys[idx-1], key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	i := idx - 1
	b.Keys = append(b.Keys[:i], b.Keys[i+1:]...)
	b.Addresses = append(b.Addresses[:i], b.Addresses[i+1:]...)
	return nil
}

// DeleteAddress removes addr and its paired key via linear search.
func (b *Block) DeleteAddress(addr uint64) error {
	for i, a := range b.Addresses {
		if a == addr {
			b.Keys = append(b.Keys[:i], b.Keys[i+1:]...)
			b.Addresses = append(b.Addresses[:i], b.Addresses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: address %d", ErrKeyNotFound, addr)
}

// Lookup returns the address paired with key: for a leaf, the exact
// match (the rightmost one if key repeats); for an interior block, the
// address of the child subtree key could reside in (interior keys are
// inclusive lower bounds).
func (b *Block) Lookup(key any) (uint64, error) {
	if b.IsLeaf() {
		idx := b.bisectRight(key)
		if idx == 0 || !b.equal(b.Keys[idx-1], key) {
			return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
		}
		return b.Addresses[idx-1], nil
	}

	idx := b.bisectRight(key)
	if idx == 0 {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return b.Addresses[idx-1], nil
}
