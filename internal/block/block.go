package block

import "github.com/warrenspe/nanodb/internal/types"

// Kind discriminates a block's role: a leaf's addresses point into the
// table file, an interior block's addresses point to other blocks in the
// same index file.
type Kind int

const (
	Interior Kind = iota
	Leaf
)

// Block is a single node of the index: up to MaxKeys (key, address) pairs
// kept sorted non-decreasing by key, plus a parent address used to walk
// back up the tree.
type Block struct {
	Address uint64
	Parent  uint64
	Kind    Kind

	Keys      []any
	Addresses []uint64

	maxKeys int
	keyType types.Type
}

// New constructs an empty block of the given kind at address, able to
// hold up to maxKeys entries of keyType.
func New(kind Kind, address uint64, keyType types.Type, maxKeys int) *Block {
	return &Block{
		Address: address,
		Kind:    kind,
		keyType: keyType,
		maxKeys: maxKeys,
	}
}

// IsLeaf reports whether this block is a leaf.
func (b *Block) IsLeaf() bool { return b.Kind == Leaf }

// MaxKeys returns the capacity this block was constructed with.
func (b *Block) MaxKeys() int { return b.maxKeys }

// Full reports whether the block holds as many keys as it can.
func (b *Block) Full() bool { return len(b.Keys) >= b.maxKeys }

// Empty reports whether the block holds no keys.
func (b *Block) Empty() bool { return len(b.Keys) == 0 }
