package tree

import (
	"fmt"
	"io"
	"os"

	"github.com/warrenspe/nanodb/internal/block"
	"github.com/warrenspe/nanodb/internal/cache"
	"github.com/warrenspe/nanodb/internal/freelist"
	"github.com/warrenspe/nanodb/internal/types"
	"github.com/warrenspe/nanodb/internal/utils"
)

// rootAddress is the address of the tree's root block. It is never
// reclaimed: a root-split relocates the old root's contents elsewhere
// and writes a fresh interior block at address 0.
const rootAddress = 0

// Tree is a single B+ tree index over one column, backed by a fixed-
// block-size file and a free-block sidecar, with writes deferred
// through a bounded cache.
type Tree struct {
	f         *os.File
	free      *freelist.List
	cache     *cache.Cache
	keyType   types.Type
	blockSize int
	maxKeys   int
}

// Open opens (creating if necessary) the index file at path and its
// free-list sidecar at freePath, keyed by keyType. It fails with
// ErrNotIndexable if keyType cannot key a tree, and writes an empty
// root leaf block if the index file is new.
func Open(path, freePath string, keyType types.Type, blockSize, maxDirtyBlocks int) (*Tree, error) {
	if !keyType.Indexable() {
		return nil, fmt.Errorf("%w: %s", ErrNotIndexable, keyType)
	}

	//nolint:gosec // G302/G304: index files are created by the caller, path is caller-controlled by design
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, utils.WrapError("index open failed", err)
	}

	free, err := freelist.Open(freePath)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	maxKeys := block.MaxKeys(blockSize, keyType.Size())
	t := &Tree{
		f:         f,
		free:      free,
		cache:     cache.New(f, blockSize, maxDirtyBlocks),
		keyType:   keyType,
		blockSize: blockSize,
		maxKeys:   maxKeys,
	}

	fi, err := f.Stat()
	if err != nil {
		_ = t.Close()
		return nil, utils.WrapError("index stat failed", err)
	}
	if fi.Size() == 0 {
		root := block.New(block.Leaf, rootAddress, keyType, maxKeys)
		buf, err := block.Encode(root, blockSize)
		if err != nil {
			_ = t.Close()
			return nil, err
		}
		if _, err := f.WriteAt(buf, rootAddress); err != nil {
			_ = t.Close()
			return nil, utils.WrapError("index root init failed", err)
		}
	}

	return t, nil
}

// Close flushes every dirty block and closes the index file and free
// list.
func (t *Tree) Close() error {
	if err := t.cache.FlushAll(); err != nil {
		return err
	}
	if err := t.free.Close(); err != nil {
		return err
	}
	return t.f.Close()
}

// readBlock returns the block at address, from the cache if present,
// otherwise read from the file and decoded.
func (t *Tree) readBlock(address uint64) (*block.Block, error) {
	if t.cache.Contains(address) {
		return t.cache.Get(address)
	}

	buf := make([]byte, t.blockSize)
	n, err := t.f.ReadAt(buf, int64(address))
	if err != nil && err != io.EOF {
		return nil, utils.WrapError("index read failed", err)
	}
	if n != t.blockSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAddress, address)
	}

	return block.Decode(buf, t.blockSize, t.keyType, address)
}

// writeBlock marks b dirty; the actual write is deferred to the cache.
func (t *Tree) writeBlock(b *block.Block) error {
	return t.cache.Put(b)
}

// markDeleted releases address for reuse. The root block's address is
// never released.
func (t *Tree) markDeleted(address uint64) error {
	if address == rootAddress {
		return nil
	}
	return t.free.Push(address)
}

// allocateAddress returns an address a new block may be written to,
// preferring a reclaimed one.
func (t *Tree) allocateAddress() (uint64, error) {
	addr, ok, err := t.free.Pop()
	if err != nil {
		return 0, err
	}
	if ok {
		return addr, nil
	}

	fi, err := t.f.Stat()
	if err != nil {
		return 0, utils.WrapError("index stat failed", err)
	}
	end := uint64(fi.Size())

	if max, ok := t.cache.MaxAddress(); ok {
		dirtyEnd := max + uint64(t.blockSize)
		if dirtyEnd > end {
			end = dirtyEnd
		}
	}

	return end, nil
}

// newBlock allocates a fresh, empty block of the given kind.
func (t *Tree) newBlock(kind block.Kind) (*block.Block, error) {
	addr, err := t.allocateAddress()
	if err != nil {
		return nil, err
	}
	return block.New(kind, addr, t.keyType, t.maxKeys), nil
}

// descend walks from startAddress down through interior blocks toward
// key. If requireLeaf is true, a KeyNotFound at any level propagates as
// an error; otherwise it returns the lowest interior block key could
// possibly reside in.
func (t *Tree) descend(key any, startAddress uint64, requireLeaf bool) (*block.Block, error) {
	b, err := t.readBlock(startAddress)
	if err != nil {
		return nil, err
	}

	for !b.IsLeaf() {
		nextAddr, err := b.Lookup(key)
		if err != nil {
			if requireLeaf {
				return nil, err
			}
			return b, nil
		}
		b, err = t.readBlock(nextAddr)
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}
