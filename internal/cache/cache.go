package cache

import (
	"container/list"
	"fmt"

	"github.com/warrenspe/nanodb/internal/block"
)

// WriterAt is the minimal file-write interface the cache needs to flush a
// block; satisfied by *os.File.
type WriterAt interface {
	WriteAt(p []byte, off int64) (n int, err error)
}

type entry struct {
	addr  uint64
	block *block.Block
}

// Cache is an insertion-ordered map of address to Block, bounded by
// maxDirtyBlocks. Every entry is dirty; there is no clean/shared mode,
// and put never performs I/O itself — only eviction and explicit Flush
// do.
//
// The bound check mirrors the source's strict `>` comparison rather than
// `>=`: Put only evicts once the cache already holds more than
// maxDirtyBlocks entries, so steady-state population is maxDirtyBlocks+1.
type Cache struct {
	order     *list.List // front = least-recently-inserted, back = most-recent
	elems     map[uint64]*list.Element
	maxDirty  int
	blockSize int
	w         WriterAt
}

// New returns a cache bounded at maxDirty dirty blocks (effective bound
// maxDirty+1, see Cache doc), flushing to w using blockSize-sized
// encodings.
func New(w WriterAt, blockSize, maxDirty int) *Cache {
	return &Cache{
		order:     list.New(),
		elems:     make(map[uint64]*list.Element),
		maxDirty:  maxDirty,
		blockSize: blockSize,
		w:         w,
	}
}

// Contains reports whether addr is currently cached.
func (c *Cache) Contains(addr uint64) bool {
	_, ok := c.elems[addr]
	return ok
}

// Len returns the number of cached blocks.
func (c *Cache) Len() int { return c.order.Len() }

// Get returns the cached block at addr, moving it to the most-recently
// used position. Fails with ErrNotCached if absent.
func (c *Cache) Get(addr uint64) (*block.Block, error) {
	el, ok := c.elems[addr]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotCached, addr)
	}
	c.order.MoveToBack(el)
	return el.Value.(*entry).block, nil
}

// Put inserts or replaces b. If b.Address is already cached, the entry
// is replaced in place, preserving its existing position in the
// insertion order. Otherwise, if the cache already holds more than
// maxDirty entries, the single oldest entry is flushed before b is
// appended at the most-recent position.
func (c *Cache) Put(b *block.Block) error {
	if el, ok := c.elems[b.Address]; ok {
		el.Value.(*entry).block = b
		return nil
	}

	if c.order.Len() > c.maxDirty {
		oldest := c.order.Front()
		if err := c.flushElement(oldest); err != nil {
			return err
		}
	}

	el := c.order.PushBack(&entry{addr: b.Address, block: b})
	c.elems[b.Address] = el
	return nil
}

// Flush encodes and writes the entry at addr to the backing file, then
// removes it from the cache. Fails with ErrNotCached if absent.
func (c *Cache) Flush(addr uint64) error {
	el, ok := c.elems[addr]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotCached, addr)
	}
	return c.flushElement(el)
}

func (c *Cache) flushElement(el *list.Element) error {
	e := el.Value.(*entry)

	buf, err := block.Encode(e.block, c.blockSize)
	if err != nil {
		return err
	}
	if _, err := c.w.WriteAt(buf, int64(e.addr)); err != nil {
		return err
	}

	c.order.Remove(el)
	delete(c.elems, e.addr)
	return nil
}

// FlushAll flushes every entry, in insertion order.
func (c *Cache) FlushAll() error {
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if err := c.flushElement(el); err != nil {
			return err
		}
		el = next
	}
	return nil
}

// Truncate drops every entry without writing it. Intended only for
// rollback-style discards.
func (c *Cache) Truncate() {
	c.order = list.New()
	c.elems = make(map[uint64]*list.Element)
}

// MaxAddress returns the largest address currently cached, and false if
// the cache is empty.
func (c *Cache) MaxAddress() (uint64, bool) {
	if len(c.elems) == 0 {
		return 0, false
	}
	var max uint64
	first := true
	for addr := range c.elems {
		if first || addr > max {
			max = addr
			first = false
		}
	}
	return max, true
}
