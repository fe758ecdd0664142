// Package nanodb implements a disk-backed B+ tree index over a single
// typed column: point lookup, range iteration, insert, and delete, all
// routed through a bounded write-back cache and a free-block sidecar
// that recycles addresses left by deletions.
//
// nanodb is the indexing core of a small relational engine; the table
// layer that would own one Index per indexed column, the query
// grammar, and connection objects are out of scope (see SPEC_FULL.md).
package nanodb

import (
	"path/filepath"

	"github.com/warrenspe/nanodb/internal/tree"
	"github.com/warrenspe/nanodb/internal/types"
)

// Index is a single B+ tree index over one column. It exclusively owns
// its index file, free-list sidecar, and in-memory cache; two Index
// values must never be opened over the same underlying files.
type Index struct {
	tr      *tree.Tree
	keyType types.Type
}

// Open opens (creating if necessary) an index keyed by keyType, with its
// index file and free-list sidecar under cfg.RootDir named from name
// (name + ".idx", name + ".free"). keyType must be Indexable (Varchar is
// not, per spec.md §4.1).
func Open(name string, keyType types.Type, cfg Config) (*Index, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(keyType.Size()); err != nil {
		return nil, err
	}

	path := filepath.Join(cfg.RootDir, name+".idx")
	freePath := filepath.Join(cfg.RootDir, name+".free")

	tr, err := tree.Open(path, freePath, keyType, int(cfg.IndexBlockSize), cfg.MaxDirtyBlocks)
	if err != nil {
		return nil, err
	}

	return &Index{tr: tr, keyType: keyType}, nil
}

// Close flushes every dirty block and releases the index's file
// descriptors.
func (idx *Index) Close() error {
	return idx.tr.Close()
}

// Insert adds (key, payloadAddr) to the index.
func (idx *Index) Insert(key any, payloadAddr uint64) error {
	return idx.tr.Insert(key, payloadAddr)
}

// Lookup returns the payload address stored for key, or an error
// wrapping block.ErrKeyNotFound if key is absent.
func (idx *Index) Lookup(key any) (uint64, error) {
	return idx.tr.Lookup(key)
}

// Delete removes the entry for key, or fails wrapping
// block.ErrKeyNotFound if key is absent.
func (idx *Index) Delete(key any) error {
	return idx.tr.Delete(key)
}

// Iterate returns every payload address whose key falls within
// [minValue, maxValue] (bounds are inclusive/exclusive per minEqual/
// maxEqual; a nil bound is unbounded on that side), in non-decreasing
// key order.
func (idx *Index) Iterate(minValue, maxValue any, minEqual, maxEqual bool) ([]uint64, error) {
	return idx.tr.Iterate(minValue, maxValue, minEqual, maxEqual)
}
