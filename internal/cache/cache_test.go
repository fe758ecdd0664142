package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warrenspe/nanodb/internal/block"
	"github.com/warrenspe/nanodb/internal/types"
)

const testBlockSize = 13 + 4*(1+8)

// fakeWriter records every WriteAt call, keyed by offset.
type fakeWriter struct {
	writes map[int64][]byte
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{writes: make(map[int64][]byte)}
}

func (w *fakeWriter) WriteAt(p []byte, off int64) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	w.writes[off] = cp
	return len(p), nil
}

func keyType(t *testing.T) types.Type {
	t.Helper()
	typ, err := types.NewInt(1)
	require.NoError(t, err)
	return typ
}

func leafAt(t *testing.T, addr uint64, key int64) *block.Block {
	t.Helper()
	b := block.New(block.Leaf, addr, keyType(t), block.MaxKeys(testBlockSize, 1))
	require.NoError(t, b.Add(key, addr+1000))
	return b
}

func TestCache_ContainsGetPut(t *testing.T) {
	w := newFakeWriter()
	c := New(w, testBlockSize, 10)

	b := leafAt(t, 0, 1)
	require.NoError(t, c.Put(b))

	require.True(t, c.Contains(0))
	got, err := c.Get(0)
	require.NoError(t, err)
	require.Same(t, b, got)

	_, err = c.Get(42)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotCached))
}

func TestCache_PutReplacesInPlace(t *testing.T) {
	w := newFakeWriter()
	c := New(w, testBlockSize, 10)

	require.NoError(t, c.Put(leafAt(t, 0, 1)))
	require.NoError(t, c.Put(leafAt(t, 1, 2)))

	replacement := leafAt(t, 0, 99)
	require.NoError(t, c.Put(replacement))

	got, err := c.Get(0)
	require.NoError(t, err)
	require.Same(t, replacement, got)
	require.Equal(t, 2, c.Len())
}

func TestCache_BoundedEvictionFlushesOldest(t *testing.T) {
	w := newFakeWriter()
	c := New(w, testBlockSize, 4)

	// Effective bound is maxDirty+1 (strict `>` check): 6 writes to
	// distinct addresses leave exactly one flushed.
	for i := uint64(0); i < 6; i++ {
		require.NoError(t, c.Put(leafAt(t, i*uint64(testBlockSize), 1)))
	}

	require.Equal(t, 5, c.Len())
	require.Len(t, w.writes, 1)
	require.False(t, c.Contains(0))
	require.True(t, c.Contains(uint64(testBlockSize)))
}

func TestCache_FlushAllEmptiesAndWritesEverything(t *testing.T) {
	w := newFakeWriter()
	c := New(w, testBlockSize, 4)

	for i := uint64(0); i < 6; i++ {
		require.NoError(t, c.Put(leafAt(t, i*uint64(testBlockSize), 1)))
	}

	require.NoError(t, c.FlushAll())
	require.Equal(t, 0, c.Len())
	require.Len(t, w.writes, 6)
}

func TestCache_TruncateDropsWithoutWriting(t *testing.T) {
	w := newFakeWriter()
	c := New(w, testBlockSize, 4)

	require.NoError(t, c.Put(leafAt(t, 0, 1)))
	c.Truncate()

	require.Equal(t, 0, c.Len())
	require.Empty(t, w.writes)
}

func TestCache_FlushMissingFails(t *testing.T) {
	w := newFakeWriter()
	c := New(w, testBlockSize, 4)

	err := c.Flush(5)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotCached))
}

func TestCache_MaxAddress(t *testing.T) {
	w := newFakeWriter()
	c := New(w, testBlockSize, 10)

	_, ok := c.MaxAddress()
	require.False(t, ok)

	require.NoError(t, c.Put(leafAt(t, 100, 1)))
	require.NoError(t, c.Put(leafAt(t, 300, 1)))
	require.NoError(t, c.Put(leafAt(t, 200, 1)))

	max, ok := c.MaxAddress()
	require.True(t, ok)
	require.Equal(t, uint64(300), max)
}
