// Package cache implements the bounded write-back block cache sitting
// between tree operations and the index file: an insertion-ordered map
// of dirty blocks that defers every write until eviction or an explicit
// flush.
package cache

import "errors"

// ErrNotCached is returned by Get and Flush when the requested address
// is not present in the cache.
var ErrNotCached = errors.New("not cached")
