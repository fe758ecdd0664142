// Package freelist implements the persistent LIFO of block addresses
// freed by tree deletions, so a later split or insert can reuse them
// instead of growing the index file.
package freelist

import "errors"

// ErrCorruptFreeList is returned by Open when the sidecar file's size is
// not a multiple of 8 bytes.
var ErrCorruptFreeList = errors.New("corrupt free list")
