// Package tree implements the on-disk B+ tree: descent, insertion with
// left-edge key propagation, deletion with empty-block reclamation, and
// range iteration, all driven through a bounded cache and a free-block
// sidecar.
package tree

import "errors"

// ErrInvalidAddress is returned when a block is requested at an address
// the backing file does not contain.
var ErrInvalidAddress = errors.New("invalid block address")

// ErrNotIndexable is returned by Open when the key type cannot key a
// B+ tree (see types.Type.Indexable).
var ErrNotIndexable = errors.New("type is not indexable")
