// Package block implements the fixed-size on-disk B+ tree block: header
// plus two parallel arrays of keys and addresses, and the per-block
// mutation operations (add/delete/deleteAddress/lookup) the tree walks
// drive.
package block

import "errors"

// ErrBlockOverflow is returned by Encode when a block's live contents
// cannot fit the configured block size.
var ErrBlockOverflow = errors.New("block overflow")

// ErrBlockMalformed is returned by Decode when a block's header is
// internally inconsistent or its declared key count exceeds what the
// block size allows.
var ErrBlockMalformed = errors.New("block malformed")

// ErrBlockFull is returned by Add when a block already holds maxKeys
// entries.
var ErrBlockFull = errors.New("block full")

// ErrKeyNotFound is returned by Lookup, Delete, and DeleteAddress when
// the requested key or address is not present.
var ErrKeyNotFound = errors.New("key not found")
