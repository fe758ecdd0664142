// Package types implements the fixed-width scalar codecs (signed/unsigned
// integers, floats, fixed and variable-length strings) used to key and
// store values in a nanodb index.
package types

import "errors"

// ErrInvalidValue is returned by Encode when a value fails its type's
// validity predicate.
var ErrInvalidValue = errors.New("invalid value")

// ErrInvalidBuffer is returned by Decode when the input is not exactly
// Size() bytes long.
var ErrInvalidBuffer = errors.New("invalid buffer")
