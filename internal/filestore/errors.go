package filestore

import "errors"

// ErrTooLarge is returned by Append when a body exceeds the configured
// maximum varchar size.
var ErrTooLarge = errors.New("varchar body too large")
