package nanodb

import "errors"

// ErrInvalidConfig is returned by Open when a Config field fails its
// documented bounds (see Config).
var ErrInvalidConfig = errors.New("invalid config")
