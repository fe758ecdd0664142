package nanodb

import (
	"fmt"

	"github.com/c2h5oh/datasize"

	"github.com/warrenspe/nanodb/internal/block"
	"github.com/warrenspe/nanodb/internal/utils"
)

// Default bounds for Config, mirroring the enumerated configuration
// surface of the on-disk index core: a block size large enough to hold
// at least two keys of any supported type, and a cache bound of at
// least one dirty block.
const (
	// DefaultIndexBlockSize is used when Config.IndexBlockSize is zero.
	DefaultIndexBlockSize = 4 * datasize.KB

	// MinIndexBlockSize is the smallest accepted block size.
	MinIndexBlockSize = 256 * datasize.B

	// DefaultMaxDirtyBlocks is used when Config.MaxDirtyBlocks is zero.
	DefaultMaxDirtyBlocks = 16

	// DefaultRootDir is used when Config.RootDir is empty.
	DefaultRootDir = "."
)

// Config is the operator-facing configuration surface for an Index:
// block size, cache bound, and the directory its sidecar files live in.
// IndexBlockSize accepts a human-readable size ("4KB") the way erigon's
// own storage-engine configuration does, rather than a bare integer.
type Config struct {
	// IndexBlockSize is the fixed size of every on-disk block. Must be
	// large enough that the chosen key type can fit at least two keys
	// per block. Zero defaults to DefaultIndexBlockSize.
	IndexBlockSize datasize.ByteSize

	// MaxDirtyBlocks bounds the write-back cache; the cache's steady-
	// state population is MaxDirtyBlocks+1 (see internal/cache.Cache).
	// Zero defaults to DefaultMaxDirtyBlocks.
	MaxDirtyBlocks int

	// RootDir is the directory Open resolves relative sidecar paths
	// against. Empty defaults to DefaultRootDir.
	RootDir string
}

// withDefaults returns a copy of c with zero fields replaced by their
// documented defaults.
func (c Config) withDefaults() Config {
	if c.IndexBlockSize == 0 {
		c.IndexBlockSize = DefaultIndexBlockSize
	}
	if c.MaxDirtyBlocks == 0 {
		c.MaxDirtyBlocks = DefaultMaxDirtyBlocks
	}
	if c.RootDir == "" {
		c.RootDir = DefaultRootDir
	}
	return c
}

// validate checks c against its documented bounds for a key of keySize
// bytes, assuming
// defaults have already been applied.
func (c Config) validate(keySize int) error {
	if c.IndexBlockSize < MinIndexBlockSize || c.IndexBlockSize > utils.MaxIndexBlockSize {
		return fmt.Errorf("%w: IndexBlockSize %s out of range [%s, %s]",
			ErrInvalidConfig, c.IndexBlockSize, MinIndexBlockSize, datasize.ByteSize(utils.MaxIndexBlockSize))
	}
	if c.MaxDirtyBlocks < 1 {
		return fmt.Errorf("%w: MaxDirtyBlocks must be >= 1, got %d", ErrInvalidConfig, c.MaxDirtyBlocks)
	}

	maxKeys := block.MaxKeys(int(c.IndexBlockSize), keySize)
	if maxKeys < 2 {
		return fmt.Errorf("%w: IndexBlockSize %s too small for key size %d (maxKeys %d < 2)",
			ErrInvalidConfig, c.IndexBlockSize, keySize, maxKeys)
	}

	return nil
}
