package nanodb

import (
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	require.Equal(t, DefaultIndexBlockSize, cfg.IndexBlockSize)
	require.Equal(t, DefaultMaxDirtyBlocks, cfg.MaxDirtyBlocks)
	require.Equal(t, DefaultRootDir, cfg.RootDir)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{IndexBlockSize: 4 * datasize.KB, MaxDirtyBlocks: 8}
	require.NoError(t, cfg.validate(4))

	cfg = Config{IndexBlockSize: 64 * datasize.B, MaxDirtyBlocks: 8}
	require.ErrorIs(t, cfg.validate(4), ErrInvalidConfig)

	cfg = Config{IndexBlockSize: 4 * datasize.KB, MaxDirtyBlocks: 0}
	require.ErrorIs(t, cfg.validate(4), ErrInvalidConfig)
}
