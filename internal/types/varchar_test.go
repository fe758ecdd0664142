package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warrenspe/nanodb/internal/filestore"
)

func TestVarchar_RoundTrip(t *testing.T) {
	store, err := filestore.Open(filepath.Join(t.TempDir(), "strings.db"))
	require.NoError(t, err)
	defer store.Close()

	typ := NewVarchar(store)
	require.False(t, typ.Indexable())

	buf, err := typ.Encode("hello world")
	require.NoError(t, err)
	require.Len(t, buf, 16)

	got, err := typ.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
}

func TestVarchar_MultipleAppendsDoNotOverlap(t *testing.T) {
	store, err := filestore.Open(filepath.Join(t.TempDir(), "strings.db"))
	require.NoError(t, err)
	defer store.Close()

	typ := NewVarchar(store)

	buf1, err := typ.Encode("first")
	require.NoError(t, err)
	buf2, err := typ.Encode("second")
	require.NoError(t, err)

	got1, err := typ.Decode(buf1)
	require.NoError(t, err)
	require.Equal(t, "first", got1)

	got2, err := typ.Decode(buf2)
	require.NoError(t, err)
	require.Equal(t, "second", got2)
}

func TestVarchar_NullRoundTrip(t *testing.T) {
	store, err := filestore.Open(filepath.Join(t.TempDir(), "strings.db"))
	require.NoError(t, err)
	defer store.Close()

	typ := NewVarchar(store)

	buf, err := typ.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 16), buf)

	got, err := typ.Decode(buf)
	require.NoError(t, err)
	require.Nil(t, got)
}
