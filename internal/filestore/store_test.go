package filestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_AppendReadAt(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "sidecar.db"))
	require.NoError(t, err)
	defer s.Close()

	off1, len1, err := s.Append([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, uint64(0), off1)
	require.Equal(t, uint64(5), len1)

	off2, len2, err := s.Append([]byte("world!"))
	require.NoError(t, err)
	require.Equal(t, uint64(5), off2)
	require.Equal(t, uint64(6), len2)

	got, err := s.ReadAt(off1, len1)
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))

	got, err = s.ReadAt(off2, len2)
	require.NoError(t, err)
	require.Equal(t, "world!", string(got))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sidecar.db")

	s, err := Open(path)
	require.NoError(t, err)
	off, length, err := s.Append([]byte("persisted"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ReadAt(off, length)
	require.NoError(t, err)
	require.Equal(t, "persisted", string(got))
}

func TestStore_RejectsOversizeBody(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "sidecar.db"))
	require.NoError(t, err)
	defer s.Close()

	_, _, err = s.Append(make([]byte, 64*1024*1024+1))
	require.Error(t, err)
}
