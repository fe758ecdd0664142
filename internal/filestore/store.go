// Package filestore implements the append-only sidecar byte store backing
// variable-length string values: every write lands at the current
// end-of-file and is never reclaimed, even if the logical value it backs
// is later overwritten or deleted.
package filestore

import (
	"fmt"
	"os"

	"github.com/warrenspe/nanodb/internal/utils"
)

// Store is an append-only byte-addressable file. Append returns the
// (offset, length) pair needed to later retrieve what was written;
// ReadAt retrieves it.
type Store struct {
	f *os.File
}

// Open opens or creates the sidecar file at path for appending and
// random-access reads.
func Open(path string) (*Store, error) {
	//nolint:gosec // G302/G304: sidecar files are created by the index owner, path is caller-controlled by design
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, utils.WrapError("filestore open failed", err)
	}
	return &Store{f: f}, nil
}

// Append writes b to the end of the store and returns the offset and
// length needed to read it back. No in-place update or reclamation is
// ever performed; repeated writes for the same logical value leak space.
func (s *Store) Append(b []byte) (offset, length uint64, err error) {
	if uint64(len(b)) > utils.MaxVarcharSize {
		return 0, 0, fmt.Errorf("%w: varchar body of %d bytes exceeds maximum %d", ErrTooLarge, len(b), utils.MaxVarcharSize)
	}

	fi, err := s.f.Stat()
	if err != nil {
		return 0, 0, utils.WrapError("filestore stat failed", err)
	}
	offset = uint64(fi.Size())

	n, err := s.f.WriteAt(b, int64(offset))
	if err != nil {
		return 0, 0, utils.WrapError("filestore append failed", err)
	}
	return offset, uint64(n), nil
}

// ReadAt returns the length bytes stored at offset.
func (s *Store) ReadAt(offset, length uint64) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := s.f.ReadAt(buf, int64(offset)); err != nil {
		return nil, utils.WrapError("filestore read failed", err)
	}
	return buf, nil
}

// Close flushes and closes the underlying file.
func (s *Store) Close() error {
	return s.f.Close()
}
