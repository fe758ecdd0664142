package freelist

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/warrenspe/nanodb/internal/utils"
)

const wordSize = 8

// List is a LIFO stack of block addresses persisted as the entire
// contents of a sidecar file: push appends a word, pop reads and
// truncates the last word. The caller must not push the same address
// twice without an intervening pop.
type List struct {
	f *os.File
}

// Open opens or creates the free-list sidecar at path. It fails with
// ErrCorruptFreeList if the existing file's size is not a multiple of 8.
func Open(path string) (*List, error) {
	//nolint:gosec // G302/G304: sidecar files are created by the index owner, path is caller-controlled by design
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, utils.WrapError("free list open failed", err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, utils.WrapError("free list stat failed", err)
	}
	if fi.Size()%wordSize != 0 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: size %d not a multiple of %d", ErrCorruptFreeList, fi.Size(), wordSize)
	}

	return &List{f: f}, nil
}

// Push appends addr to the stack.
func (l *List) Push(addr uint64) error {
	buf := make([]byte, wordSize)
	binary.LittleEndian.PutUint64(buf, addr)

	fi, err := l.f.Stat()
	if err != nil {
		return utils.WrapError("free list stat failed", err)
	}
	if _, err := l.f.WriteAt(buf, fi.Size()); err != nil {
		return utils.WrapError("free list push failed", err)
	}
	return nil
}

// Pop removes and returns the top of the stack. ok is false if the list
// is empty.
func (l *List) Pop() (addr uint64, ok bool, err error) {
	fi, err := l.f.Stat()
	if err != nil {
		return 0, false, utils.WrapError("free list stat failed", err)
	}
	if fi.Size() == 0 {
		return 0, false, nil
	}

	top := fi.Size() - wordSize
	buf := make([]byte, wordSize)
	if _, err := l.f.ReadAt(buf, top); err != nil {
		return 0, false, utils.WrapError("free list pop read failed", err)
	}
	if err := l.f.Truncate(top); err != nil {
		return 0, false, utils.WrapError("free list pop truncate failed", err)
	}

	return binary.LittleEndian.Uint64(buf), true, nil
}

// Truncate empties the free list.
func (l *List) Truncate() error {
	if err := l.f.Truncate(0); err != nil {
		return utils.WrapError("free list truncate failed", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (l *List) Close() error {
	return l.f.Close()
}
