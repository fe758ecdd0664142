package block

import (
	"encoding/binary"
	"fmt"

	"github.com/warrenspe/nanodb/internal/types"
)

// headerSize is isLeaf(1) + parentAddress(8) + numKeys(2) + numAddresses(2).
const headerSize = 13

const addressSize = 8

// MaxKeys derives the number of (key, address) slots a block of blockSize
// bytes can hold for a key of keySize bytes.
func MaxKeys(blockSize, keySize int) int {
	return (blockSize - headerSize) / (keySize + addressSize)
}

// Encode serializes b into a buffer of exactly blockSize bytes. numKeys
// and numAddresses are written identically: the header carries both
// fields for on-disk compatibility, but a Block only ever holds one
// count in memory (see Decode).
func Encode(b *Block, blockSize int) ([]byte, error) {
	k := b.keyType.Size()
	maxKeys := MaxKeys(blockSize, k)

	if len(b.Keys) != len(b.Addresses) {
		return nil, fmt.Errorf("%w: %d keys but %d addresses", ErrBlockOverflow, len(b.Keys), len(b.Addresses))
	}
	if len(b.Keys) > maxKeys {
		return nil, fmt.Errorf("%w: %d keys exceeds capacity %d", ErrBlockOverflow, len(b.Keys), maxKeys)
	}

	buf := make([]byte, blockSize)
	if b.IsLeaf() {
		buf[0] = 1
	}
	binary.LittleEndian.PutUint64(buf[1:9], b.Parent)

	count := uint16(len(b.Keys))
	binary.LittleEndian.PutUint16(buf[9:11], count)
	binary.LittleEndian.PutUint16(buf[11:13], count)

	keyOff := headerSize
	addrOff := headerSize + maxKeys*k

	for i, key := range b.Keys {
		kb, err := b.keyType.Encode(key)
		if err != nil {
			return nil, err
		}
		copy(buf[keyOff+i*k:keyOff+(i+1)*k], kb)
	}
	for i, addr := range b.Addresses {
		binary.LittleEndian.PutUint64(buf[addrOff+i*addressSize:addrOff+(i+1)*addressSize], addr)
	}

	return buf, nil
}

// Decode reads a block of blockSize bytes at address, keyed by keyType.
// It rejects any buffer whose numKeys and numAddresses header fields
// disagree, or whose declared count exceeds the block's capacity.
func Decode(buf []byte, blockSize int, keyType types.Type, address uint64) (*Block, error) {
	if len(buf) != blockSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrBlockMalformed, blockSize, len(buf))
	}

	k := keyType.Size()
	maxKeys := MaxKeys(blockSize, k)

	kind := Discriminate(buf)
	parent := binary.LittleEndian.Uint64(buf[1:9])
	numKeys := binary.LittleEndian.Uint16(buf[9:11])
	numAddresses := binary.LittleEndian.Uint16(buf[11:13])

	if numKeys != numAddresses {
		return nil, fmt.Errorf("%w: numKeys %d != numAddresses %d at %d", ErrBlockMalformed, numKeys, numAddresses, address)
	}
	if int(numKeys) > maxKeys {
		return nil, fmt.Errorf("%w: numKeys %d exceeds capacity %d at %d", ErrBlockMalformed, numKeys, maxKeys, address)
	}

	keyOff := headerSize
	addrOff := headerSize + maxKeys*k

	b := New(kind, address, keyType, maxKeys)
	b.Parent = parent
	b.Keys = make([]any, numKeys)
	b.Addresses = make([]uint64, numKeys)

	for i := 0; i < int(numKeys); i++ {
		v, err := keyType.Decode(buf[keyOff+i*k : keyOff+(i+1)*k])
		if err != nil {
			return nil, fmt.Errorf("%w: key %d at %d: %v", ErrBlockMalformed, i, address, err)
		}
		b.Keys[i] = v
		b.Addresses[i] = binary.LittleEndian.Uint64(buf[addrOff+i*addressSize : addrOff+(i+1)*addressSize])
	}

	return b, nil
}

// Discriminate reports whether an encoded block's first byte marks it
// leaf or interior, without decoding the rest of the buffer.
func Discriminate(buf []byte) Kind {
	if len(buf) > 0 && buf[0] != 0 {
		return Leaf
	}
	return Interior
}
