package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint1_SentinelBytes(t *testing.T) {
	typ, err := NewUint(1)
	require.NoError(t, err)

	buf, err := typ.Encode(uint64(0))
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, buf)

	buf, err = typ.Encode(uint64(254))
	require.NoError(t, err)
	require.Equal(t, []byte{0xFE}, buf)

	buf, err = typ.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, buf)

	_, err = typ.Encode(uint64(255))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidValue))
}

func TestUint_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		typ, err := NewUint(n)
		require.NoError(t, err)

		for _, v := range []uint64{0, 1, typ.maxVal()} {
			buf, err := typ.Encode(v)
			require.NoError(t, err)

			got, err := typ.Decode(buf)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}

func TestUint_NullRoundTrip(t *testing.T) {
	typ, err := NewUint(2)
	require.NoError(t, err)

	buf, err := typ.Encode(nil)
	require.NoError(t, err)

	got, err := typ.Decode(buf)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUint_DecodeRejectsWrongLength(t *testing.T) {
	typ, err := NewUint(8)
	require.NoError(t, err)

	_, err = typ.Decode(make([]byte, 4))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidBuffer))
}
