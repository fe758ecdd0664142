package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		typ, err := NewInt(n)
		require.NoError(t, err)

		for _, v := range []int64{0, 1, -1, typ.maxVal(), typ.minVal()} {
			buf, err := typ.Encode(v)
			require.NoError(t, err)
			require.Len(t, buf, n)

			got, err := typ.Decode(buf)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}

func TestInt_NullRoundTrip(t *testing.T) {
	typ, err := NewInt(1)
	require.NoError(t, err)

	buf, err := typ.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x80}, buf) // -128, one below -127

	got, err := typ.Decode(buf)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestInt1_ExactBytes(t *testing.T) {
	typ, err := NewInt(1)
	require.NoError(t, err)

	require.True(t, typ.IsValid(int64(127)))
	require.True(t, typ.IsValid(int64(-127)))
	require.False(t, typ.IsValid(int64(-128))) // reserved for NULL
	require.False(t, typ.IsValid(int64(128)))

	buf, err := typ.Encode(int64(-127))
	require.NoError(t, err)
	require.Equal(t, []byte{0x81}, buf)
}

func TestInt_EncodeRejectsOutOfRange(t *testing.T) {
	typ, err := NewInt(1)
	require.NoError(t, err)

	_, err = typ.Encode(int64(-128))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidValue))
}

func TestInt_DecodeRejectsWrongLength(t *testing.T) {
	typ, err := NewInt(4)
	require.NoError(t, err)

	_, err = typ.Decode([]byte{1, 2, 3})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidBuffer))
}

func TestInt_InvalidWidth(t *testing.T) {
	_, err := NewInt(3)
	require.Error(t, err)
}

func TestInt_Less(t *testing.T) {
	typ, err := NewInt(4)
	require.NoError(t, err)

	require.True(t, typ.Less(int64(1), int64(2)))
	require.False(t, typ.Less(int64(2), int64(1)))
}
