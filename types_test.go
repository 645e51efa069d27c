package bencode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessorsMatchingVariant(t *testing.T) {
	val, _, err := Decode([]byte("d3:numi42e3:str4:spam4:listl1:aee"))
	require.NoError(t, err)

	dict, ok := AsDict(val)
	require.True(t, ok)

	n, ok := AsInt(dict["num"])
	require.True(t, ok)
	require.Equal(t, int64(42), n)

	b, ok := AsBytes(dict["str"])
	require.True(t, ok)
	require.Equal(t, []byte("spam"), b)

	list, ok := AsList(dict["list"])
	require.True(t, ok)
	require.Len(t, list, 1)
}

func TestAccessorsWrongVariant(t *testing.T) {
	var v Bvalue = BString("spam")

	_, ok := AsInt(v)
	require.False(t, ok)

	_, ok = AsList(v)
	require.False(t, ok)

	_, ok = AsDict(v)
	require.False(t, ok)

	_, ok = AsBytes(BInt(1))
	require.False(t, ok)
}

func TestAccessorsNilValue(t *testing.T) {
	_, ok := AsInt(nil)
	require.False(t, ok)

	_, err := AsString(nil)
	require.Error(t, err)
}

func TestAsString(t *testing.T) {
	s, err := AsString(BString("Hello World!"))
	require.NoError(t, err)
	require.Equal(t, "Hello World!", s)
}

func TestAsStringInvalidUTF8(t *testing.T) {
	_, err := AsString(BString([]byte{0xff, 0xfe}))
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestAsStringWrongVariant(t *testing.T) {
	_, err := AsString(BInt(7))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidUTF8)
}
