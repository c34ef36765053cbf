package codecerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesKind(t *testing.T) {
	err := New(InvalidMagic, "bad magic %q", "XXXX")
	require.EqualError(t, err, `bad magic "XXXX"`)
	require.Equal(t, InvalidMagic, err.Kind())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(GtfEof, cause, "while parsing")

	require.ErrorIs(t, err, cause)
	require.Equal(t, GtfEof, err.Kind())
}

func TestKindOfAndIs(t *testing.T) {
	err := New(UnsupportedFormat, "nope")

	k, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, UnsupportedFormat, k)

	require.True(t, Is(err, UnsupportedFormat))
	require.False(t, Is(err, InvalidSize))
}

func TestKindOfRejectsPlainErrors(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	require.False(t, ok)
}

func TestKindStringerCoversEveryKind(t *testing.T) {
	kinds := []Kind{
		InvalidMagic, InvalidSize, DX10Unsupported, DdsEof, GtfEof,
		GtfAlignment, GtfCount, DdsImageCount, UnsupportedHeader,
		UnsupportedFormat, OverflowBytes, FileTooLong, TextureNotFound,
	}
	for _, k := range kinds {
		require.NotEqual(t, "Unknown", k.String())
	}
}
