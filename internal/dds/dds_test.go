package dds

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mogaika/ddsgtf/internal/codecerr"
)

func buildHeader() Header {
	h := Header{
		Size:   declaredSize,
		Flags:  FlagCaps | FlagWidth | FlagHeight | FlagPixelFormat,
		Width:  4,
		Height: 4,
		Caps1:  Caps1Texture,
	}
	h.PixelFormat = PixelFormat{
		Size:   declaredPfSize,
		Flags:  PFFourCC,
		FourCC: Encode4CC("DXT1"),
	}
	return h
}

func TestWriteParseRoundTrip(t *testing.T) {
	h := buildHeader()
	data := Write(h)
	require.Len(t, data, HeaderSize)

	got, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, h.Width, got.Width)
	require.Equal(t, h.Height, got.Height)
	require.Equal(t, "DXT1", got.PixelFormat.FourCCString())
}

func TestParseRejectsBadMagic(t *testing.T) {
	data := Write(buildHeader())
	data[0] = 'X'

	_, err := Parse(data)
	require.Error(t, err)
	require.Equal(t, codecerr.InvalidMagic, mustKind(t, err))
}

func TestParseRejectsShortBuffer(t *testing.T) {
	_, err := Parse(make([]byte, 10))
	require.Error(t, err)
	require.Equal(t, codecerr.DdsEof, mustKind(t, err))
}

func TestParseRejectsDX10(t *testing.T) {
	h := buildHeader()
	h.PixelFormat.FourCC = Encode4CC("DX10")
	data := Write(h)

	_, err := Parse(data)
	require.Error(t, err)
	require.Equal(t, codecerr.DX10Unsupported, mustKind(t, err))
}

func TestEncode4CCNumericIsLittleEndian(t *testing.T) {
	raw := Encode4CCNumeric(111)
	pf := PixelFormat{Flags: PFFourCC, FourCC: raw}
	require.Equal(t, byte(111), pf.FourCC[0])
	require.Equal(t, byte(0), pf.FourCC[1])
}

func mustKind(t *testing.T, err error) codecerr.Kind {
	t.Helper()
	k, ok := codecerr.KindOf(err)
	require.True(t, ok, "expected a *codecerr.Error, got %T", err)
	return k
}
