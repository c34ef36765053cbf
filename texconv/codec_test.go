package texconv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mogaika/ddsgtf/internal/codecerr"
	"github.com/mogaika/ddsgtf/internal/dds"
	"github.com/mogaika/ddsgtf/internal/gtf"
	"github.com/mogaika/ddsgtf/internal/gtfformat"
)

func buildDxtDds(t *testing.T, fourcc string, w, h, depth, mipmap uint32, volume bool, payload []byte) []byte {
	t.Helper()

	h0 := dds.Header{
		Flags:             dds.FlagCaps | dds.FlagHeight | dds.FlagWidth | dds.FlagPixelFormat | dds.FlagLinearSize,
		Height:            h,
		Width:             w,
		PitchOrLinearSize: uint32(len(payload)),
		Caps1:             dds.Caps1Texture,
	}
	h0.PixelFormat = dds.PixelFormat{Flags: dds.PFFourCC, FourCC: dds.Encode4CC(fourcc)}
	if volume {
		h0.Flags |= dds.FlagDepth
		h0.Depth = depth
		h0.Caps2 |= dds.Caps2Volume
	}
	if mipmap > 1 {
		h0.Flags |= dds.FlagMipMapCount
		h0.MipMapCount = mipmap
		h0.Caps1 |= dds.Caps1MipMap | dds.Caps1Complex
	}

	out := append(dds.Write(h0), payload...)
	return out
}

func TestDecodeDDS_MinimalDxt1_1x1(t *testing.T) {
	payload := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	input := buildDxtDds(t, "DXT1", 1, 1, 1, 1, false, payload)

	out, err := DecodeDDS(input, Options{})
	require.NoError(t, err)
	require.Len(t, out, 256)

	require.Equal(t, uint32(0x02020000), beUint32(out[0:4]))
	require.Equal(t, uint32(128), beUint32(out[4:8]))
	require.Equal(t, uint32(1), beUint32(out[8:12]))

	// attribute 0: id, offset_to_tex, texture_size
	require.Equal(t, uint32(0), beUint32(out[12:16]))
	require.Equal(t, uint32(128), beUint32(out[16:20]))
	require.Equal(t, uint32(8), beUint32(out[20:24]))

	info := out[28:60]
	require.Equal(t, byte(gtfformat.CompressedDxt1), info[0])
	require.Equal(t, byte(1), info[1]) // mipmap

	require.Equal(t, payload, out[128:136])
	for _, b := range out[136:256] {
		require.Zero(t, b)
	}
}

func TestDecodeDDS_Dxt5RoundTrip(t *testing.T) {
	payload := make([]byte, 16)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	input := buildDxtDds(t, "DXT5", 4, 4, 1, 1, false, payload)

	gtfBytes, err := DecodeDDS(input, Options{})
	require.NoError(t, err)

	back, err := DecodeGTF(gtfBytes, 0)
	require.NoError(t, err)

	require.Equal(t, payload, back[dds.HeaderSize:])
}

func TestDecodeDDS_VolumeDxt1(t *testing.T) {
	blockW, blockH, blockBytes := 8, 8, 8
	perSlice := blockW * blockH * blockBytes
	payload := make([]byte, perSlice*8)
	for i := range payload {
		payload[i] = byte(i)
	}
	input := buildDxtDds(t, "DXT1", 32, 32, 8, 1, true, payload)

	out, err := DecodeDDS(input, Options{})
	require.NoError(t, err)
	require.Zero(t, len(out)%128, "gtf file size must be 128-aligned")

	back, err := DecodeGTF(out, 0)
	require.NoError(t, err)
	require.Equal(t, payload, back[dds.HeaderSize:], "VTC round-trip must preserve the DDS payload")
}

func TestDecodeDDS_NonDxtLinearize(t *testing.T) {
	w, h := uint32(64), uint32(64)
	payload := make([]byte, int(w*h*4))
	for i := range payload {
		payload[i] = byte(i)
	}

	h0 := dds.Header{
		Flags:             dds.FlagCaps | dds.FlagHeight | dds.FlagWidth | dds.FlagPixelFormat | dds.FlagPitch,
		Height:            h,
		Width:             w,
		PitchOrLinearSize: w * 4,
		Caps1:             dds.Caps1Texture,
	}
	h0.PixelFormat = dds.PixelFormat{
		Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 32,
		ABitMask: 0xFF000000, RBitMask: 0x00FF0000, GBitMask: 0x0000FF00, BBitMask: 0x000000FF,
	}
	input := append(dds.Write(h0), payload...)

	out, err := DecodeDDS(input, Options{Linearize: true})
	require.NoError(t, err)

	_, attrs, err := gtf.Parse(out)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	info := attrs[0].Info
	require.Equal(t, gtfformat.A8R8G8B8|gtfformat.Linear, info.Format)
	require.Equal(t, uint32(64*4), info.Pitch)

	back, err := DecodeGTF(out, 0)
	require.NoError(t, err)
	require.Equal(t, payload, back[dds.HeaderSize:])
}

func TestDecodeDDS_RejectsDX10(t *testing.T) {
	h0 := dds.Header{Flags: dds.FlagCaps | dds.FlagHeight | dds.FlagWidth | dds.FlagPixelFormat}
	h0.PixelFormat = dds.PixelFormat{Flags: dds.PFFourCC, FourCC: dds.Encode4CC("DX10")}
	input := dds.Write(h0)

	_, err := DecodeDDS(input, Options{})
	require.Error(t, err)
	require.True(t, codecerr.Is(err, codecerr.DX10Unsupported))
}

func TestDecodeDDS_RejectsBadSize(t *testing.T) {
	input := dds.Write(dds.Header{})
	beLePutUint32(input[4:8], 123) // corrupt the declared size field

	_, err := DecodeDDS(input, Options{})
	require.Error(t, err)
	require.True(t, codecerr.Is(err, codecerr.InvalidSize))
}

func TestDecodeGTF_RejectsShortAlignment(t *testing.T) {
	_, err := DecodeGTF(make([]byte, 127), 0)
	require.Error(t, err)
	require.True(t, codecerr.Is(err, codecerr.GtfAlignment))
}

func TestDecodeGTF_RejectsUnknownId(t *testing.T) {
	payload := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	input := buildDxtDds(t, "DXT1", 1, 1, 1, 1, false, payload)
	gtfBytes, err := DecodeDDS(input, Options{})
	require.NoError(t, err)

	_, err = DecodeGTF(gtfBytes, 7)
	require.Error(t, err)
	require.True(t, codecerr.Is(err, codecerr.TextureNotFound))
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func beLePutUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
