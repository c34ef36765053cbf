package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mogaika/ddsgtf/internal/dds"
	"github.com/mogaika/ddsgtf/internal/gtf"
	"github.com/mogaika/ddsgtf/internal/gtfformat"
)

func TestToDdsDxt1(t *testing.T) {
	info := gtf.TextureInfo{Format: gtfformat.CompressedDxt1, Width: 64, Height: 64, Mipmap: 1}
	h, err := ToDds(info)
	require.NoError(t, err)
	require.Equal(t, "DXT1", h.PixelFormat.FourCCString())
	require.NotZero(t, h.Flags&dds.FlagLinearSize)
	require.Equal(t, ((64+3)/4)*((64+3)/4)*8, int(h.PitchOrLinearSize))
}

func TestToDdsMipmapSetsCaps(t *testing.T) {
	info := gtf.TextureInfo{Format: gtfformat.A8R8G8B8, Width: 64, Height: 64, Mipmap: 4}
	h, err := ToDds(info)
	require.NoError(t, err)
	require.NotZero(t, h.Flags&dds.FlagMipMapCount)
	require.NotZero(t, h.Caps1&dds.Caps1MipMap)
	require.Equal(t, uint32(4), h.MipMapCount)
}

func TestToDdsCubemapSetsAllFaces(t *testing.T) {
	info := gtf.TextureInfo{Format: gtfformat.A8R8G8B8, Width: 32, Height: 32, Mipmap: 1, Cubemap: 1}
	h, err := ToDds(info)
	require.NoError(t, err)
	require.Equal(t, dds.Caps2CubemapAll, h.Caps2&dds.Caps2CubemapAll)
}

func TestToDdsVolumeSetsDepthCaps(t *testing.T) {
	info := gtf.TextureInfo{Format: gtfformat.CompressedDxt1, Width: 32, Height: 32, Depth: 8, Dimension: 3, Mipmap: 1}
	h, err := ToDds(info)
	require.NoError(t, err)
	require.NotZero(t, h.Flags&dds.FlagDepth)
	require.NotZero(t, h.Caps2&dds.Caps2Volume)
	require.Equal(t, uint32(8), h.Depth)
}

func TestToDdsLinearPitch(t *testing.T) {
	info := gtf.TextureInfo{
		Format: gtfformat.A8R8G8B8 | gtfformat.Linear,
		Width:  64, Height: 64, Mipmap: 1,
		Pitch: 64 * 4,
	}
	h, err := ToDds(info)
	require.NoError(t, err)
	require.NotZero(t, h.Flags&dds.FlagPitch)
	require.Equal(t, uint32(64*4), h.PitchOrLinearSize)
}

func TestToDdsY16X16FloatUsesG16R16F(t *testing.T) {
	// Documented asymmetry: the inverse of R16F is always G16R16F.
	info := gtf.TextureInfo{Format: gtfformat.Y16X16Float, Width: 8, Height: 8, Mipmap: 1}
	h, err := ToDds(info)
	require.NoError(t, err)

	numeric := h.PixelFormat.FourCC
	require.Equal(t, byte(112), numeric[0]) // D3DFMT_G16R16F, little-endian byte 0
}

func TestToDdsRejectsUnsupportedFormat(t *testing.T) {
	info := gtf.TextureInfo{Format: gtfformat.Depth24D8, Width: 8, Height: 8, Mipmap: 1}
	_, err := ToDds(info)
	require.Error(t, err)
}
