package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mogaika/ddsgtf/internal/codecerr"
	"github.com/mogaika/ddsgtf/internal/dds"
)

func TestDescriptorFromDds2D(t *testing.T) {
	h := dds.Header{Width: 64, Height: 32, Flags: dds.FlagWidth | dds.FlagHeight}
	d, err := DescriptorFromDds(h)
	require.NoError(t, err)
	require.Equal(t, 64, d.Width)
	require.Equal(t, 32, d.Height)
	require.Equal(t, 1, d.Depth)
	require.Equal(t, uint8(2), d.Dimension)
	require.False(t, d.Cubemap)
	require.Equal(t, 1, d.Mipmap)
}

func TestDescriptorFromDdsVolume(t *testing.T) {
	h := dds.Header{
		Width: 32, Height: 32, Depth: 8,
		Flags: dds.FlagWidth | dds.FlagHeight | dds.FlagDepth,
		Caps2: dds.Caps2Volume,
	}
	d, err := DescriptorFromDds(h)
	require.NoError(t, err)
	require.Equal(t, 8, d.Depth)
	require.Equal(t, uint8(3), d.Dimension)
}

func TestDescriptorFromDdsCubemapRequiresAllFaces(t *testing.T) {
	h := dds.Header{
		Width: 16, Height: 16,
		Flags: dds.FlagWidth | dds.FlagHeight,
		Caps2: dds.Caps2Cubemap | dds.Caps2CubemapPosX, // missing five faces
	}
	_, err := DescriptorFromDds(h)
	require.Error(t, err)
	k, ok := codecerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, codecerr.UnsupportedHeader, k)
}

func TestDescriptorFromDdsFullCubemapOk(t *testing.T) {
	h := dds.Header{
		Width: 16, Height: 16,
		Flags: dds.FlagWidth | dds.FlagHeight,
		Caps2: dds.Caps2Cubemap | dds.Caps2CubemapAll,
	}
	d, err := DescriptorFromDds(h)
	require.NoError(t, err)
	require.True(t, d.Cubemap)
}

func TestDescriptorFromDdsVolumeBoundaryExceeded(t *testing.T) {
	h := dds.Header{
		Width: 1024, Height: 32, Depth: 8,
		Flags: dds.FlagWidth | dds.FlagHeight | dds.FlagDepth,
		Caps2: dds.Caps2Volume,
	}
	_, err := DescriptorFromDds(h)
	require.Error(t, err)
	k, ok := codecerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, codecerr.UnsupportedHeader, k)
}

func TestDescriptorFromDds2DBoundaryExceeded(t *testing.T) {
	h := dds.Header{
		Width: 8192, Height: 32,
		Flags: dds.FlagWidth | dds.FlagHeight,
	}
	_, err := DescriptorFromDds(h)
	require.Error(t, err)
	k, ok := codecerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, codecerr.UnsupportedHeader, k)
}

func TestDescriptorFromDdsMipmapCountTooLarge(t *testing.T) {
	h := dds.Header{
		Width: 4, Height: 4,
		Flags:       dds.FlagWidth | dds.FlagHeight | dds.FlagMipMapCount,
		MipMapCount: 10, // log2(4)+1 = 3 levels max
	}
	_, err := DescriptorFromDds(h)
	require.Error(t, err)
	k, ok := codecerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, codecerr.UnsupportedHeader, k)
}
