package classify

import (
	"github.com/mogaika/ddsgtf/internal/codecerr"
	"github.com/mogaika/ddsgtf/internal/dds"
	"github.com/mogaika/ddsgtf/internal/gtf"
	"github.com/mogaika/ddsgtf/internal/gtfformat"
)

// pixelFormatFor fills in the DDPIXELFORMAT substructure for a raw GTF
// format, per spec.md §4.7's Table D. Depth formats and the hilo
// formats have no DDS representative and are rejected.
func pixelFormatFor(raw gtfformat.TextureFormat) (dds.PixelFormat, error) {
	switch raw {
	case gtfformat.CompressedDxt1:
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CC(fccDXT1)
		return pf, nil
	case gtfformat.CompressedDxt23:
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CC(fccDXT3)
		return pf, nil
	case gtfformat.CompressedDxt45:
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CC(fccDXT5)
		return pf, nil
	case gtfformat.CompressedB8R8G8R8:
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CC(fccRGBG)
		return pf, nil
	case gtfformat.CompressedR8B8R8G8:
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CC(fccGRGB)
		return pf, nil
	case gtfformat.Y16X16Float:
		// Documented asymmetry (spec.md Open Questions): the inverse of
		// R16F/G16R16F -> Y16X16Float is always G16R16F, never R16F.
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CCNumeric(d3dfmtG16R16F)
		return pf, nil
	case gtfformat.W16Z16Y16X16Float:
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CCNumeric(d3dfmtA16B16G16R16F)
		return pf, nil
	case gtfformat.X32Float:
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CCNumeric(d3dfmtR32F)
		return pf, nil
	case gtfformat.W32Z32Y32X32Float:
		pf := dds.PixelFormat{Flags: dds.PFFourCC}
		pf.FourCC = dds.Encode4CCNumeric(d3dfmtA32B32G32R32F)
		return pf, nil
	case gtfformat.B8:
		return dds.PixelFormat{Flags: dds.PFLuminance, RGBBitCount: 8, RBitMask: 0xFF}, nil
	case gtfformat.A1R5G5B5:
		return dds.PixelFormat{Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 16,
			ABitMask: 0x8000, RBitMask: 0x7C00, GBitMask: 0x03E0, BBitMask: 0x001F}, nil
	case gtfformat.R5G5B5A1:
		return dds.PixelFormat{Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 16,
			RBitMask: 0xF800, GBitMask: 0x07C0, BBitMask: 0x003E, ABitMask: 0x0001}, nil
	case gtfformat.A4R4G4B4:
		return dds.PixelFormat{Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 16,
			ABitMask: 0xF000, RBitMask: 0x0F00, GBitMask: 0x00F0, BBitMask: 0x000F}, nil
	case gtfformat.R5G6B5:
		return dds.PixelFormat{Flags: dds.PFRGB, RGBBitCount: 16,
			RBitMask: 0xF800, GBitMask: 0x07E0, BBitMask: 0x001F}, nil
	case gtfformat.R6G5B5:
		return dds.PixelFormat{Flags: dds.PFRGB | dds.PFR6G5B5, RGBBitCount: 16,
			RBitMask: 0xFC00, GBitMask: 0x03E0, BBitMask: 0x001F}, nil
	case gtfformat.D1R5G5B5:
		return dds.PixelFormat{Flags: dds.PFRGB, RGBBitCount: 16,
			RBitMask: 0x7C00, GBitMask: 0x03E0, BBitMask: 0x001F}, nil
	case gtfformat.G8B8:
		return dds.PixelFormat{Flags: dds.PFLuminance, RGBBitCount: 16,
			GBitMask: 0xFF00, BBitMask: 0x00FF}, nil
	case gtfformat.X16:
		return dds.PixelFormat{Flags: dds.PFRGB, RGBBitCount: 16, RBitMask: 0xFFFF}, nil
	case gtfformat.Y16X16:
		return dds.PixelFormat{Flags: dds.PFRGB, RGBBitCount: 32,
			RBitMask: 0x0000FFFF, GBitMask: 0xFFFF0000}, nil
	case gtfformat.A8R8G8B8:
		return dds.PixelFormat{Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 32,
			ABitMask: 0xFF000000, RBitMask: 0x00FF0000, GBitMask: 0x0000FF00, BBitMask: 0x000000FF}, nil
	case gtfformat.D8R8G8B8:
		return dds.PixelFormat{Flags: dds.PFRGB, RGBBitCount: 32,
			RBitMask: 0x00FF0000, GBitMask: 0x0000FF00, BBitMask: 0x000000FF}, nil
	default:
		return dds.PixelFormat{}, codecerr.New(codecerr.UnsupportedFormat, "gtf format %#x has no dds equivalent", raw)
	}
}

// ToDds synthesizes a DDS header from a GTF TextureInfo, per spec.md
// §4.7. It sets every flag/caps bit the descriptor implies (mipmap,
// volume, cubemap) and computes PitchOrLinearSize from the raw format.
func ToDds(info gtf.TextureInfo) (dds.Header, error) {
	raw := gtfformat.RawFormat(info.Format)

	pf, err := pixelFormatFor(raw)
	if err != nil {
		return dds.Header{}, err
	}
	pf.Size = 32

	var h dds.Header
	h.Size = 124
	h.Flags = dds.FlagCaps | dds.FlagPixelFormat | dds.FlagWidth | dds.FlagHeight
	h.Caps1 = dds.Caps1Texture
	h.Width = uint32(info.Width)
	h.Height = uint32(info.Height)

	if info.Mipmap > 1 {
		h.Flags |= dds.FlagMipMapCount
		h.Caps1 |= dds.Caps1MipMap | dds.Caps1Complex
		h.MipMapCount = uint32(info.Mipmap)
	}

	if info.Dimension == 3 {
		h.Flags |= dds.FlagDepth
		h.Caps2 |= dds.Caps2Volume
		h.Caps1 |= dds.Caps1Complex
		h.Depth = uint32(info.Depth)
	}

	if info.IsCubemap() {
		h.Caps2 |= dds.Caps2Cubemap | dds.Caps2CubemapAll
		h.Caps1 |= dds.Caps1Complex
	}

	switch {
	case gtfformat.IsRawCompressed(raw):
		h.PitchOrLinearSize = 0
	case gtfformat.IsDxtn(raw):
		blockBytes := uint32(gtfformat.PixelDepth(raw))
		blocksW := (h.Width + 3) / 4
		blocksH := (h.Height + 3) / 4
		h.PitchOrLinearSize = blocksW * blocksH * blockBytes
		h.Flags |= dds.FlagLinearSize
	case info.Pitch != 0:
		h.PitchOrLinearSize = info.Pitch
		h.Flags |= dds.FlagPitch
	default:
		h.PitchOrLinearSize = 0
	}

	h.PixelFormat = pf
	return h, nil
}
