// Package classify implements the DDS pixel-format classifier
// (spec.md §4.6: DDS pixel format -> GTF TextureFormat + remap word)
// and the two header-synthesis directions (§4.7's GTF->DDS table, and
// the DDS->GTF descriptor extraction spec.md §2 calls "full descriptor
// from DDS"). Both sides are pure decision tables over already-parsed
// header fields, in the same dispatch-by-flag style the teacher's own
// format tables use (pack/wad/txr/ps3.go's CELL_GCM_TEXTURE_* switch).
package classify

import (
	"encoding/binary"
	"math/bits"

	"github.com/mogaika/ddsgtf/internal/codecerr"
	"github.com/mogaika/ddsgtf/internal/dds"
	"github.com/mogaika/ddsgtf/internal/gtfformat"
	"github.com/mogaika/ddsgtf/internal/remap"
)

// Numeric D3DFMT codes DirectX stores in the fourcc field for the
// float formats, little-endian, rather than an ASCII tag.
const (
	d3dfmtR16F          = 111
	d3dfmtG16R16F        = 112
	d3dfmtA16B16G16R16F = 113
	d3dfmtR32F          = 114
	d3dfmtA32B32G32R32F = 116
)

// ASCII fourcc tags.
const (
	fccDXT1 = "DXT1"
	fccDXT2 = "DXT2"
	fccDXT3 = "DXT3"
	fccDXT4 = "DXT4"
	fccDXT5 = "DXT5"
	fccRXGB = "RXGB"
	fccATI1 = "ATI1"
	fccATI2 = "ATI2"
	fccRGBG = "RGBG" // R8G8_B8G8
	fccGRGB = "GRGB" // G8R8_G8B8
	fccYVYU = "YVYU"
	fccYUY2 = "YUY2"
	fccDDS  = "DDS "
)

func popcount(v uint32) int {
	return bits.OnesCount32(v)
}

// DdsExpandDepth reports the per-texel byte-width override the DDS
// payload needs on the DDS->GTF direction, per spec.md §4.8: fourcc
// R16F packs a single 16-bit channel that must be read as if it were
// 2 bytes wide, and a bare 24-bit RGB format must be read 3 bytes wide.
// Zero means the DDS payload needs no widening.
func DdsExpandDepth(pf dds.PixelFormat) int {
	if pf.Flags&dds.PFFourCC != 0 {
		if binary.LittleEndian.Uint32(pf.FourCC[:]) == d3dfmtR16F {
			return 2
		}
		return 0
	}
	if pf.RGBBitCount == 24 {
		return 3
	}
	return 0
}

// Classify maps a DDS pixel format to the GTF texture format and
// component remap word it should carry, dispatching on the pixel
// format's flags the way spec.md §4.6 describes: FourCC first, then
// the RGB family (by channel bit masks), then a bare bit-count
// fallback.
func Classify(pf dds.PixelFormat) (gtfformat.TextureFormat, remap.Word, error) {
	switch {
	case pf.Flags&dds.PFFourCC != 0:
		return classifyFourCC(pf)
	case pf.Flags&(dds.PFRGB|dds.PFAlphaPixels|dds.PFAlpha|dds.PFLuminance|dds.PFR6G5B5|dds.PFBumpDuDv) != 0:
		return classifyRGBFamily(pf)
	default:
		return classifyFallback(pf)
	}
}

func classifyFourCC(pf dds.PixelFormat) (gtfformat.TextureFormat, remap.Word, error) {
	ascii := pf.FourCCString()
	numeric := binary.LittleEndian.Uint32(pf.FourCC[:])

	switch ascii {
	case fccDXT1:
		return gtfformat.CompressedDxt1, remap.OrderARGB, nil
	case fccDXT2, fccDXT3:
		return gtfformat.CompressedDxt23, remap.OrderARGB, nil
	case fccDXT4, fccDXT5:
		return gtfformat.CompressedDxt45, remap.OrderARGB, nil
	case fccRGBG:
		return gtfformat.CompressedB8R8G8R8, remap.OrderAGRB, nil
	case fccGRGB:
		return gtfformat.CompressedR8B8R8G8, remap.OrderAGRB, nil
	case fccYVYU:
		return gtfformat.CompressedR8B8R8G8, remap.OrderARBG, nil
	case fccYUY2:
		return gtfformat.CompressedB8R8G8R8, remap.OrderARBG, nil
	}

	switch numeric {
	case d3dfmtR16F:
		// Documented asymmetry: the reference source maps R16F to
		// Y16X16Float, whose own reverse synthesis produces G16R16F,
		// not R16F. Preserved verbatim for round-trip compatibility
		// with files carrying this fourcc; see DESIGN.md.
		return gtfformat.Y16X16Float, remap.OrderARGB, nil
	case d3dfmtG16R16F:
		return gtfformat.Y16X16Float, remap.OrderARGB, nil
	case d3dfmtA16B16G16R16F:
		return gtfformat.W16Z16Y16X16Float, remap.OrderARGB, nil
	case d3dfmtR32F:
		return gtfformat.X32Float, remap.OrderARGB, nil
	case d3dfmtA32B32G32R32F:
		return gtfformat.W32Z32Y32X32Float, remap.OrderARGB, nil
	}

	return 0, 0, codecerr.New(codecerr.UnsupportedFormat, "dds fourcc %q has no gtf equivalent", ascii)
}

func classifyRGBFamily(pf dds.PixelFormat) (gtfformat.TextureFormat, remap.Word, error) {
	alphaPixels := pf.Flags&dds.PFAlphaPixels != 0
	computed := remap.FromMasks(pf.ABitMask, pf.RBitMask, pf.GBitMask, pf.BBitMask, alphaPixels)

	switch {
	case pf.Flags&dds.PFLuminance != 0:
		return classifyLuminance(pf, computed)
	case pf.Flags&dds.PFBumpDuDv != 0:
		return classifyBumpDuDv(pf, computed)
	}

	switch pf.RGBBitCount {
	case 8:
		if pf.RBitMask != 0 {
			return gtfformat.B8, remap.Order1BBB, nil
		}
		return gtfformat.B8, remap.OrderB000, nil
	case 16:
		return classify16(pf, computed)
	case 24:
		return gtfformat.D8R8G8B8, remap.Order1RGB, nil
	case 32:
		return classify32(pf, computed)
	default:
		return 0, 0, codecerr.New(codecerr.UnsupportedFormat, "dds rgb bit count %d has no gtf equivalent", pf.RGBBitCount)
	}
}

func classify16(pf dds.PixelFormat, computed remap.Word) (gtfformat.TextureFormat, remap.Word, error) {
	aBits := popcount(pf.ABitMask)
	rBits := popcount(pf.RBitMask)
	gBits := popcount(pf.GBitMask)
	bBits := popcount(pf.BBitMask)

	switch {
	case aBits == 1 && pf.ABitMask == 0x8000:
		return gtfformat.A1R5G5B5, computed, nil
	case aBits == 1 && pf.ABitMask == 0x0001:
		return gtfformat.R5G5B5A1, computed, nil
	case aBits == 4:
		return gtfformat.A4R4G4B4, computed, nil
	case aBits == 0 && rBits == 4 && gBits == 4 && bBits == 4:
		return gtfformat.A4R4G4B4, computed, nil
	case aBits == 0 && rBits == 5 && gBits == 6 && bBits == 5:
		return gtfformat.R5G6B5, computed, nil
	case aBits == 0 && rBits == 6 && gBits == 5 && bBits == 5:
		return gtfformat.R6G5B5, computed, nil
	case aBits == 0 && rBits == 5 && gBits == 5 && bBits == 5:
		return gtfformat.D1R5G5B5, computed, nil
	case (aBits == 8 && rBits == 8) || (gBits == 8 && bBits == 8):
		return gtfformat.G8B8, computed, nil
	case rBits == 16 || gBits == 16 || bBits == 16 || aBits == 16:
		return gtfformat.X16, computed, nil
	default:
		return 0, 0, codecerr.New(codecerr.UnsupportedFormat, "dds 16-bit rgb masks a=%#x r=%#x g=%#x b=%#x have no gtf equivalent", pf.ABitMask, pf.RBitMask, pf.GBitMask, pf.BBitMask)
	}
}

func classify32(pf dds.PixelFormat, computed remap.Word) (gtfformat.TextureFormat, remap.Word, error) {
	if pf.Flags&dds.PFAlphaPixels != 0 {
		return gtfformat.A8R8G8B8, computed, nil
	}

	rBits := popcount(pf.RBitMask)
	count16 := 0
	for _, m := range [...]uint32{pf.ABitMask, pf.RBitMask, pf.GBitMask, pf.BBitMask} {
		if popcount(m) == 16 {
			count16++
		}
	}
	if rBits != 8 && count16 >= 2 {
		return gtfformat.Y16X16, computed, nil
	}
	return gtfformat.D8R8G8B8, remap.Order1RGB, nil
}

func classifyLuminance(pf dds.PixelFormat, computed remap.Word) (gtfformat.TextureFormat, remap.Word, error) {
	if pf.RGBBitCount != 16 {
		return 0, 0, codecerr.New(codecerr.UnsupportedFormat, "dds luminance bit count %d has no gtf equivalent", pf.RGBBitCount)
	}
	rBits := popcount(pf.RBitMask)
	if rBits == 16 {
		return gtfformat.X16, computed, nil
	}
	aBits := popcount(pf.ABitMask)
	gBits := popcount(pf.GBitMask)
	bBits := popcount(pf.BBitMask)
	if (aBits == 8 && rBits == 8) || (gBits == 8 && bBits == 8) {
		return gtfformat.G8B8, computed, nil
	}
	return 0, 0, codecerr.New(codecerr.UnsupportedFormat, "dds luminance masks have no gtf equivalent")
}

func classifyBumpDuDv(pf dds.PixelFormat, computed remap.Word) (gtfformat.TextureFormat, remap.Word, error) {
	switch pf.RGBBitCount {
	case 16:
		return gtfformat.Y16X16, computed, nil
	case 32:
		return gtfformat.A8R8G8B8, computed, nil
	default:
		return 0, 0, codecerr.New(codecerr.UnsupportedFormat, "dds bump-dudv bit count %d has no gtf equivalent", pf.RGBBitCount)
	}
}

func classifyFallback(pf dds.PixelFormat) (gtfformat.TextureFormat, remap.Word, error) {
	switch pf.RGBBitCount {
	case 8:
		return gtfformat.B8, remap.OrderARGB, nil
	case 16:
		return gtfformat.X16, remap.OrderARGB, nil
	case 32:
		return gtfformat.A8R8G8B8, remap.OrderARGB, nil
	case 64:
		return gtfformat.W16Z16Y16X16Float, remap.OrderARGB, nil
	case 128:
		return gtfformat.W32Z32Y32X32Float, remap.OrderARGB, nil
	default:
		return 0, 0, codecerr.New(codecerr.UnsupportedFormat, "dds pixel format has no gtf equivalent (flags=%#x rgbBitCount=%d)", pf.Flags, pf.RGBBitCount)
	}
}
