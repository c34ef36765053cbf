package texconv

import (
	"math/bits"

	"github.com/mogaika/ddsgtf/internal/bytemover"
	"github.com/mogaika/ddsgtf/internal/gtfformat"
	"github.com/mogaika/ddsgtf/internal/layout"
	"github.com/mogaika/ddsgtf/internal/swizzle"
)

// moveRecord transfers one planned sub-image between ddsPayload and
// gtfPayload, dispatching on (is_dxt, is_swizzled, is_3d) the way
// spec.md §4.9.1 describes. gtfToDds names the transfer direction;
// swizzled must match the active memory layout of the GTF side.
func moveRecord(gtfPayload, ddsPayload []byte, rec layout.Record, raw gtfformat.TextureFormat, swizzled, gtfToDds bool) {
	if rec.Width == 0 || rec.Height == 0 || rec.Depth == 0 {
		return
	}

	isDxt := gtfformat.IsDxtn(raw)

	switch {
	case isDxt && swizzled && rec.Depth > 1:
		moveDxtSwizzled3D(gtfPayload, ddsPayload, rec, gtfformat.PixelDepth(raw), gtfToDds)
	case isDxt && swizzled:
		moveDxtSwizzled2D(gtfPayload, ddsPayload, rec, gtfToDds)
	case isDxt:
		moveDxtLinear(gtfPayload, ddsPayload, rec, gtfToDds)
	default:
		moveNonDxt(gtfPayload, ddsPayload, rec, raw, swizzled, gtfToDds)
	}
}

func moveSpan(gtfSlice, ddsSlice []byte, gtfToDds bool) {
	if gtfToDds {
		copy(ddsSlice, gtfSlice)
	} else {
		copy(gtfSlice, ddsSlice)
	}
}

// moveDxtSwizzled2D copies one mip's whole block payload contiguously:
// a swizzled 2-D DXT surface needs no block reordering.
func moveDxtSwizzled2D(gtfPayload, ddsPayload []byte, rec layout.Record, gtfToDds bool) {
	n := rec.DdsSize
	gtfSlice := gtfPayload[rec.GtfSwizzleOffset : rec.GtfSwizzleOffset+n]
	ddsSlice := ddsPayload[rec.DdsOffset : rec.DdsOffset+n]
	moveSpan(gtfSlice, ddsSlice, gtfToDds)
}

// moveDxtSwizzled3D implements Volume Texture Compression ordering: up
// to four depth slices' blocks are interleaved into one VTC super-block
// on the GTF side, per spec.md §4.9.1.
func moveDxtSwizzled3D(gtfPayload, ddsPayload []byte, rec layout.Record, blockBytes int, gtfToDds bool) {
	blockWidth := (rec.Width + 3) / 4
	blockHeight := (rec.Height + 3) / 4
	blockDepth := (rec.Depth + 3) / 4
	depthBlockNum := ((rec.Depth - 1) % 4) + 1
	imageSizePerSlice := blockWidth * blockHeight * blockBytes

	gtfPos := rec.GtfSwizzleOffset
	for z := 0; z < blockDepth; z++ {
		for y := 0; y < blockHeight; y++ {
			for x := 0; x < blockWidth; x++ {
				for d := 0; d < depthBlockNum; d++ {
					ddsOff := rec.DdsOffset + imageSizePerSlice*(z*4+d) + blockBytes*(x+y*blockWidth)
					gtfSlice := gtfPayload[gtfPos : gtfPos+blockBytes]
					ddsSlice := ddsPayload[ddsOff : ddsOff+blockBytes]
					moveSpan(gtfSlice, ddsSlice, gtfToDds)
					gtfPos += blockBytes
				}
			}
		}
	}
}

// moveDxtLinear copies a non-power-of-two DXT mip scanline by scanline
// of compressed blocks.
func moveDxtLinear(gtfPayload, ddsPayload []byte, rec layout.Record, gtfToDds bool) {
	blockHeight := (rec.Height + 3) / 4
	for row := 0; row < blockHeight; row++ {
		ddsOff := rec.DdsOffset + row*rec.DdsPitch
		gtfOff := rec.GtfLinearOffset + row*rec.Pitch
		n := rec.DdsPitch
		gtfSlice := gtfPayload[gtfOff : gtfOff+n]
		ddsSlice := ddsPayload[ddsOff : ddsOff+n]
		moveSpan(gtfSlice, ddsSlice, gtfToDds)
	}
}

// moveNonDxt implements the per-texel copy/swap loop for every
// non-block-compressed format, swizzled or linear, per spec.md §4.9.1.
func moveNonDxt(gtfPayload, ddsPayload []byte, rec layout.Record, raw gtfformat.TextureFormat, swizzled, gtfToDds bool) {
	colorDepth := rec.ColorDepth
	invert := gtfformat.InvertFlagOf(raw)
	width, height, depth := rec.Width, rec.Height, rec.Depth

	// Raw-compressed formats share one chroma byte across a pair of
	// neighbouring pixels, so an odd-width mip's dds_pitch must still
	// span a whole number of pairs.
	pitchWidth := width
	if gtfformat.IsRawCompressed(raw) && pitchWidth%2 != 0 {
		pitchWidth++
	}

	ddsDepth := rec.DdsDepth
	ddsPitch := rec.DdsPitch
	if !rec.DdsExpand {
		ddsDepth = colorDepth
		ddsPitch = pitchWidth * ddsDepth
	}

	// A wide float texel is addressed, for swizzle purposes, as several
	// narrower units (spec.md §4.9.1: "for swizzled W32 float, treat the
	// row as 4x as wide with color_depth=4; for swizzled W16 float, 2x
	// wide with color_depth=4").
	addrColorDepth := colorDepth
	widthMul := 1
	switch raw {
	case gtfformat.W32Z32Y32X32Float:
		addrColorDepth = 4
		widthMul = 4
	case gtfformat.W16Z16Y16X16Float:
		addrColorDepth = 4
		widthMul = 2
	}

	var log2w, log2h, log2d uint32
	if swizzled {
		log2w = uint32(bits.TrailingZeros32(uint32(width * widthMul)))
		log2h = uint32(bits.TrailingZeros32(uint32(height)))
		log2d = uint32(bits.TrailingZeros32(uint32(depth)))
	}

	copySize := colorDepth
	if invert == gtfformat.Swap32Even {
		copySize = 4
	}

	gtfBase := rec.GtfLinearOffset
	if swizzled {
		gtfBase = rec.GtfSwizzleOffset
	}

	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if invert == gtfformat.Swap32Even && x%2 != 0 {
					continue
				}

				var gtfOff int
				if swizzled {
					addr := swizzle.Address(uint32(x*widthMul), uint32(y), uint32(z), log2w, log2h, log2d)
					gtfOff = gtfBase + int(addr)*addrColorDepth
				} else {
					gtfOff = gtfBase + z*height*rec.Pitch + y*rec.Pitch + x*colorDepth
				}
				ddsOff := rec.DdsOffset + z*ddsPitch*height + y*ddsPitch + x*ddsDepth

				gtfSlice := gtfPayload[gtfOff : gtfOff+copySize]
				ddsSlice := ddsPayload[ddsOff : ddsOff+copySize]

				var dst, src []byte
				if gtfToDds {
					dst, src = ddsSlice, gtfSlice
				} else {
					dst, src = gtfSlice, ddsSlice
				}

				switch invert {
				case gtfformat.None:
					bytemover.Copy(dst, src)
				case gtfformat.Swap16:
					bytemover.CopySwap16(dst, src)
				case gtfformat.Swap32:
					bytemover.CopySwap32(dst, src)
				case gtfformat.Swap32Even:
					bytemover.CopySwap32Even(dst, src, true)
				}
			}
		}
	}
}
