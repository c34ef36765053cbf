// Package layout implements the per-sub-image layout planner: given a
// texture's GTF descriptor, it produces an ordered table of records
// describing, for every (face, mip) pair, the source/destination
// regions and pitches the byte mover needs on both the DDS and GTF
// sides. It is grounded on the teacher's own mip-chain walk
// (pack/wad/txr/ps3.go's loadImages, which halves curW/curH per level
// and accumulates a running dataOffset), generalized here to cube faces,
// volume depth, and the GTF side's independent linear/swizzle offset
// tracks.
package layout

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/mogaika/ddsgtf/internal/gtf"
	"github.com/mogaika/ddsgtf/internal/gtfformat"
)

// Record is one planned sub-image: a single (face, mip) level's
// dimensions, pitches, and offsets/sizes on both the DDS and GTF sides.
type Record struct {
	Width  int
	Height int
	Depth  int

	// Pitch is the GTF row stride (gtf_pitch in spec.md's record shape).
	Pitch      int
	ColorDepth int

	// DdsDepth is the per-texel byte stride override the DDS side uses
	// when its source format needs widening to match the GTF format
	// (fourcc R16F -> 2, rgb-bit-count 24 -> 3); zero means no expansion.
	DdsDepth  int
	DdsExpand bool

	DdsOffset int
	DdsSize   int
	DdsPitch  int

	GtfLinearOffset int
	GtfLinearSize   int

	GtfSwizzleOffset int
	GtfSwizzleSize   int
}

// Result is the complete table for one texture plus the two image
// totals the codec needs to size its output buffers.
type Result struct {
	Records []Record

	// DdsImageSize is the DDS payload size the texture needs.
	DdsImageSize int
	// GtfImageSize is the GTF payload size for the texture's active
	// memory layout (swizzled if info.Format's Linear bit is clear,
	// linear otherwise).
	GtfImageSize int
}

func alignUp(v, align int) int {
	return (v + align - 1) / align * align
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// Plan produces the layout table for info. ddsExpandDepth is the DDS
// payload per-texel byte stride override described in spec.md §4.8
// ("used solely to decide whether the DDS payload needs byte-width
// expansion"); pass 0 when the source side needs no widening (always
// true on the GTF->DDS direction).
func Plan(info gtf.TextureInfo, ddsExpandDepth int) Result {
	cube := 1
	if info.IsCubemap() {
		cube = 6
	}
	mipCount := int(info.Mipmap)
	if mipCount < 1 {
		mipCount = 1
	}

	raw := gtfformat.RawFormat(info.Format)
	swizzled := gtfformat.IsSwizzled(info.Format)
	isDxt := gtfformat.IsDxtn(raw)
	isRawCompressed := gtfformat.IsRawCompressed(raw)
	colorDepth := gtfformat.PixelDepth(raw)

	baseWidth := int(info.Width)
	baseHeight := int(info.Height)
	baseDepth := max1(int(info.Depth))

	records := make([]Record, 0, cube*mipCount)

	ddsOffset := 0
	gtfLinearOffset := 0
	gtfSwizzleOffset := 0

	for face := 0; face < cube; face++ {
		cw, ch, cd := baseWidth, baseHeight, baseDepth
		for mipIdx := 0; mipIdx < mipCount; mipIdx++ {
			if cw == 0 && ch == 0 && cd == 0 {
				break
			}
			w, h, d := max1(cw), max1(ch), max1(cd)

			if face > 0 && mipIdx == 0 && swizzled {
				gtfSwizzleOffset = alignUp(gtfSwizzleOffset, gtf.AlignSize)
			}

			rec := Record{
				Width:      w,
				Height:     h,
				Depth:      d,
				ColorDepth: colorDepth,
				DdsDepth:   ddsExpandDepth,
				DdsExpand:  ddsExpandDepth != 0,
			}

			var ddsSizePerSlice, gtfSwizzleSizePerSlice, gtfLinearSizePerSlice, gtfPitch, ddsPitch int

			switch {
			case isDxt:
				blockW := (w + 3) / 4
				blockH := (h + 3) / 4
				blockBytes := colorDepth
				gtfPitch = blockW * blockBytes
				ddsPitch = gtfPitch
				ddsSizePerSlice = blockW * blockH * blockBytes
				gtfSwizzleSizePerSlice = ddsSizePerSlice
				gtfLinearSizePerSlice = blockH * gtfPitch
			case isRawCompressed:
				gtfPitch = gtfformat.Pitch(raw, w)
				ddsPitch = gtfPitch
				ddsSizePerSlice = ((w + 1) / 2) * h * 4
				gtfSwizzleSizePerSlice = ddsSizePerSlice
				gtfLinearSizePerSlice = h * gtfPitch
			default:
				gtfPitch = gtfformat.Pitch(raw, w)
				ddsPitch = gtfPitch
				ddsSizePerSlice = w * h * colorDepth
				gtfSwizzleSizePerSlice = ddsSizePerSlice
				gtfLinearSizePerSlice = h * gtfPitch
			}

			if ddsExpandDepth != 0 {
				ddsPitch = w * ddsExpandDepth
				ddsSizePerSlice = ddsPitch * h
			}

			ddsSize := ddsSizePerSlice * d
			gtfSwizzleSize := gtfSwizzleSizePerSlice * d
			gtfLinearSize := gtfLinearSizePerSlice * d

			rec.Pitch = gtfPitch
			rec.DdsPitch = ddsPitch
			rec.DdsOffset = ddsOffset
			rec.DdsSize = ddsSize
			rec.GtfLinearOffset = gtfLinearOffset
			rec.GtfLinearSize = gtfLinearSize
			rec.GtfSwizzleOffset = gtfSwizzleOffset
			rec.GtfSwizzleSize = gtfSwizzleSize

			records = append(records, rec)

			ddsOffset += ddsSize
			gtfLinearOffset += gtfLinearSize
			gtfSwizzleOffset += gtfSwizzleSize

			cw /= 2
			ch /= 2
			cd /= 2
		}
	}

	gtfImageSize := gtfLinearOffset
	if swizzled {
		gtfImageSize = gtfSwizzleOffset
	}

	return Result{
		Records:      records,
		DdsImageSize: ddsOffset,
		GtfImageSize: gtfImageSize,
	}
}

// DumpLayout renders a Result as a multi-line struct dump, for tracing
// a planned sub-image table while debugging a mis-sized conversion.
func DumpLayout(result Result) string {
	return spew.Sdump(result)
}
