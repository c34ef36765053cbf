package texconv

import (
	"github.com/mogaika/ddsgtf/internal/codecerr"
	"github.com/mogaika/ddsgtf/internal/config"
	"github.com/mogaika/ddsgtf/internal/gtf"
)

const (
	minPackImages = 1
	maxPackImages = 255
)

// PackDDS implements the PackedGtfBuilder spec.md §4.10 describes:
// concatenate 1..255 already-encoded DDS images into one multi-texture
// GTF file, placing every texture's payload on its own 128-byte
// boundary and numbering attributes 0..N-1 in input order.
func PackDDS(images [][]byte, opts Options) ([]byte, error) {
	n := len(images)
	if n < minPackImages || n > maxPackImages {
		return nil, codecerr.New(codecerr.DdsImageCount, "gtf pack needs [%d,%d] images, got %d", minPackImages, maxPackImages, n)
	}

	plans := make([]ddsPlan, n)
	for i, data := range images {
		plan, err := planDds(data, opts)
		if err != nil {
			return nil, err
		}
		plans[i] = plan
	}

	headerBlock := gtf.HeaderBlockSize(n)
	offsets := make([]int, n)
	offset := headerBlock
	for i, plan := range plans {
		offsets[i] = offset
		offset = alignUp(offset+plan.result.GtfImageSize, gtf.AlignSize)
	}
	totalSize := offset

	buf := make([]byte, totalSize)
	attrs := make([]gtf.Attribute, n)
	for i, plan := range plans {
		off := offsets[i]
		gtfPayload := buf[off:]

		if err := boundsCheck(plan.result, plan.swizzled, len(plan.ddsPayload), len(gtfPayload)); err != nil {
			return nil, err
		}

		for _, rec := range plan.result.Records {
			moveRecord(gtfPayload, plan.ddsPayload, rec, plan.raw, plan.swizzled, false)
		}

		attrs[i] = gtf.Attribute{
			Id:          uint32(i),
			OffsetToTex: uint32(off),
			TextureSize: uint32(plan.result.GtfImageSize),
			Info:        plan.info,
		}
	}

	header := gtf.Header{
		Version:    config.DefaultGtfVersion,
		Size:       uint32(totalSize - headerBlock),
		NumTexture: uint32(n),
	}
	copy(buf[:headerBlock], gtf.Write(header, attrs))

	logf("ddsgtf: pack %d images into %d bytes", n, totalSize)

	return buf, nil
}
