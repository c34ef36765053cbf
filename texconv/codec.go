package texconv

import (
	"github.com/mogaika/ddsgtf/internal/classify"
	"github.com/mogaika/ddsgtf/internal/codecerr"
	"github.com/mogaika/ddsgtf/internal/config"
	"github.com/mogaika/ddsgtf/internal/dds"
	"github.com/mogaika/ddsgtf/internal/gtf"
	"github.com/mogaika/ddsgtf/internal/gtfformat"
	"github.com/mogaika/ddsgtf/internal/layout"
)

func alignUp(v, align int) int {
	return (v + align - 1) / align * align
}

func isPow2OrZero(v int) bool {
	return v == 0 || v&(v-1) == 0
}

// boundsCheck verifies that every record layout.Plan produced fits
// inside the buffers actually available on both sides, raising
// codecerr.OverflowBytes the way spec.md §4.9 requires rather than
// letting a short buffer panic a slice index.
func boundsCheck(result layout.Result, swizzled bool, ddsLen, gtfLen int) error {
	for i, rec := range result.Records {
		if rec.DdsOffset+rec.DdsSize > ddsLen {
			return codecerr.New(codecerr.OverflowBytes, "dds record %d at %d+%d exceeds a %d-byte buffer", i, rec.DdsOffset, rec.DdsSize, ddsLen)
		}
		gtfOff, gtfSize := rec.GtfLinearOffset, rec.GtfLinearSize
		if swizzled {
			gtfOff, gtfSize = rec.GtfSwizzleOffset, rec.GtfSwizzleSize
		}
		if gtfOff+gtfSize > gtfLen {
			return codecerr.New(codecerr.OverflowBytes, "gtf record %d at %d+%d exceeds a %d-byte buffer", i, gtfOff, gtfSize, gtfLen)
		}
	}
	return nil
}

// ddsPlan is the outcome of reading a DDS header and deciding how it
// maps onto the GTF side, shared by DecodeDDS and PackDDS so the two
// never drift on how a source image's TextureInfo is derived.
type ddsPlan struct {
	info           gtf.TextureInfo
	result         layout.Result
	raw            gtfformat.TextureFormat
	swizzled       bool
	ddsExpandDepth int
	ddsPayload     []byte
}

func planDds(data []byte, opts Options) (ddsPlan, error) {
	h, err := dds.Parse(data)
	if err != nil {
		return ddsPlan{}, err
	}

	desc, err := classify.DescriptorFromDds(h)
	if err != nil {
		return ddsPlan{}, err
	}

	raw, remapWord, err := classify.Classify(h.PixelFormat)
	if err != nil {
		return ddsPlan{}, err
	}

	isDxt := gtfformat.IsDxtn(raw)
	swizzlable := !gtfformat.IsRawCompressed(raw) &&
		isPow2OrZero(desc.Width) && isPow2OrZero(desc.Height) && isPow2OrZero(desc.Depth)
	useSwizzle := swizzlable && (isDxt || !opts.Linearize)

	format := raw
	if !useSwizzle {
		format |= gtfformat.Linear
	}
	if opts.Unnormalize {
		format |= gtfformat.Unnormalize
	}

	info := gtf.TextureInfo{
		Format:    format,
		Mipmap:    uint8(desc.Mipmap),
		Dimension: desc.Dimension,
		Remap:     remapWord,
		Width:     uint16(desc.Width),
		Height:    uint16(desc.Height),
		Depth:     uint16(desc.Depth),
	}
	if desc.Cubemap {
		info.Cubemap = 1
	}
	if !useSwizzle {
		info.Pitch = uint32(gtfformat.Pitch(raw, desc.Width))
	}

	logf("ddsgtf: plan dds %dx%dx%d raw=%#x mip=%d cube=%v swizzled=%v", desc.Width, desc.Height, desc.Depth, raw, desc.Mipmap, desc.Cubemap, useSwizzle)

	ddsExpandDepth := classify.DdsExpandDepth(h.PixelFormat)
	result := layout.Plan(info, ddsExpandDepth)

	return ddsPlan{
		info:           info,
		result:         result,
		raw:            raw,
		swizzled:       useSwizzle,
		ddsExpandDepth: ddsExpandDepth,
		ddsPayload:     data[dds.HeaderSize:],
	}, nil
}

// DecodeDDS converts a single DDS image into a single-texture GTF file,
// the direction spec.md §4.9 calls DecodeDDS: parse the DDS header,
// classify its pixel format, synthesize the GTF descriptor, plan the
// layout, then move every sub-image's bytes across.
func DecodeDDS(data []byte, opts Options) ([]byte, error) {
	plan, err := planDds(data, opts)
	if err != nil {
		return nil, err
	}

	headerBlock := gtf.HeaderBlockSize(1)
	totalSize := alignUp(headerBlock+plan.result.GtfImageSize, gtf.AlignSize)
	buf := make([]byte, totalSize)
	gtfPayload := buf[headerBlock:]

	if err := boundsCheck(plan.result, plan.swizzled, len(plan.ddsPayload), len(gtfPayload)); err != nil {
		return nil, err
	}

	for _, rec := range plan.result.Records {
		moveRecord(gtfPayload, plan.ddsPayload, rec, plan.raw, plan.swizzled, false)
	}

	header := gtf.Header{
		Version:    config.DefaultGtfVersion,
		Size:       uint32(totalSize - headerBlock),
		NumTexture: 1,
	}
	attr := gtf.Attribute{
		Id:          0,
		OffsetToTex: uint32(headerBlock),
		TextureSize: uint32(plan.result.GtfImageSize),
		Info:        plan.info,
	}
	copy(buf[:headerBlock], gtf.Write(header, []gtf.Attribute{attr}))

	return buf, nil
}

// DecodeGTF converts the texture carrying the given attribute id out of
// a GTF file into a standalone DDS image, the direction spec.md §4.9
// calls DecodeGTF: find the attribute, synthesize the DDS header,
// replan the same layout against the stored format, then move bytes
// back.
func DecodeGTF(data []byte, id int) ([]byte, error) {
	_, attrs, err := gtf.Parse(data)
	if err != nil {
		return nil, err
	}

	var attr *gtf.Attribute
	for i := range attrs {
		if int(attrs[i].Id) == id {
			attr = &attrs[i]
			break
		}
	}
	if attr == nil {
		return nil, codecerr.New(codecerr.TextureNotFound, "gtf file has no texture with id %d", id)
	}

	info := attr.Info
	ddsHeader, err := classify.ToDds(info)
	if err != nil {
		return nil, err
	}

	raw := gtfformat.RawFormat(info.Format)
	swizzled := gtfformat.IsSwizzled(info.Format)
	result := layout.Plan(info, 0)

	gtfPayload := data[attr.OffsetToTex : attr.OffsetToTex+attr.TextureSize]
	ddsPayload := make([]byte, result.DdsImageSize)

	if err := boundsCheck(result, swizzled, len(ddsPayload), len(gtfPayload)); err != nil {
		return nil, err
	}

	logf("ddsgtf: decode gtf id=%d %dx%dx%d raw=%#x swizzled=%v", id, info.Width, info.Height, info.Depth, raw, swizzled)

	for _, rec := range result.Records {
		moveRecord(gtfPayload, ddsPayload, rec, raw, swizzled, true)
	}

	out := make([]byte, 0, dds.HeaderSize+len(ddsPayload))
	out = append(out, dds.Write(ddsHeader)...)
	out = append(out, ddsPayload...)
	return out, nil
}
