// Package gtf reads and writes the GTF container's header, its
// N texture-attribute records, and the embedded 32-byte texture-info
// record each attribute carries. The wire format is always big-endian
// regardless of host, matching the PS3's native word order; as with
// internal/dds, every field goes through encoding/binary rather than an
// in-memory struct cast, so parsing behaves identically on big- and
// little-endian hosts (spec.md §9's "never rely on in-place memory
// layout matching the wire format").
//
// Grounded on the teacher's offset-driven header parsing
// (psvita/gxt/gxt.go's Open, pack/wad/txr/ps3.go's NewPs3TextureFromData)
// generalized to the variable-length attribute table GTF uses in place
// of GXT's fixed per-texture-info loop.
package gtf

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/mogaika/ddsgtf/internal/codecerr"
	"github.com/mogaika/ddsgtf/internal/gtfformat"
	"github.com/mogaika/ddsgtf/internal/remap"
)

const (
	// HeaderSize is the fixed 12-byte file header: version, size, num_texture.
	HeaderSize = 12
	// AttributeSize is one 16+32-byte texture-attribute record.
	AttributeSize = 48
	// InfoSize is the embedded 32-byte texture-info record.
	InfoSize = 32
	// AlignSize is the boundary every GTF length and offset must respect.
	AlignSize = 128

	minNumTexture = 1
	maxNumTexture = 255
)

// Header is the 12-byte GTF file header.
type Header struct {
	Version    uint32
	Size       uint32
	NumTexture uint32
}

// TextureInfo is the 32-byte GTF texture descriptor embedded in every
// attribute record: format, mipmap/dimension/cubemap shape, the
// component remap word, the texel extents, and the linear pitch/offset
// a non-swizzled texture uses.
type TextureInfo struct {
	Format    gtfformat.TextureFormat
	Mipmap    uint8
	Dimension uint8
	Cubemap   uint8
	Remap     remap.Word
	Width     uint16
	Height    uint16
	Depth     uint16
	Location  uint8
	Padding   uint8
	Pitch     uint32
	Offset    uint32
}

// IsCubemap reports whether info describes a six-face cubemap.
func (info TextureInfo) IsCubemap() bool {
	return info.Cubemap != 0
}

// Attribute is one 48-byte texture-attribute record: the texture's id,
// its offset and size within the file, and its TextureInfo.
type Attribute struct {
	Id          uint32
	OffsetToTex uint32
	TextureSize uint32
	Info        TextureInfo
}

// HeaderBlockSize returns the 128-byte-aligned size of the 12-byte
// header plus n 48-byte attribute records, per spec.md §4.5.
func HeaderBlockSize(n int) int {
	return alignUp(HeaderSize+AttributeSize*n, AlignSize)
}

func alignUp(v, align int) int {
	return (v + align - 1) / align * align
}

// Parse validates and decodes a GTF header plus its attribute table.
// Validation order matches spec.md §4.5 exactly: overall file alignment,
// header EOF, attribute-table EOF, texture-count range, header-size
// alignment, then per-attribute id/offset/EOF checks.
func Parse(data []byte) (Header, []Attribute, error) {
	if len(data)%AlignSize != 0 {
		return Header{}, nil, codecerr.New(codecerr.GtfAlignment, "gtf file size %d is not a multiple of %d", len(data), AlignSize)
	}
	if len(data) < HeaderSize {
		return Header{}, nil, codecerr.New(codecerr.GtfEof, "gtf header needs %d bytes, got %d", HeaderSize, len(data))
	}

	be := binary.BigEndian
	var h Header
	h.Version = be.Uint32(data[0:4])
	h.Size = be.Uint32(data[4:8])
	h.NumTexture = be.Uint32(data[8:12])

	blockSize := HeaderBlockSize(int(h.NumTexture))
	if len(data) < blockSize {
		return Header{}, nil, codecerr.New(codecerr.GtfEof, "gtf attribute table needs %d bytes, got %d", blockSize, len(data))
	}

	if h.NumTexture < minNumTexture || h.NumTexture > maxNumTexture {
		return Header{}, nil, codecerr.New(codecerr.GtfCount, "gtf num_texture %d outside [%d,%d]", h.NumTexture, minNumTexture, maxNumTexture)
	}

	if h.Size%AlignSize != 0 {
		return Header{}, nil, codecerr.New(codecerr.GtfAlignment, "gtf header size %d is not a multiple of %d", h.Size, AlignSize)
	}

	attrs := make([]Attribute, h.NumTexture)
	for i := range attrs {
		off := HeaderSize + i*AttributeSize
		a, err := parseAttribute(data[off : off+AttributeSize])
		if err != nil {
			return Header{}, nil, errors.Wrapf(err, "gtf attribute %d", i)
		}
		if a.Id > maxNumTexture {
			return Header{}, nil, codecerr.New(codecerr.GtfCount, "gtf texture %d id %d exceeds %d", i, a.Id, maxNumTexture)
		}
		if a.OffsetToTex%AlignSize != 0 {
			return Header{}, nil, codecerr.New(codecerr.GtfAlignment, "gtf texture %d offset_to_tex %d is not a multiple of %d", i, a.OffsetToTex, AlignSize)
		}
		end := int64(a.OffsetToTex) + int64(a.TextureSize)
		if end > int64(len(data)) {
			return Header{}, nil, codecerr.New(codecerr.GtfEof, "gtf texture %d extends to %d, file is %d bytes", i, end, len(data))
		}
		attrs[i] = a
	}

	return h, attrs, nil
}

func parseAttribute(data []byte) (Attribute, error) {
	be := binary.BigEndian
	var a Attribute
	a.Id = be.Uint32(data[0:4])
	a.OffsetToTex = be.Uint32(data[4:8])
	a.TextureSize = be.Uint32(data[8:12])
	a.Info = parseInfo(data[16:48])
	return a, nil
}

func parseInfo(data []byte) TextureInfo {
	be := binary.BigEndian
	var info TextureInfo
	info.Format = gtfformat.TextureFormat(data[0])
	info.Mipmap = data[1]
	info.Dimension = data[2]
	info.Cubemap = data[3]
	info.Remap = remap.Word(be.Uint32(data[4:8]))
	info.Width = be.Uint16(data[8:10])
	info.Height = be.Uint16(data[10:12])
	info.Depth = be.Uint16(data[12:14])
	info.Location = data[14]
	info.Padding = data[15]
	info.Pitch = be.Uint32(data[16:20])
	info.Offset = be.Uint32(data[20:24])
	return info
}

// Write serializes a GTF header and its attribute table into a
// big-endian byte block of HeaderBlockSize(len(attrs)) bytes. It does
// not validate; callers build Header/Attribute values that already
// satisfy the invariants Parse checks.
func Write(h Header, attrs []Attribute) []byte {
	buf := make([]byte, HeaderBlockSize(len(attrs)))
	be := binary.BigEndian
	be.PutUint32(buf[0:4], h.Version)
	be.PutUint32(buf[4:8], h.Size)
	be.PutUint32(buf[8:12], h.NumTexture)

	for i, a := range attrs {
		off := HeaderSize + i*AttributeSize
		writeAttribute(buf[off:off+AttributeSize], a)
	}
	return buf
}

func writeAttribute(buf []byte, a Attribute) {
	be := binary.BigEndian
	be.PutUint32(buf[0:4], a.Id)
	be.PutUint32(buf[4:8], a.OffsetToTex)
	be.PutUint32(buf[8:12], a.TextureSize)
	writeInfo(buf[16:48], a.Info)
}

func writeInfo(buf []byte, info TextureInfo) {
	be := binary.BigEndian
	buf[0] = byte(info.Format)
	buf[1] = info.Mipmap
	buf[2] = info.Dimension
	buf[3] = info.Cubemap
	be.PutUint32(buf[4:8], uint32(info.Remap))
	be.PutUint16(buf[8:10], info.Width)
	be.PutUint16(buf[10:12], info.Height)
	be.PutUint16(buf[12:14], info.Depth)
	buf[14] = info.Location
	buf[15] = info.Padding
	be.PutUint32(buf[16:20], info.Pitch)
	be.PutUint32(buf[20:24], info.Offset)
}
