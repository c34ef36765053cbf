// Package dds reads and writes the 128-byte DDS header and its embedded
// pixel-format substructure. The wire format is always little-endian
// regardless of host; every field is read and written through
// encoding/binary rather than relying on in-memory struct layout, so the
// codec behaves identically on big- and little-endian hosts.
//
// Grounded on the teacher's manual, offset-driven header parsing
// (pack/wad/txr/ps3.go's NewPs3TextureFromData) and on the DDS field
// layout laid out by erinpentecost-LivelyMap's internal/dds package and
// 3096-furnace's DDSHeader.
package dds

import (
	"encoding/binary"

	"github.com/mogaika/ddsgtf/internal/codecerr"
)

const (
	HeaderSize      = 128
	declaredSize    = 124
	declaredPfSize  = 32
	Magic           = "DDS "
	fourCCDX10      = "DX10"
)

// DDSD_* flags for Header.Flags.
const (
	FlagCaps        uint32 = 0x1
	FlagHeight      uint32 = 0x2
	FlagWidth       uint32 = 0x4
	FlagPitch       uint32 = 0x8
	FlagPixelFormat uint32 = 0x1000
	FlagMipMapCount uint32 = 0x20000
	FlagLinearSize  uint32 = 0x80000
	FlagDepth       uint32 = 0x800000
)

// DDPF_* flags for PixelFormat.Flags.
const (
	PFAlphaPixels uint32 = 0x1
	PFAlpha       uint32 = 0x2
	PFFourCC      uint32 = 0x4
	PFRGB         uint32 = 0x40
	PFR6G5B5      uint32 = 0x00040000
	PFLuminance   uint32 = 0x20000
	PFBumpDuDv    uint32 = 0x80000
	PFNormal      uint32 = 0x80000000
)

// DDSCAPS_* / DDSCAPS2_* flags for Header.Caps1/Caps2.
const (
	Caps1Complex uint32 = 0x8
	Caps1Texture uint32 = 0x1000
	Caps1MipMap  uint32 = 0x400000

	Caps2Cubemap      uint32 = 0x200
	Caps2CubemapPosX  uint32 = 0x400
	Caps2CubemapNegX  uint32 = 0x800
	Caps2CubemapPosY  uint32 = 0x1000
	Caps2CubemapNegY  uint32 = 0x2000
	Caps2CubemapPosZ  uint32 = 0x4000
	Caps2CubemapNegZ  uint32 = 0x8000
	Caps2CubemapAll   uint32 = Caps2CubemapPosX | Caps2CubemapNegX | Caps2CubemapPosY | Caps2CubemapNegY | Caps2CubemapPosZ | Caps2CubemapNegZ
	Caps2Volume       uint32 = 0x200000
)

// PixelFormat is the 32-byte DDPIXELFORMAT substructure.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      [4]byte
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// Header holds the DDS file header fields that follow the 4-byte magic;
// Parse and Write handle the magic, and together they occupy 128 bytes.
type Header struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps1             uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// FourCCString returns pf.FourCC as a 4-character string.
func (pf PixelFormat) FourCCString() string {
	return string(pf.FourCC[:])
}

// Encode4CC packs a 4-character ASCII tag into the raw FourCC layout.
func Encode4CC(tag string) [4]byte {
	var out [4]byte
	copy(out[:], tag)
	return out
}

// Encode4CCNumeric packs a little-endian D3DFMT numeric code into the
// raw FourCC layout, the convention DirectX uses for its float formats.
func Encode4CCNumeric(code uint32) [4]byte {
	var out [4]byte
	binary.LittleEndian.PutUint32(out[:], code)
	return out
}

// Parse validates and decodes a 128-byte DDS header from the front of
// data. Validation order matches the spec exactly: EOF, magic, size,
// pixel-format size, then the DX10-unsupported check.
func Parse(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, codecerr.New(codecerr.DdsEof, "dds header needs %d bytes, got %d", HeaderSize, len(data))
	}

	if string(data[0:4]) != Magic {
		return Header{}, codecerr.New(codecerr.InvalidMagic, "dds magic mismatch: %q", data[0:4])
	}

	le := binary.LittleEndian
	var h Header
	h.Size = le.Uint32(data[4:8])
	if h.Size != declaredSize {
		return Header{}, codecerr.New(codecerr.InvalidSize, "dds header size %d != %d", h.Size, declaredSize)
	}

	h.Flags = le.Uint32(data[8:12])
	h.Height = le.Uint32(data[12:16])
	h.Width = le.Uint32(data[16:20])
	h.PitchOrLinearSize = le.Uint32(data[20:24])
	h.Depth = le.Uint32(data[24:28])
	h.MipMapCount = le.Uint32(data[28:32])
	for i := 0; i < 11; i++ {
		h.Reserved1[i] = le.Uint32(data[32+i*4 : 36+i*4])
	}

	pfOff := 76
	pf := &h.PixelFormat
	pf.Size = le.Uint32(data[pfOff : pfOff+4])
	if pf.Size != declaredPfSize {
		return Header{}, codecerr.New(codecerr.InvalidSize, "dds pixel format size %d != %d", pf.Size, declaredPfSize)
	}
	pf.Flags = le.Uint32(data[pfOff+4 : pfOff+8])
	copy(pf.FourCC[:], data[pfOff+8:pfOff+12])
	pf.RGBBitCount = le.Uint32(data[pfOff+12 : pfOff+16])
	pf.RBitMask = le.Uint32(data[pfOff+16 : pfOff+20])
	pf.GBitMask = le.Uint32(data[pfOff+20 : pfOff+24])
	pf.BBitMask = le.Uint32(data[pfOff+24 : pfOff+28])
	pf.ABitMask = le.Uint32(data[pfOff+28 : pfOff+32])

	if pf.Flags&PFFourCC != 0 && pf.FourCCString() == fourCCDX10 {
		return Header{}, codecerr.New(codecerr.DX10Unsupported, "DX10 extended DDS header is not supported")
	}

	capsOff := pfOff + declaredPfSize
	h.Caps1 = le.Uint32(data[capsOff : capsOff+4])
	h.Caps2 = le.Uint32(data[capsOff+4 : capsOff+8])
	h.Caps3 = le.Uint32(data[capsOff+8 : capsOff+12])
	h.Caps4 = le.Uint32(data[capsOff+12 : capsOff+16])
	h.Reserved2 = le.Uint32(data[capsOff+16 : capsOff+20])

	return h, nil
}

// Write serializes h back into a 128-byte little-endian DDS header,
// magic included.
func Write(h Header) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], Magic)

	le := binary.LittleEndian
	le.PutUint32(buf[4:8], declaredSize)
	le.PutUint32(buf[8:12], h.Flags)
	le.PutUint32(buf[12:16], h.Height)
	le.PutUint32(buf[16:20], h.Width)
	le.PutUint32(buf[20:24], h.PitchOrLinearSize)
	le.PutUint32(buf[24:28], h.Depth)
	le.PutUint32(buf[28:32], h.MipMapCount)
	for i := 0; i < 11; i++ {
		le.PutUint32(buf[32+i*4:36+i*4], h.Reserved1[i])
	}

	pfOff := 76
	pf := h.PixelFormat
	le.PutUint32(buf[pfOff:pfOff+4], declaredPfSize)
	le.PutUint32(buf[pfOff+4:pfOff+8], pf.Flags)
	copy(buf[pfOff+8:pfOff+12], pf.FourCC[:])
	le.PutUint32(buf[pfOff+12:pfOff+16], pf.RGBBitCount)
	le.PutUint32(buf[pfOff+16:pfOff+20], pf.RBitMask)
	le.PutUint32(buf[pfOff+20:pfOff+24], pf.GBitMask)
	le.PutUint32(buf[pfOff+24:pfOff+28], pf.BBitMask)
	le.PutUint32(buf[pfOff+28:pfOff+32], pf.ABitMask)

	capsOff := pfOff + declaredPfSize
	le.PutUint32(buf[capsOff:capsOff+4], h.Caps1)
	le.PutUint32(buf[capsOff+4:capsOff+8], h.Caps2)
	le.PutUint32(buf[capsOff+8:capsOff+12], h.Caps3)
	le.PutUint32(buf[capsOff+12:capsOff+16], h.Caps4)
	le.PutUint32(buf[capsOff+16:capsOff+20], h.Reserved2)

	return buf
}
