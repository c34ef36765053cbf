// Package gtfformat holds the pure lookup tables over GTF texture
// formats: pitch, pixel depth, raw-vs-flagged format, and the byte-mover
// transform each format requires. The numeric format codes are the RSX
// CELL_GCM_TEXTURE_* values the teacher already uses for the three
// formats its own PS3 texture reader supports (pack/wad/txr/ps3.go);
// this table fills in the rest of the format space the codec needs.
package gtfformat

// TextureFormat is a GTF format byte: a base format code with the
// Linear and Unnormalize flag bits optionally overlaid.
type TextureFormat uint8

const (
	Linear      TextureFormat = 0x20
	Unnormalize TextureFormat = 0x40
)

// Base format codes, matching the RSX CELL_GCM_TEXTURE_* constant space.
const (
	B8                     TextureFormat = 0x81
	A1R5G5B5               TextureFormat = 0x82
	A4R4G4B4               TextureFormat = 0x83
	R5G6B5                 TextureFormat = 0x84
	A8R8G8B8               TextureFormat = 0x85
	CompressedDxt1         TextureFormat = 0x86
	CompressedDxt23        TextureFormat = 0x87
	CompressedDxt45        TextureFormat = 0x88
	G8B8                   TextureFormat = 0x8B
	CompressedB8R8G8R8     TextureFormat = 0x8D
	CompressedR8B8R8G8     TextureFormat = 0x8E
	R6G5B5                 TextureFormat = 0x8F
	Depth24D8              TextureFormat = 0x90
	Depth24D8Float         TextureFormat = 0x91
	Depth16                TextureFormat = 0x92
	Depth16Float           TextureFormat = 0x93
	X16                    TextureFormat = 0x94
	Y16X16                 TextureFormat = 0x95
	R5G5B5A1               TextureFormat = 0x97
	CompressedHilo8        TextureFormat = 0x98
	CompressedHiloS8       TextureFormat = 0x99
	W16Z16Y16X16Float      TextureFormat = 0x9A
	W32Z32Y32X32Float      TextureFormat = 0x9B
	X32Float               TextureFormat = 0x9C
	D1R5G5B5               TextureFormat = 0x9D
	D8R8G8B8               TextureFormat = 0x9E
	Y16X16Float            TextureFormat = 0x9F
)

// InvertFlag names the byte-mover transform a non-DXT format requires.
type InvertFlag int

const (
	None InvertFlag = iota
	Swap16
	Swap32
	Swap32Even
)

// RawFormat strips the Linear and Unnormalize bits, leaving the base
// format code.
func RawFormat(f TextureFormat) TextureFormat {
	return f &^ (Linear | Unnormalize)
}

// IsSwizzled reports whether f's memory layout is swizzled (the Linear
// bit is clear).
func IsSwizzled(f TextureFormat) bool {
	return f&Linear == 0
}

// IsDxtn reports whether raw is one of the three DXT block-compressed
// formats.
func IsDxtn(raw TextureFormat) bool {
	switch raw {
	case CompressedDxt1, CompressedDxt23, CompressedDxt45:
		return true
	default:
		return false
	}
}

// IsRawCompressed reports whether raw is one of the packed-pair formats
// that share a chroma byte across two neighbouring pixels.
func IsRawCompressed(raw TextureFormat) bool {
	switch raw {
	case CompressedB8R8G8R8, CompressedR8B8R8G8:
		return true
	default:
		return false
	}
}

// PixelDepth returns the byte count of one texel (or, for a DXT format,
// one compressed block).
func PixelDepth(raw TextureFormat) int {
	switch raw {
	case B8:
		return 1
	case A1R5G5B5, A4R4G4B4, R5G6B5, G8B8, R6G5B5, Depth16, Depth16Float, X16,
		D1R5G5B5, R5G5B5A1, CompressedHilo8, CompressedHiloS8,
		CompressedB8R8G8R8, CompressedR8B8R8G8:
		return 2
	case A8R8G8B8, Depth24D8, Depth24D8Float, Y16X16, X32Float, D8R8G8B8, Y16X16Float:
		return 4
	case W16Z16Y16X16Float:
		return 8
	case W32Z32Y32X32Float:
		return 16
	case CompressedDxt1:
		return 8
	case CompressedDxt23, CompressedDxt45:
		return 16
	default:
		return 4
	}
}

// Pitch computes the row stride in bytes for a scanline of the given
// width in the given raw format.
func Pitch(raw TextureFormat, width int) int {
	switch {
	case IsDxtn(raw):
		blockW := (width + 3) / 4
		return blockW * PixelDepth(raw)
	case IsRawCompressed(raw):
		pairW := (width + 1) / 2
		return pairW * 4
	default:
		return width * PixelDepth(raw)
	}
}

// InvertFlagOf returns the byte-mover transform raw's texel data
// requires when moving it between DDS and GTF.
func InvertFlagOf(raw TextureFormat) InvertFlag {
	switch {
	case IsRawCompressed(raw):
		return Swap32Even
	case raw == W32Z32Y32X32Float || raw == X32Float:
		return Swap32
	case raw == X16 || raw == Y16X16 || raw == Y16X16Float || raw == W16Z16Y16X16Float:
		return Swap16
	case IsDxtn(raw):
		return None
	default:
		switch PixelDepth(raw) {
		case 2:
			return Swap16
		case 4:
			return Swap32
		default:
			return Swap32
		}
	}
}
