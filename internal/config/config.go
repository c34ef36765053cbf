// Package config holds the codec's fixed GTF version word, the tag
// encode/decode helpers, and the per-call Options value type. It keeps
// no package-level mutable settings: options are passed explicitly into
// each conversion call.
package config

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultGtfVersion is the version word written into every synthesized
// GTF header: 202.00.00.
const DefaultGtfVersion uint32 = 0x02020000

// tagEncoding decodes/encodes the four-character tags (DDS magic, FOURCC)
// that show up in both container headers. They're pure ASCII in every
// format this codec supports, but routing them through a charmap keeps
// the same "don't cast bytes to string by hand" discipline the teacher
// applies to its longer, genuinely localized strings.
var tagEncoding = charmap.Windows1252

// DecodeTag turns a raw 4-byte tag (magic or FOURCC) into a string.
func DecodeTag(raw [4]byte) string {
	s, _, err := transform.Bytes(tagEncoding.NewDecoder(), raw[:])
	if err != nil {
		return string(raw[:])
	}
	return string(s)
}

// EncodeTag turns a 4-character ASCII tag into its raw byte form.
func EncodeTag(tag string) [4]byte {
	var out [4]byte
	b, _, err := transform.Bytes(tagEncoding.NewEncoder(), []byte(tag))
	if err != nil {
		copy(out[:], tag)
		return out
	}
	copy(out[:], b)
	return out
}

// Options are the two DDS->GTF conversion knobs spec'd at the interface
// boundary. They're ignored on the GTF->DDS direction.
type Options struct {
	// Linearize forces non-DXT textures into linear GTF memory layout
	// even when they'd otherwise qualify for swizzled layout.
	Linearize bool
	// Unnormalize ORs the Unnormalize flag bit into the GTF format byte,
	// telling the PS3 sampler to treat coordinates as unnormalized.
	Unnormalize bool
}
