// Package bytemover implements the four raw copy/endian-swap primitives
// the codec's inner loop is built from. Every function here trusts its
// caller to have bounds-checked src and dst already: the layout planner
// computes the maximum offset touched on both sides of a transfer before
// entering any loop, so these primitives never re-check.
package bytemover

// Copy transfers len(src) bytes from src to dst unmodified. dst must be
// at least len(src) bytes.
func Copy(dst, src []byte) {
	copy(dst, src)
}

// CopySwap16 reverses every 2-byte group of src into dst. A trailing
// byte that doesn't fill a full group is copied unmodified.
func CopySwap16(dst, src []byte) {
	n := len(src)
	groups := n / 2
	for i := 0; i < groups; i++ {
		o := i * 2
		dst[o], dst[o+1] = src[o+1], src[o]
	}
	if n%2 != 0 {
		dst[n-1] = src[n-1]
	}
}

// CopySwap32 reverses every 4-byte group of src into dst. Trailing bytes
// that don't fill a full group are copied unmodified.
func CopySwap32(dst, src []byte) {
	n := len(src)
	groups := n / 4
	for i := 0; i < groups; i++ {
		o := i * 4
		dst[o], dst[o+1], dst[o+2], dst[o+3] = src[o+3], src[o+2], src[o+1], src[o]
	}
	for i := groups * 4; i < n; i++ {
		dst[i] = src[i]
	}
}

// CopySwap32Even reverses every 4-byte group of src into dst, except for
// groups whose pixel is at an odd x-coordinate, which are copied
// unmodified. This is the transform used by the packed-pair formats
// (B8R8_G8R8, R8B8_R8G8), which share one chroma byte across two
// neighbouring pixels and must not have that shared byte reordered twice.
// xEven names the parity of the pixel the first group in src belongs to.
func CopySwap32Even(dst, src []byte, xEven bool) {
	n := len(src)
	groups := n / 4
	for i := 0; i < groups; i++ {
		o := i * 4
		even := xEven == (i%2 == 0)
		if even {
			dst[o], dst[o+1], dst[o+2], dst[o+3] = src[o+3], src[o+2], src[o+1], src[o]
		} else {
			copy(dst[o:o+4], src[o:o+4])
		}
	}
	for i := groups * 4; i < n; i++ {
		dst[i] = src[i]
	}
}
