package remap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMasksStandardArgb(t *testing.T) {
	// A8R8G8B8: a > r > g > b in byte position, straightforward descending order.
	word := FromMasks(0xFF000000, 0x00FF0000, 0x0000FF00, 0x000000FF, true)
	require.Equal(t, OrderARGB, word)
}

func TestFromMasksBgra(t *testing.T) {
	// B8G8R8A8: b highest, then g, then r, then a lowest.
	word := FromMasks(0x000000FF, 0x0000FF00, 0x00FF0000, 0xFF000000, true)
	require.Equal(t, OrderBGRA, word)
}

func TestFromMasksNoAlphaForcesOne(t *testing.T) {
	// R8G8B8 with no alpha channel: synthesized alpha mask is the
	// highest bit any of r/g/b's LSB parity contributes, and whichever
	// output position lands at rank 0 gets forced to constant One.
	word := FromMasks(0, 0x00FF0000, 0x0000FF00, 0x000000FF, false)

	// count the positions whose 2-bit mode is constant One.
	ones := 0
	for i := 0; i < 4; i++ {
		mode := (word >> uint(8+2*i)) & 3
		if mode == One {
			ones++
		}
	}
	require.Equal(t, 1, ones, "no-alpha derivation must force exactly one position to constant One")
}

func TestPresetBitLayout(t *testing.T) {
	// OrderARGB selects A, R, G, B for output positions 0..3, two bits
	// per position in the low byte.
	require.Equal(t, FromA, OrderARGB&0x3)
	require.Equal(t, FromR, (OrderARGB>>2)&0x3)
	require.Equal(t, FromG, (OrderARGB>>4)&0x3)
	require.Equal(t, FromB, (OrderARGB>>6)&0x3)
}

func TestOrder1RgbForcesAlphaOne(t *testing.T) {
	mode := (Order1RGB >> 8) & 3
	require.Equal(t, One, mode)
}
