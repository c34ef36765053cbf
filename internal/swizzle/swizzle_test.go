package swizzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress2DIsBitInterleaved(t *testing.T) {
	// A 4x4 texture (log2=2,2): address interleaves x then y bits,
	// LSB-first, one bit per axis per round.
	cases := []struct {
		x, y uint32
		want uint32
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 3},
		{2, 0, 4},
		{0, 2, 8},
		{3, 3, 15},
	}
	for _, c := range cases {
		got := Address2D(c.x, c.y, 2, 2)
		require.Equal(t, c.want, got, "Address2D(%d,%d)", c.x, c.y)
	}
}

func TestAddressCoversAllCellsExactlyOnce(t *testing.T) {
	const lw, lh, ld = 2, 1, 1 // 4x2x2 = 16 texels
	seen := make(map[uint32]bool)
	for z := uint32(0); z < 2; z++ {
		for y := uint32(0); y < 2; y++ {
			for x := uint32(0); x < 4; x++ {
				addr := Address(x, y, z, lw, lh, ld)
				require.Less(t, addr, uint32(16))
				require.False(t, seen[addr], "address %d reused", addr)
				seen[addr] = true
			}
		}
	}
	require.Len(t, seen, 16)
}

func TestAddressDegenerateDimension(t *testing.T) {
	// log2=0 on every axis: the only valid coordinate is the origin.
	require.Equal(t, uint32(0), Address(0, 0, 0, 0, 0, 0))
}
