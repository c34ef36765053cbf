package classify

import (
	"math/bits"

	"github.com/mogaika/ddsgtf/internal/codecerr"
	"github.com/mogaika/ddsgtf/internal/dds"
)

// Descriptor is the shape information a DDS header carries that the
// Codec needs to populate a GtfTextureInfo, independent of pixel
// format: spec.md §2 calls this "full descriptor from DDS".
type Descriptor struct {
	Width, Height, Depth int
	Mipmap                int
	Dimension             uint8 // 2 or 3
	Cubemap               bool
}

const (
	maxVolumeDim = 512
	max2DDim     = 4096
)

// DescriptorFromDds extracts and validates a Descriptor from h, per the
// invariants spec.md §3 lists: full-face-set cubemaps only, volume
// dimensions capped at 512, 2-D dimensions capped at 4096, and a
// declared mipmap count no larger than 1+floor(log2(max(w,h,d))).
func DescriptorFromDds(h dds.Header) (Descriptor, error) {
	var d Descriptor

	if h.Caps2&dds.Caps2Cubemap != 0 {
		if h.Caps2&dds.Caps2CubemapAll != dds.Caps2CubemapAll {
			return Descriptor{}, codecerr.New(codecerr.UnsupportedHeader, "cubemap is missing one or more of its six faces (caps2=%#x)", h.Caps2)
		}
		d.Cubemap = true
	}

	isVolume := h.Caps2&dds.Caps2Volume != 0 && h.Flags&dds.FlagDepth != 0

	d.Width = int(h.Width)
	d.Height = int(h.Height)
	d.Depth = 1
	d.Dimension = 2
	if isVolume {
		d.Dimension = 3
		if h.Depth > 0 {
			d.Depth = int(h.Depth)
		}
	}

	if isVolume {
		if d.Width > maxVolumeDim || d.Height > maxVolumeDim || d.Depth > maxVolumeDim {
			return Descriptor{}, codecerr.New(codecerr.UnsupportedHeader, "volume texture %dx%dx%d exceeds the %d-texel limit per axis", d.Width, d.Height, d.Depth, maxVolumeDim)
		}
	} else {
		if d.Width > max2DDim || d.Height > max2DDim {
			return Descriptor{}, codecerr.New(codecerr.UnsupportedHeader, "2-D texture %dx%d exceeds the %d-texel limit per axis", d.Width, d.Height, max2DDim)
		}
	}

	d.Mipmap = 1
	if h.Flags&dds.FlagMipMapCount != 0 {
		d.Mipmap = int(h.MipMapCount)
	}

	maxDim := d.Width
	if d.Height > maxDim {
		maxDim = d.Height
	}
	if d.Depth > maxDim {
		maxDim = d.Depth
	}
	maxMip := 1
	if maxDim > 0 {
		maxMip = bits.Len(uint(maxDim))
	}
	if d.Mipmap > maxMip {
		return Descriptor{}, codecerr.New(codecerr.UnsupportedHeader, "declared mipmap count %d exceeds the %d levels implied by %dx%dx%d", d.Mipmap, maxMip, d.Width, d.Height, d.Depth)
	}

	return d, nil
}
