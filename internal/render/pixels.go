package render

import "image/color"

// Palette holds the RGBA bytes used for live and dead cells.
type Palette struct {
	on, off [4]byte
}

// NewPalette converts the provided colors into a Palette.
func NewPalette(on, off color.Color) Palette {
	return Palette{on: rgba(on), off: rgba(off)}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// FillRGBA converts binary cell data into RGBA pixels in buf. buf must hold
// at least 4*len(cells) bytes.
func (p Palette) FillRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := p.off
		if c != 0 {
			px = p.on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
