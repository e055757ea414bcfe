// Package collision provides pixel-accurate overlap tests between sprites.
//
// A Mask is a bit-packed opacity bitmap computed once from a sprite image.
// Two masks collide when any opaque pixel of one lands on an opaque pixel of
// the other after offsetting by the distance between their origins.
package collision

import (
	"image"
	"math/bits"
)

// Threshold is the 8-bit alpha a pixel must exceed to count as opaque.
const Threshold = 127

const wordBits = 64

// Mask is a per-pixel opacity bitmap. Rows are stored as runs of uint64
// words; bit i of a row's word k is column k*64+i.
type Mask struct {
	width, height int
	stride        int // words per row
	bits          []uint64
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + wordBits - 1) / wordBits
	return &Mask{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]uint64, stride*height),
	}
}

// FromImage builds a mask from the alpha channel of img.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > Threshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Set marks (x, y) opaque. Out of range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.bits[y*m.stride+x/wordBits] |= 1 << uint(x%wordBits)
}

// Get reports whether (x, y) is opaque.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.bits[y*m.stride+x/wordBits]&(1<<uint(x%wordBits)) != 0
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// span returns 64 pixels of row y starting at column x. Columns past the
// row end read as transparent.
func (m *Mask) span(y, x int) uint64 {
	k := x / wordBits
	off := uint(x % wordBits)
	row := y * m.stride
	w := m.bits[row+k] >> off
	if off != 0 && k+1 < m.stride {
		w |= m.bits[row+k+1] << (wordBits - off)
	}
	return w
}

// Overlap tests other placed at (dx, dy) relative to m. It returns the first
// overlapping pixel in m's coordinates.
func (m *Mask) Overlap(other *Mask, dx, dy int) (image.Point, bool) {
	x0, x1 := max(0, dx), min(m.width, dx+other.width)
	y0, y1 := max(0, dy), min(m.height, dy+other.height)
	if x0 >= x1 || y0 >= y1 {
		return image.Point{}, false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x += wordBits {
			hit := m.span(y, x) & other.span(y-dy, x-dx)
			if n := x1 - x; n < wordBits {
				hit &= 1<<uint(n) - 1
			}
			if hit != 0 {
				return image.Pt(x+bits.TrailingZeros64(hit), y), true
			}
		}
	}
	return image.Point{}, false
}
