package entity

import (
	"image/color"

	"chosenoffset.com/spaceshooter/internal/render"
)

// Star speeds in pixels per tick, inclusive.
const (
	StarMinSpeed = 1
	StarMaxSpeed = 3
)

var starColor = color.RGBA{255, 255, 255, 255}

// Star is a single scrolling background point.
type Star struct {
	X, Y, Speed int
}

// StarField scrolls stars down the screen, recycling them at the top.
type StarField struct {
	Stars         []Star
	width, height int
	rng           Rand
}

// NewStarField scatters n stars over a width x height area.
func NewStarField(n, width, height int, rng Rand) *StarField {
	sf := &StarField{
		Stars:  make([]Star, n),
		width:  width,
		height: height,
		rng:    rng,
	}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X:     rng.IntN(width + 1),
			Y:     rng.IntN(height + 1),
			Speed: StarMinSpeed + rng.IntN(StarMaxSpeed-StarMinSpeed+1),
		}
	}
	return sf
}

// Update moves every star; stars falling past the bottom wrap to the top
// at a new random column.
func (sf *StarField) Update() {
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.Y += s.Speed
		if s.Y > sf.height {
			s.Y = 0
			s.X = sf.rng.IntN(sf.width + 1)
		}
	}
}

// Draw renders the stars as one pixel dots.
func (sf *StarField) Draw(dst render.Image, r render.Renderer) {
	for _, s := range sf.Stars {
		r.FillCircle(dst, float32(s.X), float32(s.Y), 1, starColor)
	}
}
