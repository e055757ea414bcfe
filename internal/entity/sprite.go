// Package entity holds the playfield objects: ships, lasers, explosions and
// the scrolling star field.
package entity

import (
	"image"

	"chosenoffset.com/spaceshooter/internal/core/collision"
	"chosenoffset.com/spaceshooter/internal/render"
)

// Sprite pairs a drawable image with the collision mask computed from it.
// The mask is built once and shared by every entity using the sprite.
type Sprite struct {
	Image render.Image
	Mask  *collision.Mask
}

// NewSprite uploads img through r and derives its mask.
func NewSprite(r render.Renderer, img image.Image) *Sprite {
	return &Sprite{
		Image: r.NewImageFromImage(img),
		Mask:  collision.FromImage(img),
	}
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.Mask.Width() }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.Mask.Height() }

// Rand is the source of randomness entities draw from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}
